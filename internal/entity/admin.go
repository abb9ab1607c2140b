package entity

import "github.com/biskitsx/ZideQuest-Backend/pkg/enum"

type AdminRole string

var (
	AdminRoleAdmin   = enum.New(AdminRole(RoleAdmin))
	AdminRoleCreator = enum.New(AdminRole(RoleCreator))
)

// Admin is a quest manager account. Creators are scoped to their organization;
// admins are not.
type Admin struct {
	Base
	Username       string `gorm:"unique"`
	HashedPassword string
	OrganizeName   string `gorm:"index"`
	Role           AdminRole
}
