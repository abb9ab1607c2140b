package entity

type User struct {
	Base
	Username       string `gorm:"unique"`
	HashedPassword string
	FirstName      string
	LastName       string
	StudentCode    string
}

const (
	RoleUser    = "user"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)
