package model

type Admin struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	OrganizeName string `json:"organizeName"`
	Role         string `json:"role"`
}

type CreateAdminRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	OrganizeName string `json:"organizeName"`
	Role         string `json:"role"`
}

type CreateAdminResponse = Admin

type GetListAdminRequest struct{}

type GetListAdminResponse []Admin
