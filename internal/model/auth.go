package model

// AccessToken is the object embedded in every issued JWT. Role is one of
// entity.RoleUser, entity.RoleCreator, entity.RoleAdmin.
type AccessToken struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
	Admin *Admin `json:"admin,omitempty"`
}
