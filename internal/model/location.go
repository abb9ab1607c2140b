package model

type Location struct {
	ID          string  `json:"id"`
	Name        string  `json:"locationName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PicturePath string  `json:"locationPicturePath"`
	AdminID     string  `json:"adminId"`

	// Set only for authenticated gets.
	IsJoin    *bool `json:"isJoin,omitempty"`
	IsCheckIn *bool `json:"isCheckIn,omitempty"`
}

type CreateLocationRequest struct {
	Name        string  `json:"locationName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PicturePath string  `json:"locationPicturePath"`
}

type CreateLocationResponse = Location

type GetLocationRequest struct {
	ID string `json:"id"`
}

type GetLocationResponse = Location

type GetListLocationRequest struct{}

type GetListLocationResponse []Location

type UpdateLocationRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"locationName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PicturePath string  `json:"locationPicturePath"`
}

type UpdateLocationResponse = Location

type DeleteLocationRequest struct {
	ID string `json:"id"`
}

type DeleteLocationResponse struct {
	Message string `json:"msg"`
}
