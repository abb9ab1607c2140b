package entity

type Location struct {
	Base
	Name        string
	Latitude    float64
	Longitude   float64
	PicturePath string

	AdminID string
	Admin   Admin `gorm:"foreignKey:AdminID"`
}
