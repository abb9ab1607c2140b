package entity

type Tag struct {
	Base
	Name string `gorm:"unique"`
}
