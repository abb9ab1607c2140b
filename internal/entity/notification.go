package entity

import "time"

// Notification is the canonical record of a quest event, created once per
// cancellation and shared by all recipients.
type Notification struct {
	Base

	QuestID string
	Quest   Quest `gorm:"foreignKey:QuestID"`

	Message string
}

type NotificationRecipient struct {
	NotificationID string       `gorm:"primaryKey"`
	Notification   Notification `gorm:"foreignKey:NotificationID"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
}
