package entity

import (
	"database/sql"
	"time"
)

// Quest statuses are a two-state machine: open (false) and completed (true).
// The transition happens exactly once, guarded by a conditional update in the
// quest repository.
type Quest struct {
	Base

	Name        string
	Description string
	ImagePath   string

	LocationID string
	Location   Location `gorm:"foreignKey:LocationID"`

	CreatorID string
	Creator   Admin `gorm:"foreignKey:CreatorID"`

	StartAt time.Time
	EndAt   time.Time

	Completed bool

	// ActivityCategory carries the raw category code ("1", "2.1".."2.4", or
	// anything else). Invalid means the quest grants no activity hours.
	ActivityCategory sql.NullString
	ActivityHours    float64
}

// QuestParticipant is one row per (quest, user) membership. CheckedIn mirrors
// the check-in flag flipped by creators; it never affects membership itself.
type QuestParticipant struct {
	QuestID string `gorm:"primaryKey"`
	Quest   Quest  `gorm:"foreignKey:QuestID"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	CheckedIn bool
	CreatedAt time.Time
}
