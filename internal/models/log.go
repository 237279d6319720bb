package models

import "time"

type Log struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BookmarkID *string   `gorm:"type:text;index" json:"bookmark_id,omitempty"`
	Datetime   time.Time `gorm:"column:datetime;not null" json:"datetime"`
	Action     string    `gorm:"type:text;not null" json:"action"`
	Outcome    string    `gorm:"type:text;not null" json:"outcome"`
	Message    *string   `gorm:"type:text" json:"message,omitempty"`
}
