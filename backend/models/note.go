package models

import "time"

type Note struct {
	Base
	UserID         string     `gorm:"type:varchar(36);index;not null" json:"userId"`
	Title          string     `gorm:"not null" json:"title"`
	Content        string     `gorm:"not null" json:"content"`
	ReminderDate   *time.Time `gorm:"index" json:"reminderDate"`
	ReminderSentAt *time.Time `json:"reminderSentAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}
