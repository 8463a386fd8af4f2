package models

import "time"

const DefaultSessionType = "focus"

// StudySession is one finished timer run. Duration is in minutes.
type StudySession struct {
	Base
	UserID      string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	Duration    int       `gorm:"not null;check:duration > 0" json:"duration"`
	Type        string    `gorm:"type:varchar(32);not null;default:focus" json:"type"`
	CompletedAt time.Time `json:"completedAt"`
}
