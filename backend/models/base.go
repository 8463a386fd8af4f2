package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base gives every table a uuid primary key assigned before insert.
type Base struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// All lists the models managed by AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Task{},
		&Note{},
		&Skill{},
		&Achievement{},
		&StudySession{},
	}
}
