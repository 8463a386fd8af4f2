package models

import "time"

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// DefaultProgress is the progress value shown for a level when none is given.
func (l SkillLevel) DefaultProgress() int {
	switch l {
	case SkillIntermediate:
		return 50
	case SkillAdvanced:
		return 75
	case SkillExpert:
		return 100
	default:
		return 25
	}
}

type Skill struct {
	Base
	UserID    string     `gorm:"type:varchar(36);index;not null" json:"userId"`
	Name      string     `gorm:"not null" json:"name"`
	Level     SkillLevel `gorm:"type:varchar(16);not null;default:beginner" json:"level"`
	Progress  int        `gorm:"not null;default:0;check:progress >= 0 AND progress <= 100" json:"progress"`
	CreatedAt time.Time  `json:"createdAt"`
}
