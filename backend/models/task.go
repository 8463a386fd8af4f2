package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Task is a to-do item. CompletedAt is set if and only if Completed is true.
type Task struct {
	Base
	UserID      string     `gorm:"type:varchar(36);index;not null" json:"userId"`
	Name        string     `gorm:"not null" json:"name"`
	Difficulty  Difficulty `gorm:"type:varchar(10);not null;default:medium" json:"difficulty"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// SetCompleted flips the completion flag and keeps CompletedAt consistent with it.
func (t *Task) SetCompleted(completed bool, at time.Time) {
	if completed == t.Completed {
		return
	}
	t.Completed = completed
	if completed {
		at = at.UTC()
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
}
