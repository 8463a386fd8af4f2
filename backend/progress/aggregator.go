// Package progress derives a user's dashboard numbers from their task and
// study session rows.
package progress

import (
	"time"

	"studyhub/backend/models"
)

var difficultyPoints = map[models.Difficulty]int{
	models.DifficultyEasy:   1,
	models.DifficultyMedium: 2,
	models.DifficultyHard:   3,
}

// Points returns the weight of a difficulty tier and false for unknown tiers.
func Points(d models.Difficulty) (int, bool) {
	p, ok := difficultyPoints[d]
	return p, ok
}

type Aggregator struct {
	streak StreakPolicy
	now    func() time.Time
}

type Option func(*Aggregator)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

func NewAggregator(policy StreakPolicy, opts ...Option) *Aggregator {
	if policy == nil {
		policy = ConsecutiveDays{Location: time.UTC}
	}
	a := &Aggregator{streak: policy, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Compute reduces one user's rows into a summary. Rows are validated first;
// nothing is computed if any row is malformed.
func (a *Aggregator) Compute(tasks []models.Task, sessions []models.StudySession) (models.ProgressSummary, error) {
	if err := Validate(tasks, sessions); err != nil {
		return models.ProgressSummary{}, err
	}

	var summary models.ProgressSummary
	var completions []time.Time
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		points, _ := Points(t.Difficulty)
		summary.TotalPoints += points
		summary.TasksCompleted++
		completions = append(completions, *t.CompletedAt)
	}

	minutes := 0
	for _, s := range sessions {
		minutes += s.Duration
	}
	summary.StudyHours = minutesToHours(minutes)
	summary.CurrentStreak = a.streak.Streak(completions, a.now())

	return summary, nil
}

// minutesToHours rounds half up to one decimal using integer tenths so the
// result does not depend on float error.
func minutesToHours(minutes int) float64 {
	tenths := (minutes*10 + 30) / 60
	return float64(tenths) / 10
}

// Validate checks the aggregator preconditions.
func Validate(tasks []models.Task, sessions []models.StudySession) error {
	for _, t := range tasks {
		if _, ok := Points(t.Difficulty); !ok {
			return &InvalidDataError{Entity: "task", ID: t.ID, Field: "difficulty", Reason: "must be easy, medium or hard, got " + string(t.Difficulty)}
		}
		if t.Completed && t.CompletedAt == nil {
			return &InvalidDataError{Entity: "task", ID: t.ID, Field: "completedAt", Reason: "is missing on a completed task"}
		}
		if !t.Completed && t.CompletedAt != nil {
			return &InvalidDataError{Entity: "task", ID: t.ID, Field: "completedAt", Reason: "is set on an incomplete task"}
		}
	}
	for _, s := range sessions {
		if s.Duration <= 0 {
			return &InvalidDataError{Entity: "study session", ID: s.ID, Field: "duration", Reason: "must be positive"}
		}
	}
	return nil
}
