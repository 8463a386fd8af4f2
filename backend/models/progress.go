package models

// ProgressSummary is computed on demand and never stored.
type ProgressSummary struct {
	TotalPoints    int     `json:"totalPoints"`
	TasksCompleted int     `json:"tasksCompleted"`
	StudyHours     float64 `json:"studyHours"`
	CurrentStreak  int     `json:"currentStreak"`
}
