package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studyhub/backend/models"
)

// UserScope exposes the rows owned by a single user.
type UserScope struct {
	db     *gorm.DB
	userID string
}

func (s *UserScope) UserID() string {
	return s.userID
}

func (s *UserScope) owned(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Where("user_id = ?", s.userID)
}

func list[T any](ctx context.Context, s *UserScope, order string, op string) ([]T, error) {
	out := []T{}
	if err := s.owned(ctx).Order(order).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func get[T any](ctx context.Context, s *UserScope, id string, op string) (*T, error) {
	var out T
	if err := s.owned(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, op)
	}
	return &out, nil
}

func remove[T any](ctx context.Context, s *UserScope, id string, op string) error {
	var model T
	res := s.owned(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserScope) create(ctx context.Context, value interface{}, op string) error {
	if err := s.db.WithContext(ctx).Create(value).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *UserScope) save(ctx context.Context, ownerID string, value interface{}, op string) error {
	if ownerID != s.userID {
		return ErrNotFound
	}
	if err := s.db.WithContext(ctx).Save(value).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Tasks

func (s *UserScope) Tasks(ctx context.Context) ([]models.Task, error) {
	return list[models.Task](ctx, s, "created_at DESC", "list tasks")
}

func (s *UserScope) Task(ctx context.Context, id string) (*models.Task, error) {
	return get[models.Task](ctx, s, id, "get task")
}

func (s *UserScope) CreateTask(ctx context.Context, task *models.Task) error {
	task.UserID = s.userID
	if task.Difficulty == "" {
		task.Difficulty = models.DifficultyMedium
	}
	return s.create(ctx, task, "create task")
}

func (s *UserScope) SaveTask(ctx context.Context, task *models.Task) error {
	return s.save(ctx, task.UserID, task, "save task")
}

func (s *UserScope) DeleteTask(ctx context.Context, id string) error {
	return remove[models.Task](ctx, s, id, "delete task")
}

// Notes

func (s *UserScope) Notes(ctx context.Context) ([]models.Note, error) {
	return list[models.Note](ctx, s, "created_at DESC", "list notes")
}

func (s *UserScope) CreateNote(ctx context.Context, note *models.Note) error {
	note.UserID = s.userID
	return s.create(ctx, note, "create note")
}

func (s *UserScope) DeleteNote(ctx context.Context, id string) error {
	return remove[models.Note](ctx, s, id, "delete note")
}

// Skills

func (s *UserScope) Skills(ctx context.Context) ([]models.Skill, error) {
	return list[models.Skill](ctx, s, "created_at DESC", "list skills")
}

func (s *UserScope) Skill(ctx context.Context, id string) (*models.Skill, error) {
	return get[models.Skill](ctx, s, id, "get skill")
}

func (s *UserScope) CreateSkill(ctx context.Context, skill *models.Skill) error {
	skill.UserID = s.userID
	return s.create(ctx, skill, "create skill")
}

func (s *UserScope) SaveSkill(ctx context.Context, skill *models.Skill) error {
	return s.save(ctx, skill.UserID, skill, "save skill")
}

func (s *UserScope) DeleteSkill(ctx context.Context, id string) error {
	return remove[models.Skill](ctx, s, id, "delete skill")
}

// Achievements

func (s *UserScope) Achievements(ctx context.Context) ([]models.Achievement, error) {
	return list[models.Achievement](ctx, s, "achieved_at DESC", "list achievements")
}

func (s *UserScope) Achievement(ctx context.Context, id string) (*models.Achievement, error) {
	return get[models.Achievement](ctx, s, id, "get achievement")
}

func (s *UserScope) CreateAchievement(ctx context.Context, achievement *models.Achievement) error {
	achievement.UserID = s.userID
	if achievement.AchievedAt.IsZero() {
		achievement.AchievedAt = time.Now().UTC()
	}
	return s.create(ctx, achievement, "create achievement")
}

func (s *UserScope) DeleteAchievement(ctx context.Context, id string) error {
	return remove[models.Achievement](ctx, s, id, "delete achievement")
}

// Study sessions

func (s *UserScope) StudySessions(ctx context.Context) ([]models.StudySession, error) {
	return list[models.StudySession](ctx, s, "completed_at DESC", "list study sessions")
}

func (s *UserScope) CreateStudySession(ctx context.Context, session *models.StudySession) error {
	session.UserID = s.userID
	if session.Type == "" {
		session.Type = models.DefaultSessionType
	}
	if session.CompletedAt.IsZero() {
		session.CompletedAt = time.Now().UTC()
	}
	return s.create(ctx, session, "create study session")
}
