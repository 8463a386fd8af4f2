// Package repository is the only place that talks to the database. Rows owned
// by a user are reachable only through a UserScope, which always filters by
// the owner's id.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"studyhub/backend/models"
)

var ErrNotFound = errors.New("record not found")

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ForUser returns a view of the database restricted to one user's rows.
func (r *Repository) ForUser(userID string) *UserScope {
	return &UserScope{db: r.db, userID: userID}
}

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *Repository) FindUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err, "find user")
	}
	return &user, nil
}

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		return nil, translate(err, "find user by email")
	}
	return &user, nil
}

func (r *Repository) SaveUser(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// DueReminder is a note whose reminder time has passed, with its owner.
type DueReminder struct {
	Note models.Note
	User models.User
}

// DueReminders returns up to limit unsent reminders due at or before now,
// oldest first. Notes without an owner row are never returned, so they cannot
// fill the batch. It crosses users and is meant for the reminder worker only.
func (r *Repository) DueReminders(ctx context.Context, now time.Time, limit int) ([]DueReminder, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Select("notes.*").
		Joins("JOIN users ON users.id = notes.user_id").
		Where("notes.reminder_date IS NOT NULL AND notes.reminder_date <= ? AND notes.reminder_sent_at IS NULL", now.UTC()).
		Order("notes.reminder_date ASC").
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("find due reminders: %w", err)
	}
	if len(notes) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.UserID)
	}

	var users []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("find reminder owners: %w", err)
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	due := make([]DueReminder, 0, len(notes))
	for _, n := range notes {
		// owner deleted between the two queries
		user, ok := byID[n.UserID]
		if !ok {
			continue
		}
		due = append(due, DueReminder{Note: n, User: user})
	}
	return due, nil
}

// MarkReminderSent stamps a note so it is not picked up again.
func (r *Repository) MarkReminderSent(ctx context.Context, noteID string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ? AND reminder_sent_at IS NULL", noteID).
		Update("reminder_sent_at", at.UTC())
	if res.Error != nil {
		return fmt.Errorf("mark reminder sent: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func translate(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
