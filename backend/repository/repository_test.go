package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/backend/config"
	"studyhub/backend/models"
	"studyhub/backend/utils"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := utils.InitDB(&config.Config{
		DBDriver: "sqlite",
		DBPath:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return New(db)
}

func createUser(t *testing.T, repo *Repository, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, FirstName: "Ada", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	require.NotEmpty(t, user.ID)
	return user
}

func TestUsers(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	user := createUser(t, repo, "  Ada@Example.com ")
	assert.Equal(t, "ada@example.com", user.Email)

	found, err := repo.FindUserByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found.LastName = "Lovelace"
	require.NoError(t, repo.SaveUser(ctx, found))

	byID, err := repo.FindUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", byID.LastName)

	_, err = repo.FindUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, repo.CreateUser(ctx, &models.User{Email: "ada@example.com", PasswordHash: "x"}))
	assert.NoError(t, repo.Ping(ctx))
}

func TestTasksAreScopedToOwner(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	alice := repo.ForUser(createUser(t, repo, "alice@example.com").ID)
	bob := repo.ForUser(createUser(t, repo, "bob@example.com").ID)

	older := &models.Task{Name: "read chapter 1", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Task{Name: "flashcards", Difficulty: models.DifficultyHard}
	require.NoError(t, alice.CreateTask(ctx, older))
	require.NoError(t, alice.CreateTask(ctx, newer))
	require.NoError(t, bob.CreateTask(ctx, &models.Task{Name: "bob's task"}))

	assert.Equal(t, models.DifficultyMedium, older.Difficulty)
	assert.Equal(t, alice.UserID(), older.UserID)

	tasks, err := alice.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, newer.ID, tasks[0].ID)
	assert.Equal(t, older.ID, tasks[1].ID)

	_, err = bob.Task(ctx, older.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, bob.DeleteTask(ctx, older.ID), ErrNotFound)
	assert.ErrorIs(t, bob.SaveTask(ctx, older), ErrNotFound)

	older.SetCompleted(true, time.Now())
	require.NoError(t, alice.SaveTask(ctx, older))

	reloaded, err := alice.Task(ctx, older.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Completed)
	require.NotNil(t, reloaded.CompletedAt)

	require.NoError(t, alice.DeleteTask(ctx, older.ID))
	tasks, err = alice.Tasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestEmptyListsAreNotNil(t *testing.T) {
	repo := setupRepo(t)
	scope := repo.ForUser(createUser(t, repo, "empty@example.com").ID)
	ctx := context.Background()

	tasks, err := scope.Tasks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	sessions, err := scope.StudySessions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, sessions)
}

func TestNotesSkillsAchievementsSessions(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	scope := repo.ForUser(createUser(t, repo, "carol@example.com").ID)
	other := repo.ForUser(createUser(t, repo, "dave@example.com").ID)

	note := &models.Note{Title: "exam", Content: "room 101"}
	require.NoError(t, scope.CreateNote(ctx, note))
	assert.ErrorIs(t, other.DeleteNote(ctx, note.ID), ErrNotFound)
	notes, err := scope.Notes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	require.NoError(t, scope.DeleteNote(ctx, note.ID))

	skill := &models.Skill{Name: "Go", Level: models.SkillAdvanced, Progress: 75}
	require.NoError(t, scope.CreateSkill(ctx, skill))
	skill.Progress = 80
	require.NoError(t, scope.SaveSkill(ctx, skill))
	got, err := scope.Skill(ctx, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, got.Progress)
	_, err = other.Skill(ctx, skill.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, scope.DeleteSkill(ctx, skill.ID))

	achievement := &models.Achievement{Name: "Certificate"}
	require.NoError(t, scope.CreateAchievement(ctx, achievement))
	assert.False(t, achievement.AchievedAt.IsZero())
	achievements, err := scope.Achievements(ctx)
	require.NoError(t, err)
	assert.Len(t, achievements, 1)
	_, err = other.Achievement(ctx, achievement.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, scope.DeleteAchievement(ctx, achievement.ID))

	session := &models.StudySession{Duration: 25}
	require.NoError(t, scope.CreateStudySession(ctx, session))
	assert.Equal(t, models.DefaultSessionType, session.Type)
	assert.False(t, session.CompletedAt.IsZero())
	sessions, err := scope.StudySessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
	otherSessions, err := other.StudySessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, otherSessions)
}

func TestDueReminders(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	user := createUser(t, repo, "erin@example.com")
	scope := repo.ForUser(user.ID)

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	earlier := now.Add(-2 * time.Hour)
	future := now.Add(time.Hour)

	due := &models.Note{Title: "due", Content: "c", ReminderDate: &past}
	dueEarlier := &models.Note{Title: "due earlier", Content: "c", ReminderDate: &earlier}
	later := &models.Note{Title: "later", Content: "c", ReminderDate: &future}
	plain := &models.Note{Title: "plain", Content: "c"}
	for _, n := range []*models.Note{due, dueEarlier, later, plain} {
		require.NoError(t, scope.CreateNote(ctx, n))
	}

	reminders, err := repo.DueReminders(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, dueEarlier.ID, reminders[0].Note.ID)
	assert.Equal(t, due.ID, reminders[1].Note.ID)
	assert.Equal(t, "erin@example.com", reminders[0].User.Email)

	limited, err := repo.DueReminders(ctx, now, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, repo.MarkReminderSent(ctx, dueEarlier.ID, now))
	assert.ErrorIs(t, repo.MarkReminderSent(ctx, dueEarlier.ID, now), ErrNotFound)

	reminders, err = repo.DueReminders(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, due.ID, reminders[0].Note.ID)
}

func TestDueRemindersSkipsOrphanedNotes(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	user := createUser(t, repo, "frank@example.com")

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		at := now.Add(-time.Duration(10+i) * time.Hour)
		orphan := &models.Note{UserID: "deleted-user", Title: "orphan", Content: "c", ReminderDate: &at}
		require.NoError(t, repo.db.Create(orphan).Error)
	}

	at := now.Add(-time.Hour)
	owned := &models.Note{Title: "owned", Content: "c", ReminderDate: &at}
	require.NoError(t, repo.ForUser(user.ID).CreateNote(ctx, owned))

	reminders, err := repo.DueReminders(ctx, now, 1)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, owned.ID, reminders[0].Note.ID)
	assert.Equal(t, user.ID, reminders[0].User.ID)
}
