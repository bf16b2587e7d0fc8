package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"feedbackpulse/internal/db"
	"feedbackpulse/internal/model"
)

// newTestDB opens a migrated in-memory SQLite database with foreign keys on.
// A single connection keeps every query on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := db.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(conn))
	return conn
}

func seedUser(t *testing.T, conn *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email}
	require.NoError(t, NewUserRepository(conn).Create(context.Background(), user))
	return user
}

func seedProject(t *testing.T, conn *gorm.DB, userID uint, key string) *model.Project {
	t.Helper()
	project := &model.Project{UserID: userID, Name: "Site " + key, ProjectKey: key}
	require.NoError(t, NewProjectRepository(conn).Create(context.Background(), project))
	return project
}

func seedFeedback(t *testing.T, conn *gorm.DB, projectID uint, feedbackType model.FeedbackType, createdAt time.Time) *model.Feedback {
	t.Helper()
	item := &model.Feedback{
		ProjectID: projectID,
		Type:      feedbackType,
		Message:   "message for project",
		CreatedAt: createdAt,
	}
	require.NoError(t, NewFeedbackRepository(conn).Create(context.Background(), item))
	return item
}

func seedLabel(t *testing.T, conn *gorm.DB, feedbackID uint, label string) *model.FeedbackLabel {
	t.Helper()
	row := &model.FeedbackLabel{FeedbackID: feedbackID, Label: label}
	require.NoError(t, NewLabelRepository(conn).Create(context.Background(), row))
	return row
}

func countRows(t *testing.T, conn *gorm.DB, m interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, conn.Model(m).Where(query, args...).Count(&n).Error)
	return n
}
