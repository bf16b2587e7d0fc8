package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"feedbackpulse/internal/model"
)

func TestProjectRepository_FindOwned(t *testing.T) {
	conn := newTestDB(t)
	repo := NewProjectRepository(conn)
	ctx := context.Background()

	owner := seedUser(t, conn, "owner@example.com")
	other := seedUser(t, conn, "other@example.com")
	project := seedProject(t, conn, owner.ID, "ABCD1234")

	found, err := repo.FindOwned(ctx, project.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "ABCD1234", found.ProjectKey)

	_, err = repo.FindOwned(ctx, project.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindOwned(ctx, project.ID+100, owner.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepository_KeyLookups(t *testing.T) {
	conn := newTestDB(t)
	repo := NewProjectRepository(conn)
	ctx := context.Background()

	owner := seedUser(t, conn, "owner@example.com")
	seedProject(t, conn, owner.ID, "KEY00001")

	exists, err := repo.KeyExists(ctx, "KEY00001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.KeyExists(ctx, "KEY00002")
	require.NoError(t, err)
	assert.False(t, exists)

	found, err := repo.FindByKey(ctx, "KEY00001")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.UserID)

	_, err = repo.FindByKey(ctx, "KEY00002")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepository_DuplicateKeyRejected(t *testing.T) {
	conn := newTestDB(t)
	owner := seedUser(t, conn, "owner@example.com")
	seedProject(t, conn, owner.ID, "SAMEKEY1")

	err := NewProjectRepository(conn).Create(context.Background(), &model.Project{
		UserID: owner.ID, Name: "Second", ProjectKey: "SAMEKEY1",
	})
	assert.Error(t, err)
}

func TestProjectRepository_ListAndRename(t *testing.T) {
	conn := newTestDB(t)
	repo := NewProjectRepository(conn)
	ctx := context.Background()

	owner := seedUser(t, conn, "owner@example.com")
	other := seedUser(t, conn, "other@example.com")
	first := seedProject(t, conn, owner.ID, "FIRST001")
	seedProject(t, conn, other.ID, "OTHER001")

	projects, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, first.ID, projects[0].ID)

	empty, err := repo.ListByUser(ctx, other.ID+100)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	stamp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.Rename(ctx, first.ID, "Renamed", stamp))

	renamed, err := repo.FindOwned(ctx, first.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", renamed.Name)
	assert.True(t, stamp.Equal(renamed.UpdatedAt.UTC()))
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	conn := newTestDB(t)
	repo := NewProjectRepository(conn)
	ctx := context.Background()

	owner := seedUser(t, conn, "owner@example.com")
	doomed := seedProject(t, conn, owner.ID, "DOOMED01")
	kept := seedProject(t, conn, owner.ID, "KEPT0001")

	now := time.Now()
	for i := 0; i < 2; i++ {
		item := seedFeedback(t, conn, doomed.ID, model.FeedbackTypeBug, now)
		seedLabel(t, conn, item.ID, "urgent")
	}
	keptItem := seedFeedback(t, conn, kept.ID, model.FeedbackTypeOther, now)
	seedLabel(t, conn, keptItem.ID, "later")

	require.NoError(t, repo.Delete(ctx, doomed.ID))

	_, err := repo.FindOwned(ctx, doomed.ID, owner.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Zero(t, countRows(t, conn, &model.Feedback{}, "project_id = ?", doomed.ID))
	assert.Equal(t, int64(1), countRows(t, conn, &model.FeedbackLabel{}, "1 = 1"))
	assert.Equal(t, int64(1), countRows(t, conn, &model.Feedback{}, "project_id = ?", kept.ID))

	// The surviving label is the kept project's.
	labels, err := NewLabelRepository(conn).ListByFeedbackIDs(ctx, []uint{keptItem.ID})
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, "later", labels[0].Label)
}
