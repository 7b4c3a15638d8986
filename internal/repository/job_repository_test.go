package repository

import (
	"context"
	"testing"

	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func taskIDs(db *gorm.DB, t *testing.T, jobID int64) []int64 {
	t.Helper()
	var ids []int64
	require.NoError(t, db.Raw("SELECT task_id FROM rel_job__task WHERE job_id = ? ORDER BY task_id", jobID).Scan(&ids).Error)
	return ids
}

func TestJobRepository_SaveSyncsJoinTable(t *testing.T) {
	db := testutil.NewSQLite(t)
	testutil.Create(t, db,
		&domain.Task{ID: 1, Title: "a"},
		&domain.Task{ID: 2, Title: "b"},
		&domain.Task{ID: 3, Title: "c"},
	)
	repo := NewJobRepository(db)
	ctx := context.Background()

	job := (&domain.Job{JobTitle: "Engineer"}).
		AddTask(&domain.Task{ID: 1}).
		AddTask(&domain.Task{ID: 2})
	require.NoError(t, repo.Save(ctx, job))
	require.NotZero(t, job.ID)
	assert.Equal(t, []int64{1, 2}, taskIDs(db, t, job.ID))

	loaded, found, err := repo.FindByIDWithTasks(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, loaded.Tasks, 2)
	assert.Equal(t, "a", loaded.Tasks[0].Title)
	assert.True(t, domain.Contains(loaded.Tasks[0].Jobs, loaded))

	loaded.RemoveTask(&domain.Task{ID: 1}).AddTask(&domain.Task{ID: 3})
	require.NoError(t, repo.Save(ctx, loaded))
	assert.Equal(t, []int64{2, 3}, taskIDs(db, t, job.ID))
}

func TestJobRepository_SaveWithoutLoadedTasksKeepsLinks(t *testing.T) {
	db := testutil.NewSQLite(t)
	testutil.Create(t, db, &domain.Task{ID: 1, Title: "a"})
	repo := NewJobRepository(db)
	ctx := context.Background()

	job := (&domain.Job{JobTitle: "Engineer"}).AddTask(&domain.Task{ID: 1})
	require.NoError(t, repo.Save(ctx, job))

	lazy, found, err := repo.FindByID(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Nil(t, lazy.Tasks)

	lazy.JobTitle = "Senior Engineer"
	require.NoError(t, repo.Save(ctx, lazy))
	assert.Equal(t, []int64{1}, taskIDs(db, t, job.ID))

	lazy.SetTasks([]*domain.Task{})
	require.NoError(t, repo.Save(ctx, lazy))
	assert.Empty(t, taskIDs(db, t, job.ID))
}

func TestJobRepository_FindByIDWithTasks_NotFound(t *testing.T) {
	db := testutil.NewSQLite(t)
	repo := NewJobRepository(db)

	job, found, err := repo.FindByIDWithTasks(context.Background(), 42)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, job)
}
