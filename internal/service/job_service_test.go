package service_test

import (
	"context"
	"testing"

	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/repository"
	"github.com/hr-entity-api/internal/service"
	"github.com/hr-entity-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService(t *testing.T) service.JobService {
	t.Helper()
	db := testutil.NewSQLite(t)
	testutil.Create(t, db,
		&domain.Job{ID: 1, JobTitle: "Engineer"},
		&domain.Task{ID: 10, Title: "review"},
		&domain.Task{ID: 11, Title: "deploy"},
	)
	return service.NewJobService(repository.NewJobRepository(db), repository.NewTaskRepository(db))
}

func taskTitles(list []*dto.TaskDTO) []string {
	titles := make([]string, 0, len(list))
	for _, task := range list {
		titles = append(titles, task.Title)
	}
	return titles
}

func TestJobService_AddTask(t *testing.T) {
	ctx := context.Background()
	svc := newJobService(t)

	list, err := svc.FindTasks(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.AddTask(ctx, 1, 11)
	require.NoError(t, err)
	list, err = svc.AddTask(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.AddTask(ctx, 1, 10)
	require.NoError(t, err)

	list, err = svc.FindTasks(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"review", "deploy"}, taskTitles(list))

	_, err = svc.AddTask(ctx, 1, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.AddTask(ctx, 404, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobService_RemoveTask(t *testing.T) {
	ctx := context.Background()
	svc := newJobService(t)

	_, err := svc.AddTask(ctx, 1, 10)
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, 1, 11)
	require.NoError(t, err)

	list, err := svc.RemoveTask(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"deploy"}, taskTitles(list))

	_, err = svc.RemoveTask(ctx, 1, 10)
	assert.ErrorIs(t, err, domain.ErrTaskNotInJob)

	list, err = svc.FindTasks(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"deploy"}, taskTitles(list))
}

func TestJobService_UpdateKeepsTasks(t *testing.T) {
	ctx := context.Background()
	svc := newJobService(t)

	_, err := svc.AddTask(ctx, 1, 10)
	require.NoError(t, err)

	_, err = svc.Update(ctx, &dto.JobDTO{ID: int64Ptr(1), JobTitle: "Senior Engineer"})
	require.NoError(t, err)

	list, err := svc.FindTasks(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"review"}, taskTitles(list))
}
