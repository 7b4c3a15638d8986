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

func int64Ptr(v int64) *int64 { return &v }

func newRegionService(t *testing.T) service.CrudService[dto.RegionDTO] {
	t.Helper()
	return service.NewRegionService(repository.NewRegionRepository(testutil.NewSQLite(t)))
}

func TestCrudService_Save(t *testing.T) {
	ctx := context.Background()
	svc := newRegionService(t)

	created, err := svc.Save(ctx, &dto.RegionDTO{RegionName: "EMEA"})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, "EMEA", created.RegionName)

	_, err = svc.Save(ctx, &dto.RegionDTO{ID: int64Ptr(1), RegionName: "APAC"})
	assert.ErrorIs(t, err, domain.ErrIDNotNull)
}

func TestCrudService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newRegionService(t)

	created, err := svc.Save(ctx, &dto.RegionDTO{RegionName: "EMEA"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.RegionDTO{ID: created.ID, RegionName: "Europe"})
	require.NoError(t, err)
	assert.Equal(t, "Europe", updated.RegionName)

	found, ok, err := svc.FindOne(ctx, *created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Europe", found.RegionName)

	_, err = svc.Update(ctx, &dto.RegionDTO{RegionName: "x"})
	assert.ErrorIs(t, err, domain.ErrIDNull)

	_, err = svc.Update(ctx, &dto.RegionDTO{ID: int64Ptr(404), RegionName: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrudService_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTaskService(repository.NewTaskRepository(testutil.NewSQLite(t)))

	created, err := svc.Save(ctx, &dto.TaskDTO{Title: "review", Description: "code review"})
	require.NoError(t, err)

	patched, err := svc.PartialUpdate(ctx, &dto.TaskDTO{ID: created.ID, Description: "design review"})
	require.NoError(t, err)
	assert.Equal(t, "review", patched.Title)
	assert.Equal(t, "design review", patched.Description)

	_, err = svc.PartialUpdate(ctx, &dto.TaskDTO{ID: int64Ptr(404)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrudService_FindAll(t *testing.T) {
	ctx := context.Background()
	svc := newRegionService(t)

	list, total, err := svc.FindAll(ctx, repository.Page{Number: 0, Size: 10})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.Zero(t, total)

	for _, name := range []string{"EMEA", "APAC", "AMER"} {
		_, err := svc.Save(ctx, &dto.RegionDTO{RegionName: name})
		require.NoError(t, err)
	}

	list, total, err = svc.FindAll(ctx, repository.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 1)
	assert.Equal(t, "AMER", list[0].RegionName)
}

func TestCrudService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newRegionService(t)

	created, err := svc.Save(ctx, &dto.RegionDTO{RegionName: "EMEA"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, *created.ID))

	_, ok, err := svc.FindOne(ctx, *created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Delete(ctx, *created.ID), domain.ErrNotFound)
}

func TestCountryService_RegionReference(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLite(t)
	testutil.Create(t, db, &domain.Region{ID: 1, RegionName: "EMEA"})
	svc := service.NewCountryService(repository.NewCountryRepository(db))

	created, err := svc.Save(ctx, &dto.CountryDTO{CountryName: "France", Region: &dto.RegionDTO{ID: int64Ptr(1)}})
	require.NoError(t, err)

	found, ok, err := svc.FindOne(ctx, *created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, found.Region)
	assert.Equal(t, int64(1), *found.Region.ID)
}
