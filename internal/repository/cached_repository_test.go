package repository

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache - кэш в памяти для тестов
type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet {
		return nil, false, errors.New("cache unavailable")
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

func discardLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	db := testutil.NewSQLite(t)
	testutil.Create(t, db, &domain.Region{ID: 1, RegionName: "EMEA"})
	c := newMemoryCache()
	var logs bytes.Buffer
	repo := WithCache(NewRegionRepository(db), c, "hr:region", time.Minute, discardLogger(&logs))
	ctx := context.Background()
	queries := testutil.CountQueries(t, db)

	first, found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, c.has("hr:region:1"))
	assert.Equal(t, 1, *queries)

	second, found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, *queries, "second read must be served from cache")
	assert.Equal(t, first.RegionName, second.RegionName)
	assert.NotSame(t, first, second)
}

func TestCachedRepository_MissIsNotCached(t *testing.T) {
	db := testutil.NewSQLite(t)
	c := newMemoryCache()
	var logs bytes.Buffer
	repo := WithCache(NewRegionRepository(db), c, "hr:region", time.Minute, discardLogger(&logs))

	_, found, err := repo.FindByID(context.Background(), 404)

	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, c.has("hr:region:404"))
}

func TestCachedRepository_SaveAndDeleteEvict(t *testing.T) {
	db := testutil.NewSQLite(t)
	testutil.Create(t, db, &domain.Task{ID: 1, Title: "old"})
	c := newMemoryCache()
	var logs bytes.Buffer
	repo := WithCache(NewTaskRepository(db), c, "hr:task", time.Minute, discardLogger(&logs))
	ctx := context.Background()

	task, _, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, c.has("hr:task:1"))

	task.Title = "new"
	require.NoError(t, repo.Save(ctx, task))
	assert.False(t, c.has("hr:task:1"))

	reloaded, _, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "new", reloaded.Title)

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, c.has("hr:task:1"))

	_, found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCachedRepository_CacheFailureFallsThrough(t *testing.T) {
	db := testutil.NewSQLite(t)
	testutil.Create(t, db, &domain.Region{ID: 1, RegionName: "EMEA"})
	c := newMemoryCache()
	c.failGet = true
	var logs bytes.Buffer
	repo := WithCache(NewRegionRepository(db), c, "hr:region", time.Minute, discardLogger(&logs))

	region, found, err := repo.FindByID(context.Background(), 1)

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "EMEA", region.RegionName)
	assert.Contains(t, logs.String(), "cache read failed")
}

func TestWithDepartmentCache_KeepsEmployeesQuery(t *testing.T) {
	db := testutil.NewSQLite(t)
	seedSales(t, db)
	c := newMemoryCache()
	var logs bytes.Buffer
	repo := WithDepartmentCache(NewDepartmentRepository(db), c, time.Minute, discardLogger(&logs))
	ctx := context.Background()

	dept, found, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Sales", dept.DepartmentName)
	assert.True(t, c.has("hr:department:2"))

	withEmployees, found, err := repo.FindByIDWithEmployees(ctx, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, withEmployees.Employees, 2)
}
