package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/hr-entity-api/internal/cache"
	"github.com/hr-entity-api/internal/domain"
)

// cachedRepository - кэш второго уровня поверх Repository[T].
// Кэшируется только FindByID; Save и Delete удаляют запись из кэша.
// Ошибки кэша не прерывают запрос: они логируются, и чтение идёт в БД.
type cachedRepository[T any] struct {
	Repository[T]
	cache  cache.Cache
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// WithCache оборачивает репозиторий кэшем. Ключи имеют вид "<prefix>:<id>".
func WithCache[T any](repo Repository[T], c cache.Cache, prefix string, ttl time.Duration, logger *slog.Logger) Repository[T] {
	return &cachedRepository[T]{
		Repository: repo,
		cache:      c,
		prefix:     prefix,
		ttl:        ttl,
		logger:     logger,
	}
}

func (r *cachedRepository[T]) key(id int64) string {
	return r.prefix + ":" + strconv.FormatInt(id, 10)
}

func (r *cachedRepository[T]) FindByID(ctx context.Context, id int64) (*T, bool, error) {
	key := r.key(id)

	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit {
		var entity T
		if err := json.Unmarshal(data, &entity); err == nil {
			return &entity, true, nil
		}
		r.logger.Warn("cache entry is corrupted", slog.String("key", key))
	}

	entity, found, err := r.Repository.FindByID(ctx, id)
	if err != nil || !found {
		return entity, found, err
	}

	if data, err := json.Marshal(entity); err == nil {
		if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return entity, true, nil
}

func (r *cachedRepository[T]) Save(ctx context.Context, entity *T) error {
	if err := r.Repository.Save(ctx, entity); err != nil {
		return err
	}
	if e, ok := any(entity).(identified); ok && e.GetID() != 0 {
		r.evict(ctx, e.GetID())
	}
	return nil
}

func (r *cachedRepository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.Repository.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.evict(ctx, id)
	return deleted, nil
}

func (r *cachedRepository[T]) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, r.key(id)); err != nil {
		r.logger.Warn("cache eviction failed", slog.String("key", r.key(id)), slog.Any("error", err))
	}
}

type identified interface {
	GetID() int64
}

type cachedDepartmentRepository struct {
	Repository[domain.Department]
	inner DepartmentRepository
}

// WithDepartmentCache - WithCache для DepartmentRepository; загрузка со списком
// сотрудников всегда идёт в БД.
func WithDepartmentCache(repo DepartmentRepository, c cache.Cache, ttl time.Duration, logger *slog.Logger) DepartmentRepository {
	return &cachedDepartmentRepository{
		Repository: WithCache[domain.Department](repo, c, "hr:department", ttl, logger),
		inner:      repo,
	}
}

func (r *cachedDepartmentRepository) FindByIDWithEmployees(ctx context.Context, id int64) (*domain.Department, bool, error) {
	return r.inner.FindByIDWithEmployees(ctx, id)
}
