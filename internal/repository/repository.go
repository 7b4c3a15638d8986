package repository

import (
	"context"
	"errors"

	"github.com/hr-entity-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Page - параметры постраничной выборки
type Page struct {
	Number int
	Size   int
}

// Repository определяет общий интерфейс хранения сущности T.
// Отсутствие записи возвращается как found == false, а не как ошибка.
type Repository[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, bool, error)
	FindByIDWithRelations(ctx context.Context, id int64, relations ...string) (*T, bool, error)
	FindAll(ctx context.Context, page Page) ([]*T, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type gormRepository[T any] struct {
	db *gorm.DB
}

func newGormRepository[T any](db *gorm.DB) *gormRepository[T] {
	return &gormRepository[T]{db: db}
}

// FindByID загружает только саму запись: связи остаются незагруженными,
// известны лишь внешние ключи.
func (r *gormRepository[T]) FindByID(ctx context.Context, id int64) (*T, bool, error) {
	return first[T](r.db.WithContext(ctx), id)
}

// FindByIDWithRelations дополнительно загружает перечисленные связи (Preload)
func (r *gormRepository[T]) FindByIDWithRelations(ctx context.Context, id int64, relations ...string) (*T, bool, error) {
	query := r.db.WithContext(ctx)
	for _, relation := range relations {
		query = query.Preload(relation)
	}
	return first[T](query, id)
}

func (r *gormRepository[T]) FindAll(ctx context.Context, page Page) ([]*T, error) {
	var entities []*T
	err := paginate(r.db.WithContext(ctx), page).Find(&entities).Error
	return entities, err
}

func (r *gormRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

// Save создаёт или обновляет запись. Связанные сущности не сохраняются:
// связь хранится во внешнем ключе стороны-владельца.
func (r *gormRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *gormRepository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func first[T any](query *gorm.DB, id int64) (*T, bool, error) {
	var entity T
	err := query.First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &entity, true, nil
}

func paginate(query *gorm.DB, page Page) *gorm.DB {
	query = query.Order("id ASC")
	if page.Size > 0 {
		query = query.Offset(page.Number * page.Size).Limit(page.Size)
	}
	return query
}

// NewRegionRepository создаёт репозиторий регионов
func NewRegionRepository(db *gorm.DB) Repository[domain.Region] {
	return newGormRepository[domain.Region](db)
}

// NewCountryRepository создаёт репозиторий стран
func NewCountryRepository(db *gorm.DB) Repository[domain.Country] {
	return newGormRepository[domain.Country](db)
}

// NewLocationRepository создаёт репозиторий адресов
func NewLocationRepository(db *gorm.DB) Repository[domain.Location] {
	return newGormRepository[domain.Location](db)
}

// NewTaskRepository создаёт репозиторий задач
func NewTaskRepository(db *gorm.DB) Repository[domain.Task] {
	return newGormRepository[domain.Task](db)
}

// NewJobHistoryRepository создаёт репозиторий истории должностей
func NewJobHistoryRepository(db *gorm.DB) Repository[domain.JobHistory] {
	return newGormRepository[domain.JobHistory](db)
}
