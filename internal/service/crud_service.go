package service

import (
	"context"
	"fmt"

	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/mapper"
	"github.com/hr-entity-api/internal/repository"
)

// CrudService определяет общий интерфейс бизнес-логики для сущности с DTO D
type CrudService[D any] interface {
	Save(ctx context.Context, d *D) (*D, error)
	Update(ctx context.Context, d *D) (*D, error)
	PartialUpdate(ctx context.Context, d *D) (*D, error)
	FindAll(ctx context.Context, page repository.Page) ([]*D, int64, error)
	FindOne(ctx context.Context, id int64) (*D, bool, error)
	Delete(ctx context.Context, id int64) error
}

type crudService[E, D any] struct {
	name   string
	repo   repository.Repository[E]
	mapper mapper.EntityMapper[D, E]
	idOf   func(*D) *int64
	// find загружает сущность для FindOne и ответа после записи
	find func(ctx context.Context, id int64) (*E, bool, error)
}

func newCrudService[E, D any](name string, repo repository.Repository[E], m mapper.EntityMapper[D, E], idOf func(*D) *int64) *crudService[E, D] {
	return &crudService[E, D]{
		name:   name,
		repo:   repo,
		mapper: m,
		idOf:   idOf,
		find:   repo.FindByID,
	}
}

func (s *crudService[E, D]) Save(ctx context.Context, d *D) (*D, error) {
	if s.idOf(d) != nil {
		return nil, domain.ErrIDNotNull
	}

	entity := s.mapper.ToEntity(d)
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("save %s: %w", s.name, err)
	}
	return s.stored(ctx, entity)
}

func (s *crudService[E, D]) Update(ctx context.Context, d *D) (*D, error) {
	id := s.idOf(d)
	if id == nil {
		return nil, domain.ErrIDNull
	}

	if _, err := s.load(ctx, *id); err != nil {
		return nil, err
	}

	entity := s.mapper.ToEntity(d)
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("update %s %d: %w", s.name, *id, err)
	}
	return s.stored(ctx, entity)
}

// PartialUpdate применяет к сохранённой сущности только заполненные поля DTO
func (s *crudService[E, D]) PartialUpdate(ctx context.Context, d *D) (*D, error) {
	id := s.idOf(d)
	if id == nil {
		return nil, domain.ErrIDNull
	}

	entity, err := s.load(ctx, *id)
	if err != nil {
		return nil, err
	}

	s.mapper.PartialUpdate(entity, d)
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("partial update %s %d: %w", s.name, *id, err)
	}
	return s.stored(ctx, entity)
}

func (s *crudService[E, D]) FindAll(ctx context.Context, page repository.Page) ([]*D, int64, error) {
	entities, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", s.name, err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", s.name, err)
	}

	return nonNil(s.mapper.ToDtoList(entities)), total, nil
}

func (s *crudService[E, D]) FindOne(ctx context.Context, id int64) (*D, bool, error) {
	entity, found, err := s.find(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("get %s %d: %w", s.name, id, err)
	}
	if !found {
		return nil, false, nil
	}
	return s.mapper.ToDto(entity), true, nil
}

func (s *crudService[E, D]) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", s.name, id, err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// stored перечитывает сохранённую сущность: вложенные проекции в ответе
// берутся из БД, а не из тела запроса
func (s *crudService[E, D]) stored(ctx context.Context, entity *E) (*D, error) {
	e, ok := any(entity).(interface{ GetID() int64 })
	if !ok {
		return s.mapper.ToDto(entity), nil
	}
	reloaded, err := s.load(ctx, e.GetID())
	if err != nil {
		return nil, err
	}
	return s.mapper.ToDto(reloaded), nil
}

// load возвращает domain.ErrNotFound, если сущности нет
func (s *crudService[E, D]) load(ctx context.Context, id int64) (*E, error) {
	entity, found, err := s.find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", s.name, id, err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return entity, nil
}

// nonNil нужен, чтобы пустой список кодировался в JSON как [], а не null
func nonNil[T any](list []*T) []*T {
	if list == nil {
		return []*T{}
	}
	return list
}

// NewRegionService создаёт сервис регионов
func NewRegionService(repo repository.Repository[domain.Region]) CrudService[dto.RegionDTO] {
	return newCrudService[domain.Region, dto.RegionDTO]("region", repo, mapper.RegionMapper{}, func(d *dto.RegionDTO) *int64 { return d.ID })
}

// NewCountryService создаёт сервис стран
func NewCountryService(repo repository.Repository[domain.Country]) CrudService[dto.CountryDTO] {
	return newCrudService[domain.Country, dto.CountryDTO]("country", repo, mapper.CountryMapper{}, func(d *dto.CountryDTO) *int64 { return d.ID })
}

// NewLocationService создаёт сервис адресов
func NewLocationService(repo repository.Repository[domain.Location]) CrudService[dto.LocationDTO] {
	return newCrudService[domain.Location, dto.LocationDTO]("location", repo, mapper.LocationMapper{}, func(d *dto.LocationDTO) *int64 { return d.ID })
}

// NewTaskService создаёт сервис задач
func NewTaskService(repo repository.Repository[domain.Task]) CrudService[dto.TaskDTO] {
	return newCrudService[domain.Task, dto.TaskDTO]("task", repo, mapper.TaskMapper{}, func(d *dto.TaskDTO) *int64 { return d.ID })
}

// NewJobHistoryService создаёт сервис истории должностей
func NewJobHistoryService(repo repository.Repository[domain.JobHistory]) CrudService[dto.JobHistoryDTO] {
	return newCrudService[domain.JobHistory, dto.JobHistoryDTO]("job history", repo, mapper.JobHistoryMapper{}, func(d *dto.JobHistoryDTO) *int64 { return d.ID })
}
