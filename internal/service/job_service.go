package service

import (
	"context"
	"fmt"

	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/mapper"
	"github.com/hr-entity-api/internal/repository"
)

// JobService определяет интерфейс бизнес-логики для должностей
type JobService interface {
	CrudService[dto.JobDTO]
	FindTasks(ctx context.Context, id int64) ([]*dto.TaskDTO, error)
	AddTask(ctx context.Context, id, taskID int64) ([]*dto.TaskDTO, error)
	RemoveTask(ctx context.Context, id, taskID int64) ([]*dto.TaskDTO, error)
}

type jobService struct {
	*crudService[domain.Job, dto.JobDTO]
	repo       repository.JobRepository
	taskRepo   repository.Repository[domain.Task]
	taskMapper mapper.TaskMapper
}

// NewJobService создаёт новый экземпляр сервиса
func NewJobService(repo repository.JobRepository, taskRepo repository.Repository[domain.Task]) JobService {
	return &jobService{
		crudService: newCrudService[domain.Job, dto.JobDTO]("job", repo, mapper.JobMapper{}, func(d *dto.JobDTO) *int64 { return d.ID }),
		repo:        repo,
		taskRepo:    taskRepo,
	}
}

func (s *jobService) FindTasks(ctx context.Context, id int64) ([]*dto.TaskDTO, error) {
	job, err := s.loadWithTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	return nonNil(s.taskMapper.ToDtoList(job.Tasks)), nil
}

// AddTask связывает задачу с должностью и возвращает итоговый список задач
func (s *jobService) AddTask(ctx context.Context, id, taskID int64) ([]*dto.TaskDTO, error) {
	job, err := s.loadWithTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	task, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	job.AddTask(task)
	if err := s.repo.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("add task %d to job %d: %w", taskID, id, err)
	}
	return nonNil(s.taskMapper.ToDtoList(job.Tasks)), nil
}

func (s *jobService) RemoveTask(ctx context.Context, id, taskID int64) ([]*dto.TaskDTO, error) {
	job, err := s.loadWithTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	task, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !domain.Contains(job.Tasks, task) {
		return nil, domain.ErrTaskNotInJob
	}

	job.RemoveTask(task)
	if err := s.repo.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("remove task %d from job %d: %w", taskID, id, err)
	}
	return nonNil(s.taskMapper.ToDtoList(job.Tasks)), nil
}

func (s *jobService) loadWithTasks(ctx context.Context, id int64) (*domain.Job, error) {
	job, found, err := s.repo.FindByIDWithTasks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	// пустой, но не nil срез: Save должен синхронизировать связи
	if job.Tasks == nil {
		job.Tasks = []*domain.Task{}
	}
	return job, nil
}

func (s *jobService) loadTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, found, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return task, nil
}
