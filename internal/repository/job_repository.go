package repository

import (
	"context"

	"github.com/hr-entity-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobRepository определяет интерфейс для работы с должностями.
// Job владеет связью many-to-many с задачами (таблица rel_job__task).
type JobRepository interface {
	Repository[domain.Job]
	FindByIDWithTasks(ctx context.Context, id int64) (*domain.Job, bool, error)
}

type jobRepository struct {
	Repository[domain.Job]
	db *gorm.DB
}

// NewJobRepository создаёт новый экземпляр репозитория
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{
		Repository: newGormRepository[domain.Job](db),
		db:         db,
	}
}

// Save сохраняет должность и приводит строки rel_job__task в соответствие с job.Tasks.
// job.Tasks == nil означает, что задачи не загружались: связь не трогаем.
// Пустой, но не nil срез удаляет все связи.
func (r *jobRepository) Save(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(job).Error; err != nil {
			return err
		}
		if job.Tasks == nil {
			return nil
		}
		if err := tx.Exec("DELETE FROM rel_job__task WHERE job_id = ?", job.ID).Error; err != nil {
			return err
		}
		for _, task := range job.Tasks {
			if task.ID == 0 {
				continue
			}
			if err := tx.Exec("INSERT INTO rel_job__task (job_id, task_id) VALUES (?, ?)", job.ID, task.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *jobRepository) FindByIDWithTasks(ctx context.Context, id int64) (*domain.Job, bool, error) {
	query := r.db.WithContext(ctx).Preload("Tasks", func(db *gorm.DB) *gorm.DB {
		return db.Order("tasks.id ASC")
	})

	job, found, err := first[domain.Job](query, id)
	if err != nil || !found {
		return nil, found, err
	}

	for _, task := range job.Tasks {
		task.Jobs = []*domain.Job{job}
	}
	return job, true, nil
}
