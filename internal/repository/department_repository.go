package repository

import (
	"context"

	"github.com/hr-entity-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	Repository[domain.Department]
	FindByIDWithEmployees(ctx context.Context, id int64) (*domain.Department, bool, error)
}

type departmentRepository struct {
	Repository[domain.Department]
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{
		Repository: newGormRepository[domain.Department](db),
		db:         db,
	}
}

// FindByIDWithEmployees загружает подразделение вместе со списком сотрудников
// и связывает обе стороны: у каждого сотрудника Department указывает на dept.
func (r *departmentRepository) FindByIDWithEmployees(ctx context.Context, id int64) (*domain.Department, bool, error) {
	query := r.db.WithContext(ctx).Preload("Employees", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})

	dept, found, err := first[domain.Department](query, id)
	if err != nil || !found {
		return nil, found, err
	}

	for _, emp := range dept.Employees {
		emp.Department = dept
	}
	return dept, true, nil
}
