package repository

import (
	"context"

	"github.com/hr-entity-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками.
// Единственная жадно загружаемая связь - подразделение сотрудника,
// остальные связи загружаются только по внешнему ключу.
type EmployeeRepository interface {
	Repository[domain.Employee]
	FindOneWithEagerRelationships(ctx context.Context, id int64) (*domain.Employee, bool, error)
	FindAllWithEagerRelationships(ctx context.Context, page Page) ([]*domain.Employee, error)
	FindByDepartmentID(ctx context.Context, departmentID int64) ([]*domain.Employee, error)
}

type employeeRepository struct {
	Repository[domain.Employee]
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{
		Repository: newGormRepository[domain.Employee](db),
		db:         db,
	}
}

// FindOneWithEagerRelationships загружает сотрудника вместе с подразделением
// одним запросом (LEFT JOIN). Если записи нет, found == false.
func (r *employeeRepository) FindOneWithEagerRelationships(ctx context.Context, id int64) (*domain.Employee, bool, error) {
	return first[domain.Employee](r.db.WithContext(ctx).Joins("Department"), id)
}

func (r *employeeRepository) FindAllWithEagerRelationships(ctx context.Context, page Page) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	query := r.db.WithContext(ctx).Joins("Department")
	if page.Size > 0 {
		query = query.Offset(page.Number * page.Size).Limit(page.Size)
	}
	err := query.Order("employees.id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) FindByDepartmentID(ctx context.Context, departmentID int64) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("id ASC").
		Find(&employees).Error
	return employees, err
}
