package service

import (
	"context"
	"fmt"

	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/mapper"
	"github.com/hr-entity-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	CrudService[dto.EmployeeDTO]
	FindByDepartmentID(ctx context.Context, departmentID int64) ([]*dto.EmployeeDTO, error)
}

type employeeService struct {
	*crudService[domain.Employee, dto.EmployeeDTO]
	repo   repository.EmployeeRepository
	mapper mapper.EmployeeMapper
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	m := mapper.EmployeeMapper{}
	crud := newCrudService[domain.Employee, dto.EmployeeDTO]("employee", repo, m, func(d *dto.EmployeeDTO) *int64 { return d.ID })
	// FindOne и ответы Save/Update отдают подразделение, загруженное тем же запросом
	crud.find = repo.FindOneWithEagerRelationships
	return &employeeService{
		crudService: crud,
		repo:        repo,
		mapper:      m,
	}
}

func (s *employeeService) FindAll(ctx context.Context, page repository.Page) ([]*dto.EmployeeDTO, int64, error) {
	employees, err := s.repo.FindAllWithEagerRelationships(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	return nonNil(s.mapper.ToDtoList(employees)), total, nil
}

func (s *employeeService) FindByDepartmentID(ctx context.Context, departmentID int64) ([]*dto.EmployeeDTO, error) {
	employees, err := s.repo.FindByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list employees of department %d: %w", departmentID, err)
	}
	return nonNil(s.mapper.ToDtoList(employees)), nil
}
