package service

import (
	"context"
	"fmt"

	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/mapper"
	"github.com/hr-entity-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	CrudService[dto.DepartmentDTO]
	FindEmployees(ctx context.Context, id int64) ([]*dto.EmployeeDTO, error)
	AddEmployee(ctx context.Context, id, employeeID int64) (*dto.EmployeeDTO, error)
	RemoveEmployee(ctx context.Context, id, employeeID int64) (*dto.EmployeeDTO, error)
	FindProjection(ctx context.Context, id int64, name string) (*dto.DepartmentDTO, error)
}

type departmentService struct {
	*crudService[domain.Department, dto.DepartmentDTO]
	repo           repository.DepartmentRepository
	employeeRepo   repository.EmployeeRepository
	mapper         mapper.DepartmentMapper
	employeeMapper mapper.EmployeeMapper
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(repo repository.DepartmentRepository, employeeRepo repository.EmployeeRepository) DepartmentService {
	m := mapper.DepartmentMapper{}
	return &departmentService{
		crudService:  newCrudService[domain.Department, dto.DepartmentDTO]("department", repo, m, func(d *dto.DepartmentDTO) *int64 { return d.ID }),
		repo:         repo,
		employeeRepo: employeeRepo,
		mapper:       m,
	}
}

// FindEmployees возвращает сотрудников подразделения в порядке id
func (s *departmentService) FindEmployees(ctx context.Context, id int64) ([]*dto.EmployeeDTO, error) {
	dept, err := s.loadWithEmployees(ctx, id)
	if err != nil {
		return nil, err
	}
	return nonNil(s.employeeMapper.ToDtoList(dept.Employees)), nil
}

// AddEmployee переводит сотрудника в подразделение.
// Повторное добавление не создаёт дубликата.
func (s *departmentService) AddEmployee(ctx context.Context, id, employeeID int64) (*dto.EmployeeDTO, error) {
	dept, err := s.loadWithEmployees(ctx, id)
	if err != nil {
		return nil, err
	}
	employee, err := s.loadEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	dept.AddEmployee(employee)
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, fmt.Errorf("add employee %d to department %d: %w", employeeID, id, err)
	}
	return s.employeeMapper.ToDto(employee), nil
}

// RemoveEmployee исключает сотрудника из подразделения, обнуляя его department_id
func (s *departmentService) RemoveEmployee(ctx context.Context, id, employeeID int64) (*dto.EmployeeDTO, error) {
	dept, err := s.loadWithEmployees(ctx, id)
	if err != nil {
		return nil, err
	}
	employee, err := s.loadEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !domain.Contains(dept.Employees, employee) {
		return nil, domain.ErrEmployeeNotInDepartment
	}

	dept.RemoveEmployee(employee)
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, fmt.Errorf("remove employee %d from department %d: %w", employeeID, id, err)
	}
	return s.employeeMapper.ToDto(employee), nil
}

// FindProjection возвращает подразделение в виде именованной проекции
func (s *departmentService) FindProjection(ctx context.Context, id int64, name string) (*dto.DepartmentDTO, error) {
	project, ok := s.mapper.Projection(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProjection, name)
	}

	dept, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return project(dept), nil
}

func (s *departmentService) loadWithEmployees(ctx context.Context, id int64) (*domain.Department, error) {
	dept, found, err := s.repo.FindByIDWithEmployees(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get department %d: %w", id, err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return dept, nil
}

func (s *departmentService) loadEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, found, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee %d: %w", id, err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return employee, nil
}
