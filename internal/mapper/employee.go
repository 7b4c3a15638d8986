package mapper

import (
	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
)

// EmployeeMapper - маппер Employee <-> EmployeeDTO.
// Руководитель передаётся проекцией employeeId, подразделение - departmentDepartmentName:
// так маппинг сотрудника не разворачивает граф подразделения и не зацикливается.
type EmployeeMapper struct {
	department DepartmentMapper
}

var _ EntityMapper[dto.EmployeeDTO, domain.Employee] = EmployeeMapper{}

func (m EmployeeMapper) ToDto(e *domain.Employee) *dto.EmployeeDTO {
	if e == nil {
		return nil
	}
	return &dto.EmployeeDTO{
		ID:            idPtr(e.ID),
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		PhoneNumber:   e.PhoneNumber,
		HireDate:      copyTime(e.HireDate),
		Salary:        e.Salary,
		CommissionPct: e.CommissionPct,
		Manager:       m.managerRef(e),
		Department:    m.departmentRef(e),
	}
}

func (m EmployeeMapper) managerRef(e *domain.Employee) *dto.EmployeeDTO {
	if e.Manager != nil {
		return m.ToDtoEmployeeID(e.Manager)
	}
	return fkRef(e.ManagerID, func(id *int64) *dto.EmployeeDTO { return &dto.EmployeeDTO{ID: id} })
}

// departmentRef: без жадной загрузки известен только внешний ключ,
// поэтому название подразделения будет пустым.
func (m EmployeeMapper) departmentRef(e *domain.Employee) *dto.DepartmentDTO {
	if e.Department != nil {
		return m.ToDtoDepartmentDepartmentName(e.Department)
	}
	return fkRef(e.DepartmentID, func(id *int64) *dto.DepartmentDTO { return &dto.DepartmentDTO{ID: id} })
}

func (m EmployeeMapper) ToEntity(d *dto.EmployeeDTO) *domain.Employee {
	if d == nil {
		return nil
	}
	e := &domain.Employee{
		ID:            idValue(d.ID),
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Email:         d.Email,
		PhoneNumber:   d.PhoneNumber,
		HireDate:      copyTime(d.HireDate),
		Salary:        d.Salary,
		CommissionPct: d.CommissionPct,
	}
	e.SetManager(m.ToEntity(d.Manager))
	e.SetDepartment(m.department.ToEntity(d.Department))
	return e
}

func (m EmployeeMapper) ToDtoList(list []*domain.Employee) []*dto.EmployeeDTO {
	return mapList(list, m.ToDto)
}

func (m EmployeeMapper) ToEntityList(list []*dto.EmployeeDTO) []*domain.Employee {
	return mapList(list, m.ToEntity)
}

func (m EmployeeMapper) PartialUpdate(e *domain.Employee, d *dto.EmployeeDTO) {
	if e == nil || d == nil {
		return
	}
	if d.FirstName != "" {
		e.FirstName = d.FirstName
	}
	if d.LastName != "" {
		e.LastName = d.LastName
	}
	if d.Email != "" {
		e.Email = d.Email
	}
	if d.PhoneNumber != "" {
		e.PhoneNumber = d.PhoneNumber
	}
	if d.HireDate != nil {
		e.HireDate = copyTime(d.HireDate)
	}
	if d.Salary.Valid {
		e.Salary = d.Salary
	}
	if d.CommissionPct.Valid {
		e.CommissionPct = d.CommissionPct
	}
	if d.Manager != nil {
		e.SetManager(m.ToEntity(d.Manager))
	}
	if d.Department != nil {
		e.SetDepartment(m.department.ToEntity(d.Department))
	}
}

// ToDtoEmployeeID - проекция "employeeId": только id
func (EmployeeMapper) ToDtoEmployeeID(e *domain.Employee) *dto.EmployeeDTO {
	if e == nil {
		return nil
	}
	return &dto.EmployeeDTO{ID: idPtr(e.ID)}
}

// ToDtoDepartmentDepartmentName - проекция подразделения для ссылки из сотрудника
func (m EmployeeMapper) ToDtoDepartmentDepartmentName(d *domain.Department) *dto.DepartmentDTO {
	return m.department.ToDtoDepartmentDepartmentName(d)
}

func (m EmployeeMapper) Projection(name string) (func(*domain.Employee) *dto.EmployeeDTO, bool) {
	switch name {
	case EmployeeID:
		return m.ToDtoEmployeeID, true
	default:
		return nil, false
	}
}
