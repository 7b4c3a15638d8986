package mapper

import (
	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
)

// JobMapper - маппер Job <-> JobDTO. Задачи (many-to-many) в DTO не входят.
type JobMapper struct {
	employee EmployeeMapper
}

var _ EntityMapper[dto.JobDTO, domain.Job] = JobMapper{}

func (m JobMapper) ToDto(e *domain.Job) *dto.JobDTO {
	if e == nil {
		return nil
	}
	return &dto.JobDTO{
		ID:        idPtr(e.ID),
		JobTitle:  e.JobTitle,
		MinSalary: e.MinSalary,
		MaxSalary: e.MaxSalary,
		Employee:  m.employeeRef(e),
	}
}

func (m JobMapper) employeeRef(e *domain.Job) *dto.EmployeeDTO {
	if e.Employee != nil {
		return m.employee.ToDtoEmployeeID(e.Employee)
	}
	return fkRef(e.EmployeeID, func(id *int64) *dto.EmployeeDTO { return &dto.EmployeeDTO{ID: id} })
}

func (m JobMapper) ToEntity(d *dto.JobDTO) *domain.Job {
	if d == nil {
		return nil
	}
	e := &domain.Job{
		ID:        idValue(d.ID),
		JobTitle:  d.JobTitle,
		MinSalary: d.MinSalary,
		MaxSalary: d.MaxSalary,
	}
	e.SetEmployee(m.employee.ToEntity(d.Employee))
	return e
}

func (m JobMapper) ToDtoList(list []*domain.Job) []*dto.JobDTO {
	return mapList(list, m.ToDto)
}

func (m JobMapper) ToEntityList(list []*dto.JobDTO) []*domain.Job {
	return mapList(list, m.ToEntity)
}

func (m JobMapper) PartialUpdate(e *domain.Job, d *dto.JobDTO) {
	if e == nil || d == nil {
		return
	}
	if d.JobTitle != "" {
		e.JobTitle = d.JobTitle
	}
	if d.MinSalary.Valid {
		e.MinSalary = d.MinSalary
	}
	if d.MaxSalary.Valid {
		e.MaxSalary = d.MaxSalary
	}
	if d.Employee != nil {
		e.SetEmployee(m.employee.ToEntity(d.Employee))
	}
}

// ToDtoJobID - проекция "jobId"
func (JobMapper) ToDtoJobID(e *domain.Job) *dto.JobDTO {
	if e == nil {
		return nil
	}
	return &dto.JobDTO{ID: idPtr(e.ID)}
}

func (m JobMapper) Projection(name string) (func(*domain.Job) *dto.JobDTO, bool) {
	switch name {
	case JobID:
		return m.ToDtoJobID, true
	default:
		return nil, false
	}
}
