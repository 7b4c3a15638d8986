package mapper

import (
	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
)

// JobHistoryMapper - маппер JobHistory <-> JobHistoryDTO.
// Все связи передаются только идентификаторами.
type JobHistoryMapper struct {
	job        JobMapper
	department DepartmentMapper
	employee   EmployeeMapper
}

var _ EntityMapper[dto.JobHistoryDTO, domain.JobHistory] = JobHistoryMapper{}

func (m JobHistoryMapper) ToDto(e *domain.JobHistory) *dto.JobHistoryDTO {
	if e == nil {
		return nil
	}
	d := &dto.JobHistoryDTO{
		ID:        idPtr(e.ID),
		StartDate: copyTime(e.StartDate),
		EndDate:   copyTime(e.EndDate),
		Language:  string(e.Language),
	}

	if e.Job != nil {
		d.Job = m.job.ToDtoJobID(e.Job)
	} else {
		d.Job = fkRef(e.JobID, func(id *int64) *dto.JobDTO { return &dto.JobDTO{ID: id} })
	}
	if e.Department != nil {
		d.Department = m.department.ToDtoDepartmentID(e.Department)
	} else {
		d.Department = fkRef(e.DepartmentID, func(id *int64) *dto.DepartmentDTO { return &dto.DepartmentDTO{ID: id} })
	}
	if e.Employee != nil {
		d.Employee = m.employee.ToDtoEmployeeID(e.Employee)
	} else {
		d.Employee = fkRef(e.EmployeeID, func(id *int64) *dto.EmployeeDTO { return &dto.EmployeeDTO{ID: id} })
	}

	return d
}

func (m JobHistoryMapper) ToEntity(d *dto.JobHistoryDTO) *domain.JobHistory {
	if d == nil {
		return nil
	}
	e := &domain.JobHistory{
		ID:        idValue(d.ID),
		StartDate: copyTime(d.StartDate),
		EndDate:   copyTime(d.EndDate),
		Language:  domain.Language(d.Language),
	}
	e.SetJob(m.job.ToEntity(d.Job))
	e.SetDepartment(m.department.ToEntity(d.Department))
	e.SetEmployee(m.employee.ToEntity(d.Employee))
	return e
}

func (m JobHistoryMapper) ToDtoList(list []*domain.JobHistory) []*dto.JobHistoryDTO {
	return mapList(list, m.ToDto)
}

func (m JobHistoryMapper) ToEntityList(list []*dto.JobHistoryDTO) []*domain.JobHistory {
	return mapList(list, m.ToEntity)
}

func (m JobHistoryMapper) PartialUpdate(e *domain.JobHistory, d *dto.JobHistoryDTO) {
	if e == nil || d == nil {
		return
	}
	if d.StartDate != nil {
		e.StartDate = copyTime(d.StartDate)
	}
	if d.EndDate != nil {
		e.EndDate = copyTime(d.EndDate)
	}
	if d.Language != "" {
		e.Language = domain.Language(d.Language)
	}
	if d.Job != nil {
		e.SetJob(m.job.ToEntity(d.Job))
	}
	if d.Department != nil {
		e.SetDepartment(m.department.ToEntity(d.Department))
	}
	if d.Employee != nil {
		e.SetEmployee(m.employee.ToEntity(d.Employee))
	}
}
