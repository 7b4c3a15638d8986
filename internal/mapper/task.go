package mapper

import (
	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
)

// TaskMapper - маппер Task <-> TaskDTO
type TaskMapper struct{}

var _ EntityMapper[dto.TaskDTO, domain.Task] = TaskMapper{}

func (TaskMapper) ToDto(e *domain.Task) *dto.TaskDTO {
	if e == nil {
		return nil
	}
	return &dto.TaskDTO{
		ID:          idPtr(e.ID),
		Title:       e.Title,
		Description: e.Description,
	}
}

func (TaskMapper) ToEntity(d *dto.TaskDTO) *domain.Task {
	if d == nil {
		return nil
	}
	return &domain.Task{
		ID:          idValue(d.ID),
		Title:       d.Title,
		Description: d.Description,
	}
}

func (m TaskMapper) ToDtoList(list []*domain.Task) []*dto.TaskDTO {
	return mapList(list, m.ToDto)
}

func (m TaskMapper) ToEntityList(list []*dto.TaskDTO) []*domain.Task {
	return mapList(list, m.ToEntity)
}

func (TaskMapper) PartialUpdate(e *domain.Task, d *dto.TaskDTO) {
	if e == nil || d == nil {
		return
	}
	if d.Title != "" {
		e.Title = d.Title
	}
	if d.Description != "" {
		e.Description = d.Description
	}
}
