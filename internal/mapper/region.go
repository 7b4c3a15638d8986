package mapper

import (
	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
)

// RegionMapper - маппер Region <-> RegionDTO
type RegionMapper struct{}

var _ EntityMapper[dto.RegionDTO, domain.Region] = RegionMapper{}

func (RegionMapper) ToDto(e *domain.Region) *dto.RegionDTO {
	if e == nil {
		return nil
	}
	return &dto.RegionDTO{
		ID:         idPtr(e.ID),
		RegionName: e.RegionName,
	}
}

func (RegionMapper) ToEntity(d *dto.RegionDTO) *domain.Region {
	if d == nil {
		return nil
	}
	return &domain.Region{
		ID:         idValue(d.ID),
		RegionName: d.RegionName,
	}
}

func (m RegionMapper) ToDtoList(list []*domain.Region) []*dto.RegionDTO {
	return mapList(list, m.ToDto)
}

func (m RegionMapper) ToEntityList(list []*dto.RegionDTO) []*domain.Region {
	return mapList(list, m.ToEntity)
}

func (RegionMapper) PartialUpdate(e *domain.Region, d *dto.RegionDTO) {
	if e == nil || d == nil {
		return
	}
	if d.RegionName != "" {
		e.RegionName = d.RegionName
	}
}

// ToDtoRegionRegionName - проекция "regionRegionName": только id и regionName
func (RegionMapper) ToDtoRegionRegionName(e *domain.Region) *dto.RegionDTO {
	if e == nil {
		return nil
	}
	return &dto.RegionDTO{
		ID:         idPtr(e.ID),
		RegionName: e.RegionName,
	}
}

// Projection возвращает именованную проекцию региона
func (m RegionMapper) Projection(name string) (func(*domain.Region) *dto.RegionDTO, bool) {
	switch name {
	case RegionRegionName:
		return m.ToDtoRegionRegionName, true
	default:
		return nil, false
	}
}
