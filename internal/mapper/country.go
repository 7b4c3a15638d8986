package mapper

import (
	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
)

// CountryMapper - маппер Country <-> CountryDTO.
// Регион отображается проекцией regionRegionName.
type CountryMapper struct {
	region RegionMapper
}

var _ EntityMapper[dto.CountryDTO, domain.Country] = CountryMapper{}

func (m CountryMapper) ToDto(e *domain.Country) *dto.CountryDTO {
	if e == nil {
		return nil
	}
	return &dto.CountryDTO{
		ID:          idPtr(e.ID),
		CountryName: e.CountryName,
		Region:      m.regionRef(e),
	}
}

func (m CountryMapper) regionRef(e *domain.Country) *dto.RegionDTO {
	if e.Region != nil {
		return m.region.ToDtoRegionRegionName(e.Region)
	}
	return fkRef(e.RegionID, func(id *int64) *dto.RegionDTO { return &dto.RegionDTO{ID: id} })
}

func (m CountryMapper) ToEntity(d *dto.CountryDTO) *domain.Country {
	if d == nil {
		return nil
	}
	e := &domain.Country{
		ID:          idValue(d.ID),
		CountryName: d.CountryName,
	}
	e.SetRegion(m.region.ToEntity(d.Region))
	return e
}

func (m CountryMapper) ToDtoList(list []*domain.Country) []*dto.CountryDTO {
	return mapList(list, m.ToDto)
}

func (m CountryMapper) ToEntityList(list []*dto.CountryDTO) []*domain.Country {
	return mapList(list, m.ToEntity)
}

func (m CountryMapper) PartialUpdate(e *domain.Country, d *dto.CountryDTO) {
	if e == nil || d == nil {
		return
	}
	if d.CountryName != "" {
		e.CountryName = d.CountryName
	}
	if d.Region != nil {
		e.SetRegion(m.region.ToEntity(d.Region))
	}
}

// ToDtoCountryCountryName - проекция "countryCountryName": id и countryName без региона
func (CountryMapper) ToDtoCountryCountryName(e *domain.Country) *dto.CountryDTO {
	if e == nil {
		return nil
	}
	return &dto.CountryDTO{
		ID:          idPtr(e.ID),
		CountryName: e.CountryName,
	}
}

func (m CountryMapper) Projection(name string) (func(*domain.Country) *dto.CountryDTO, bool) {
	switch name {
	case CountryCountryName:
		return m.ToDtoCountryCountryName, true
	default:
		return nil, false
	}
}
