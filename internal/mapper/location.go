package mapper

import (
	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
)

// LocationMapper - маппер Location <-> LocationDTO.
// Страна вкладывается проекцией countryCountryName, регион страны не передаётся.
type LocationMapper struct {
	country CountryMapper
}

var _ EntityMapper[dto.LocationDTO, domain.Location] = LocationMapper{}

func (m LocationMapper) ToDto(e *domain.Location) *dto.LocationDTO {
	if e == nil {
		return nil
	}
	return &dto.LocationDTO{
		ID:            idPtr(e.ID),
		StreetAddress: e.StreetAddress,
		PostalCode:    e.PostalCode,
		City:          e.City,
		StateProvince: e.StateProvince,
		Country:       m.countryRef(e),
	}
}

func (m LocationMapper) countryRef(e *domain.Location) *dto.CountryDTO {
	if e.Country != nil {
		return m.country.ToDtoCountryCountryName(e.Country)
	}
	return fkRef(e.CountryID, func(id *int64) *dto.CountryDTO { return &dto.CountryDTO{ID: id} })
}

func (m LocationMapper) ToEntity(d *dto.LocationDTO) *domain.Location {
	if d == nil {
		return nil
	}
	e := &domain.Location{
		ID:            idValue(d.ID),
		StreetAddress: d.StreetAddress,
		PostalCode:    d.PostalCode,
		City:          d.City,
		StateProvince: d.StateProvince,
	}
	e.SetCountry(m.country.ToEntity(d.Country))
	return e
}

func (m LocationMapper) ToDtoList(list []*domain.Location) []*dto.LocationDTO {
	return mapList(list, m.ToDto)
}

func (m LocationMapper) ToEntityList(list []*dto.LocationDTO) []*domain.Location {
	return mapList(list, m.ToEntity)
}

func (m LocationMapper) PartialUpdate(e *domain.Location, d *dto.LocationDTO) {
	if e == nil || d == nil {
		return
	}
	if d.StreetAddress != "" {
		e.StreetAddress = d.StreetAddress
	}
	if d.PostalCode != "" {
		e.PostalCode = d.PostalCode
	}
	if d.City != "" {
		e.City = d.City
	}
	if d.StateProvince != "" {
		e.StateProvince = d.StateProvince
	}
	if d.Country != nil {
		e.SetCountry(m.country.ToEntity(d.Country))
	}
}

// ToDtoLocationID - проекция "locationId": только id
func (LocationMapper) ToDtoLocationID(e *domain.Location) *dto.LocationDTO {
	if e == nil {
		return nil
	}
	return &dto.LocationDTO{ID: idPtr(e.ID)}
}

func (m LocationMapper) Projection(name string) (func(*domain.Location) *dto.LocationDTO, bool) {
	switch name {
	case LocationID:
		return m.ToDtoLocationID, true
	default:
		return nil, false
	}
}
