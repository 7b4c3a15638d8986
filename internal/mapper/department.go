package mapper

import (
	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
)

// DepartmentMapper - маппер Department <-> DepartmentDTO.
// Список сотрудников не отображается; адрес передаётся проекцией locationId.
type DepartmentMapper struct {
	location LocationMapper
}

var _ EntityMapper[dto.DepartmentDTO, domain.Department] = DepartmentMapper{}

func (m DepartmentMapper) ToDto(e *domain.Department) *dto.DepartmentDTO {
	if e == nil {
		return nil
	}
	return &dto.DepartmentDTO{
		ID:                           idPtr(e.ID),
		DepartmentName:               e.DepartmentName,
		DepartmentPic:                copyBytes(e.DepartmentPic),
		DepartmentPicContentType:     e.DepartmentPicContentType,
		DepartmentDescription:        e.DepartmentDescription,
		DepartmentInfoPdf:            copyBytes(e.DepartmentInfoPdf),
		DepartmentInfoPdfContentType: e.DepartmentInfoPdfContentType,
		Location:                     m.locationRef(e),
	}
}

func (m DepartmentMapper) locationRef(e *domain.Department) *dto.LocationDTO {
	if e.Location != nil {
		return m.location.ToDtoLocationID(e.Location)
	}
	return fkRef(e.LocationID, func(id *int64) *dto.LocationDTO { return &dto.LocationDTO{ID: id} })
}

func (m DepartmentMapper) ToEntity(d *dto.DepartmentDTO) *domain.Department {
	if d == nil {
		return nil
	}
	e := &domain.Department{
		ID:                           idValue(d.ID),
		DepartmentName:               d.DepartmentName,
		DepartmentPic:                copyBytes(d.DepartmentPic),
		DepartmentPicContentType:     d.DepartmentPicContentType,
		DepartmentDescription:        d.DepartmentDescription,
		DepartmentInfoPdf:            copyBytes(d.DepartmentInfoPdf),
		DepartmentInfoPdfContentType: d.DepartmentInfoPdfContentType,
	}
	e.SetLocation(m.location.ToEntity(d.Location))
	return e
}

func (m DepartmentMapper) ToDtoList(list []*domain.Department) []*dto.DepartmentDTO {
	return mapList(list, m.ToDto)
}

func (m DepartmentMapper) ToEntityList(list []*dto.DepartmentDTO) []*domain.Department {
	return mapList(list, m.ToEntity)
}

func (m DepartmentMapper) PartialUpdate(e *domain.Department, d *dto.DepartmentDTO) {
	if e == nil || d == nil {
		return
	}
	if d.DepartmentName != "" {
		e.DepartmentName = d.DepartmentName
	}
	if d.DepartmentPic != nil {
		e.DepartmentPic = copyBytes(d.DepartmentPic)
	}
	if d.DepartmentPicContentType != "" {
		e.DepartmentPicContentType = d.DepartmentPicContentType
	}
	if d.DepartmentDescription != "" {
		e.DepartmentDescription = d.DepartmentDescription
	}
	if d.DepartmentInfoPdf != nil {
		e.DepartmentInfoPdf = copyBytes(d.DepartmentInfoPdf)
	}
	if d.DepartmentInfoPdfContentType != "" {
		e.DepartmentInfoPdfContentType = d.DepartmentInfoPdfContentType
	}
	if d.Location != nil {
		e.SetLocation(m.location.ToEntity(d.Location))
	}
}

// ToDtoDepartmentDepartmentName - проекция "departmentDepartmentName".
// Заполняются только id и departmentName, остальные поля остаются пустыми.
func (DepartmentMapper) ToDtoDepartmentDepartmentName(e *domain.Department) *dto.DepartmentDTO {
	if e == nil {
		return nil
	}
	return &dto.DepartmentDTO{
		ID:             idPtr(e.ID),
		DepartmentName: e.DepartmentName,
	}
}

// ToDtoDepartmentID - проекция "departmentId"
func (DepartmentMapper) ToDtoDepartmentID(e *domain.Department) *dto.DepartmentDTO {
	if e == nil {
		return nil
	}
	return &dto.DepartmentDTO{ID: idPtr(e.ID)}
}

func (m DepartmentMapper) Projection(name string) (func(*domain.Department) *dto.DepartmentDTO, bool) {
	switch name {
	case DepartmentDepartmentName:
		return m.ToDtoDepartmentDepartmentName, true
	case DepartmentID:
		return m.ToDtoDepartmentID, true
	default:
		return nil, false
	}
}
