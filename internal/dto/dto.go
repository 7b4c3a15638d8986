package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Вложенные DTO - это ссылки на связанные сущности, они не валидируются
// как самостоятельные объекты (validate:"-").

// RegionDTO - представление региона
type RegionDTO struct {
	ID         *int64 `json:"id,omitempty"`
	RegionName string `json:"regionName,omitempty" validate:"required,max=255"`
}

// CountryDTO - представление страны
type CountryDTO struct {
	ID          *int64     `json:"id,omitempty"`
	CountryName string     `json:"countryName,omitempty" validate:"max=255"`
	Region      *RegionDTO `json:"region,omitempty" validate:"-"`
}

// LocationDTO - представление адреса
type LocationDTO struct {
	ID            *int64      `json:"id,omitempty"`
	StreetAddress string      `json:"streetAddress,omitempty" validate:"max=255"`
	PostalCode    string      `json:"postalCode,omitempty" validate:"max=255"`
	City          string      `json:"city,omitempty" validate:"max=255"`
	StateProvince string      `json:"stateProvince,omitempty" validate:"max=255"`
	Country       *CountryDTO `json:"country,omitempty" validate:"-"`
}

// DepartmentDTO - представление подразделения. Список сотрудников в DTO не передаётся.
type DepartmentDTO struct {
	ID                           *int64       `json:"id,omitempty"`
	DepartmentName               string       `json:"departmentName,omitempty" validate:"required,max=255"`
	DepartmentPic                []byte       `json:"departmentPic,omitempty"`
	DepartmentPicContentType     string       `json:"departmentPicContentType,omitempty"`
	DepartmentDescription        string       `json:"departmentDescription,omitempty"`
	DepartmentInfoPdf            []byte       `json:"departmentInfoPdf,omitempty"`
	DepartmentInfoPdfContentType string       `json:"departmentInfoPdfContentType,omitempty"`
	Location                     *LocationDTO `json:"location,omitempty" validate:"-"`
}

// EmployeeDTO - представление сотрудника
type EmployeeDTO struct {
	ID            *int64              `json:"id,omitempty"`
	FirstName     string              `json:"firstName,omitempty" validate:"max=255"`
	LastName      string              `json:"lastName,omitempty" validate:"max=255"`
	Email         string              `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber   string              `json:"phoneNumber,omitempty" validate:"max=255"`
	HireDate      *time.Time          `json:"hireDate,omitempty"`
	Salary        decimal.NullDecimal `json:"salary" validate:"-"`
	CommissionPct decimal.NullDecimal `json:"commissionPct" validate:"-"`
	Manager       *EmployeeDTO        `json:"manager,omitempty" validate:"-"`
	Department    *DepartmentDTO      `json:"department,omitempty" validate:"-"`
}

// JobDTO - представление должности. Задачи должности доступны отдельным запросом.
type JobDTO struct {
	ID        *int64              `json:"id,omitempty"`
	JobTitle  string              `json:"jobTitle,omitempty" validate:"max=255"`
	MinSalary decimal.NullDecimal `json:"minSalary" validate:"-"`
	MaxSalary decimal.NullDecimal `json:"maxSalary" validate:"-"`
	Employee  *EmployeeDTO        `json:"employee,omitempty" validate:"-"`
}

// TaskDTO - представление задачи
type TaskDTO struct {
	ID          *int64 `json:"id,omitempty"`
	Title       string `json:"title,omitempty" validate:"max=255"`
	Description string `json:"description,omitempty" validate:"max=255"`
}

// JobHistoryDTO - представление записи истории должностей
type JobHistoryDTO struct {
	ID         *int64         `json:"id,omitempty"`
	StartDate  *time.Time     `json:"startDate,omitempty"`
	EndDate    *time.Time     `json:"endDate,omitempty"`
	Language   string         `json:"language,omitempty" validate:"omitempty,oneof=FRENCH ENGLISH SPANISH"`
	Job        *JobDTO        `json:"job,omitempty" validate:"-"`
	Department *DepartmentDTO `json:"department,omitempty" validate:"-"`
	Employee   *EmployeeDTO   `json:"employee,omitempty" validate:"-"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PageQuery - параметры постраничной выборки
type PageQuery struct {
	Page int `validate:"min=0"`
	Size int `validate:"min=1,max=100"`
}
