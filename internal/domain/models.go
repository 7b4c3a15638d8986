package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Language - язык, в котором велась работа по записи истории должностей
type Language string

const (
	LanguageFrench  Language = "FRENCH"
	LanguageEnglish Language = "ENGLISH"
	LanguageSpanish Language = "SPANISH"
)

// Value пишет пустой язык как NULL: в колонке language допустимы только
// значения из перечисления
func (l Language) Value() (driver.Value, error) {
	if l == "" {
		return nil, nil
	}
	return string(l), nil
}

// Scan читает NULL как пустой язык
func (l *Language) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = ""
	case string:
		*l = Language(v)
	case []byte:
		*l = Language(v)
	default:
		return fmt.Errorf("language: unsupported type %T", src)
	}
	return nil
}

// Region представляет регион
type Region struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	RegionName string `json:"regionName" gorm:"type:varchar(255);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Region) TableName() string {
	return "regions"
}

// Country представляет страну
type Country struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	CountryName string `json:"countryName" gorm:"type:varchar(255)"`
	RegionID    *int64 `json:"regionId" gorm:"index"`

	Region *Region `json:"-" gorm:"foreignKey:RegionID"`
}

// TableName задаёт имя таблицы для GORM
func (Country) TableName() string {
	return "countries"
}

// Location представляет адрес размещения подразделения
type Location struct {
	ID            int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	StreetAddress string `json:"streetAddress" gorm:"type:varchar(255)"`
	PostalCode    string `json:"postalCode" gorm:"type:varchar(255)"`
	City          string `json:"city" gorm:"type:varchar(255)"`
	StateProvince string `json:"stateProvince" gorm:"type:varchar(255)"`
	CountryID     *int64 `json:"countryId" gorm:"index"`

	Country *Country `json:"-" gorm:"foreignKey:CountryID"`
}

// TableName задаёт имя таблицы для GORM
func (Location) TableName() string {
	return "locations"
}

// Department представляет подразделение.
// Сторона-владелец связи с сотрудниками - Employee (внешний ключ department_id).
type Department struct {
	ID                           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	DepartmentName               string `json:"departmentName" gorm:"type:varchar(255);not null"`
	DepartmentPic                []byte `json:"departmentPic"`
	DepartmentPicContentType     string `json:"departmentPicContentType" gorm:"type:varchar(255)"`
	DepartmentDescription        string `json:"departmentDescription" gorm:"type:text"`
	DepartmentInfoPdf            []byte `json:"departmentInfoPdf"`
	DepartmentInfoPdfContentType string `json:"departmentInfoPdfContentType" gorm:"type:varchar(255)"`
	LocationID                   *int64 `json:"locationId" gorm:"index"`

	Employees []*Employee `json:"-" gorm:"foreignKey:DepartmentID"`
	Location  *Location   `json:"-" gorm:"foreignKey:LocationID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника
type Employee struct {
	ID            int64               `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName     string              `json:"firstName" gorm:"type:varchar(255)"`
	LastName      string              `json:"lastName" gorm:"type:varchar(255)"`
	Email         string              `json:"email" gorm:"type:varchar(255)"`
	PhoneNumber   string              `json:"phoneNumber" gorm:"type:varchar(255)"`
	HireDate      *time.Time          `json:"hireDate"`
	Salary        decimal.NullDecimal `json:"salary" gorm:"type:decimal(18,2)"`
	CommissionPct decimal.NullDecimal `json:"commissionPct" gorm:"type:decimal(18,2)"`
	ManagerID     *int64              `json:"managerId" gorm:"index"`
	DepartmentID  *int64              `json:"departmentId" gorm:"index"`

	Jobs       []*Job      `json:"-" gorm:"foreignKey:EmployeeID"`
	Manager    *Employee   `json:"-" gorm:"foreignKey:ManagerID"`
	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Job представляет должность. Job - владелец связи many-to-many с задачами.
type Job struct {
	ID         int64               `json:"id" gorm:"primaryKey;autoIncrement"`
	JobTitle   string              `json:"jobTitle" gorm:"type:varchar(255)"`
	MinSalary  decimal.NullDecimal `json:"minSalary" gorm:"type:decimal(18,2)"`
	MaxSalary  decimal.NullDecimal `json:"maxSalary" gorm:"type:decimal(18,2)"`
	EmployeeID *int64              `json:"employeeId" gorm:"index"`

	Tasks    []*Task   `json:"-" gorm:"many2many:rel_job__task;joinForeignKey:JobID;joinReferences:TaskID"`
	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Job) TableName() string {
	return "jobs"
}

// Task представляет задачу, закреплённую за должностями
type Task struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"type:varchar(255)"`
	Description string `json:"description" gorm:"type:varchar(255)"`

	Jobs []*Job `json:"-" gorm:"many2many:rel_job__task;joinForeignKey:TaskID;joinReferences:JobID"`
}

// TableName задаёт имя таблицы для GORM
func (Task) TableName() string {
	return "tasks"
}

// JobHistory хранит период работы сотрудника на должности в подразделении
type JobHistory struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Language     Language   `json:"language" gorm:"type:varchar(20)"`
	JobID        *int64     `json:"jobId" gorm:"index"`
	DepartmentID *int64     `json:"departmentId" gorm:"index"`
	EmployeeID   *int64     `json:"employeeId" gorm:"index"`

	Job        *Job        `json:"-" gorm:"foreignKey:JobID"`
	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
	Employee   *Employee   `json:"-" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (JobHistory) TableName() string {
	return "job_histories"
}

// BeforeSave обновляет внешние ключи по уже сохранённым связанным сущностям
func (c *Country) BeforeSave(*gorm.DB) error {
	if c.Region != nil && c.Region.ID != 0 {
		c.RegionID = ref(c.Region.ID)
	}
	return nil
}

func (l *Location) BeforeSave(*gorm.DB) error {
	if l.Country != nil && l.Country.ID != 0 {
		l.CountryID = ref(l.Country.ID)
	}
	return nil
}

func (d *Department) BeforeSave(*gorm.DB) error {
	if d.Location != nil && d.Location.ID != 0 {
		d.LocationID = ref(d.Location.ID)
	}
	return nil
}

func (e *Employee) BeforeSave(*gorm.DB) error {
	if e.Department != nil && e.Department.ID != 0 {
		e.DepartmentID = ref(e.Department.ID)
	}
	if e.Manager != nil && e.Manager.ID != 0 {
		e.ManagerID = ref(e.Manager.ID)
	}
	return nil
}

func (j *Job) BeforeSave(*gorm.DB) error {
	if j.Employee != nil && j.Employee.ID != 0 {
		j.EmployeeID = ref(j.Employee.ID)
	}
	return nil
}

func (h *JobHistory) BeforeSave(*gorm.DB) error {
	if h.Job != nil && h.Job.ID != 0 {
		h.JobID = ref(h.Job.ID)
	}
	if h.Department != nil && h.Department.ID != 0 {
		h.DepartmentID = ref(h.Department.ID)
	}
	if h.Employee != nil && h.Employee.ID != 0 {
		h.EmployeeID = ref(h.Employee.ID)
	}
	return nil
}
