// Package mapper переводит сущности в DTO и обратно.
//
// Все функции чистые: не выполняют запросов к БД и не меняют входные данные
// (кроме PartialUpdate, который по определению заполняет переданную сущность).
// Связи to-one отображаются именованными частичными проекциями, связи to-many
// в DTO не попадают.
package mapper

import "time"

// EntityMapper - общий контракт маппера между сущностью E и DTO D
type EntityMapper[D, E any] interface {
	ToDto(e *E) *D
	ToEntity(d *D) *E
	ToDtoList(list []*E) []*D
	ToEntityList(list []*D) []*E
	// PartialUpdate переносит в сущность только заполненные поля DTO
	PartialUpdate(e *E, d *D)
}

// Имена частичных проекций
const (
	RegionRegionName         = "regionRegionName"
	CountryCountryName       = "countryCountryName"
	LocationID               = "locationId"
	DepartmentDepartmentName = "departmentDepartmentName"
	DepartmentID             = "departmentId"
	EmployeeID               = "employeeId"
	JobID                    = "jobId"
)

// mapList сохраняет порядок и длину списка
func mapList[S, T any](src []*S, fn func(*S) *T) []*T {
	if src == nil {
		return nil
	}
	out := make([]*T, len(src))
	for i, s := range src {
		out[i] = fn(s)
	}
	return out
}

// idPtr переводит id сущности в id DTO: 0 означает отсутствие id
func idPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func idValue(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// fkRef строит DTO-ссылку только по внешнему ключу, когда связь не загружена
func fkRef[D any](fk *int64, build func(id *int64) *D) *D {
	if fk == nil {
		return nil
	}
	id := *fk
	return build(&id)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
