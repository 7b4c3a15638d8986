package dto

// Два DTO равны, только если у обоих задан один и тот же id.

func sameID(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

func (d *RegionDTO) Equal(other *RegionDTO) bool {
	return d == other || (d != nil && other != nil && sameID(d.ID, other.ID))
}

func (d *CountryDTO) Equal(other *CountryDTO) bool {
	return d == other || (d != nil && other != nil && sameID(d.ID, other.ID))
}

func (d *LocationDTO) Equal(other *LocationDTO) bool {
	return d == other || (d != nil && other != nil && sameID(d.ID, other.ID))
}

func (d *DepartmentDTO) Equal(other *DepartmentDTO) bool {
	return d == other || (d != nil && other != nil && sameID(d.ID, other.ID))
}

func (d *EmployeeDTO) Equal(other *EmployeeDTO) bool {
	return d == other || (d != nil && other != nil && sameID(d.ID, other.ID))
}

func (d *JobDTO) Equal(other *JobDTO) bool {
	return d == other || (d != nil && other != nil && sameID(d.ID, other.ID))
}

func (d *TaskDTO) Equal(other *TaskDTO) bool {
	return d == other || (d != nil && other != nil && sameID(d.ID, other.ID))
}

func (d *JobHistoryDTO) Equal(other *JobHistoryDTO) bool {
	return d == other || (d != nil && other != nil && sameID(d.ID, other.ID))
}
