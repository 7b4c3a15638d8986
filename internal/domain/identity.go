package domain

import "github.com/cespare/xxhash/v2"

// Хэш зависит только от типа сущности: он не меняется, когда сущности
// присваивается идентификатор при сохранении.
var (
	regionHash     = xxhash.Sum64String("region")
	countryHash    = xxhash.Sum64String("country")
	locationHash   = xxhash.Sum64String("location")
	departmentHash = xxhash.Sum64String("department")
	employeeHash   = xxhash.Sum64String("employee")
	jobHash        = xxhash.Sum64String("job")
	taskHash       = xxhash.Sum64String("task")
	jobHistoryHash = xxhash.Sum64String("job_history")
)

// Identifiable - сущность, сравниваемая по идентификатору
type Identifiable[T any] interface {
	Equal(other T) bool
}

// Contains сообщает, есть ли в списке сущность, равная e
func Contains[T Identifiable[T]](list []T, e T) bool {
	return indexOf(list, e) >= 0
}

func indexOf[T Identifiable[T]](list []T, e T) int {
	for i, item := range list {
		if item.Equal(e) {
			return i
		}
	}
	return -1
}

// without возвращает новый срез без сущностей, равных e
func without[T Identifiable[T]](list []T, e T) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if !item.Equal(e) {
			out = append(out, item)
		}
	}
	return out
}

// sameIdentity: несохранённая сущность (id == 0) равна только самой себе
func sameIdentity(a, b int64) bool {
	return a != 0 && a == b
}

func ref(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func (r *Region) Equal(other *Region) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return sameIdentity(r.ID, other.ID)
}

func (*Region) HashCode() uint64 { return regionHash }

func (r *Region) IsNew() bool { return r.ID == 0 }

func (r *Region) GetID() int64 { return r.ID }

func (c *Country) Equal(other *Country) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return sameIdentity(c.ID, other.ID)
}

func (*Country) HashCode() uint64 { return countryHash }

func (c *Country) IsNew() bool { return c.ID == 0 }

func (c *Country) GetID() int64 { return c.ID }

func (l *Location) Equal(other *Location) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	return sameIdentity(l.ID, other.ID)
}

func (*Location) HashCode() uint64 { return locationHash }

func (l *Location) IsNew() bool { return l.ID == 0 }

func (l *Location) GetID() int64 { return l.ID }

// Equal сравнивает подразделения по идентификатору
func (d *Department) Equal(other *Department) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return sameIdentity(d.ID, other.ID)
}

// HashCode одинаков для всех подразделений
func (*Department) HashCode() uint64 { return departmentHash }

func (d *Department) IsNew() bool { return d.ID == 0 }

func (d *Department) GetID() int64 { return d.ID }

// Equal сравнивает сотрудников по идентификатору
func (e *Employee) Equal(other *Employee) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return sameIdentity(e.ID, other.ID)
}

// HashCode одинаков для всех сотрудников
func (*Employee) HashCode() uint64 { return employeeHash }

func (e *Employee) IsNew() bool { return e.ID == 0 }

func (e *Employee) GetID() int64 { return e.ID }

func (j *Job) Equal(other *Job) bool {
	if j == other {
		return true
	}
	if j == nil || other == nil {
		return false
	}
	return sameIdentity(j.ID, other.ID)
}

func (*Job) HashCode() uint64 { return jobHash }

func (j *Job) IsNew() bool { return j.ID == 0 }

func (j *Job) GetID() int64 { return j.ID }

func (t *Task) Equal(other *Task) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return sameIdentity(t.ID, other.ID)
}

func (*Task) HashCode() uint64 { return taskHash }

func (t *Task) IsNew() bool { return t.ID == 0 }

func (t *Task) GetID() int64 { return t.ID }

func (h *JobHistory) Equal(other *JobHistory) bool {
	if h == other {
		return true
	}
	if h == nil || other == nil {
		return false
	}
	return sameIdentity(h.ID, other.ID)
}

func (*JobHistory) HashCode() uint64 { return jobHistoryHash }

func (h *JobHistory) IsNew() bool { return h.ID == 0 }

func (h *JobHistory) GetID() int64 { return h.ID }
