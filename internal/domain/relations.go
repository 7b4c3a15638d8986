package domain

// SetEmployees заменяет список сотрудников подразделения.
// У прежних сотрудников ссылка на подразделение сбрасывается,
// новым сотрудникам проставляется ссылка на d.
func (d *Department) SetEmployees(employees []*Employee) *Department {
	for _, e := range d.Employees {
		e.SetDepartment(nil)
	}
	for _, e := range employees {
		e.SetDepartment(d)
	}
	d.Employees = employees
	return d
}

// AddEmployee добавляет сотрудника в подразделение и связывает обе стороны
func (d *Department) AddEmployee(e *Employee) *Department {
	if !Contains(d.Employees, e) {
		d.Employees = append(d.Employees, e)
	}
	e.SetDepartment(d)
	return d
}

// RemoveEmployee исключает сотрудника из подразделения и сбрасывает обратную ссылку
func (d *Department) RemoveEmployee(e *Employee) *Department {
	d.Employees = without(d.Employees, e)
	e.SetDepartment(nil)
	return d
}

func (d *Department) SetLocation(l *Location) *Department {
	d.Location = l
	d.LocationID = refOf(l, func(l *Location) int64 { return l.ID })
	return d
}

// SetDepartment меняет только сторону сотрудника; список сотрудников
// подразделения поддерживается методами Department.
func (e *Employee) SetDepartment(d *Department) *Employee {
	e.Department = d
	e.DepartmentID = refOf(d, func(d *Department) int64 { return d.ID })
	return e
}

func (e *Employee) SetManager(m *Employee) *Employee {
	e.Manager = m
	e.ManagerID = refOf(m, func(m *Employee) int64 { return m.ID })
	return e
}

// SetJobs заменяет должности сотрудника, поддерживая ссылку Job.Employee
func (e *Employee) SetJobs(jobs []*Job) *Employee {
	for _, j := range e.Jobs {
		j.SetEmployee(nil)
	}
	for _, j := range jobs {
		j.SetEmployee(e)
	}
	e.Jobs = jobs
	return e
}

func (e *Employee) AddJob(j *Job) *Employee {
	if !Contains(e.Jobs, j) {
		e.Jobs = append(e.Jobs, j)
	}
	j.SetEmployee(e)
	return e
}

func (e *Employee) RemoveJob(j *Job) *Employee {
	e.Jobs = without(e.Jobs, j)
	j.SetEmployee(nil)
	return e
}

func (j *Job) SetEmployee(e *Employee) *Job {
	j.Employee = e
	j.EmployeeID = refOf(e, func(e *Employee) int64 { return e.ID })
	return j
}

// SetTasks заменяет задачи должности; обратные списки Task.Jobs обновляются
func (j *Job) SetTasks(tasks []*Task) *Job {
	for _, t := range j.Tasks {
		t.Jobs = without(t.Jobs, j)
	}
	for _, t := range tasks {
		if !Contains(t.Jobs, j) {
			t.Jobs = append(t.Jobs, j)
		}
	}
	j.Tasks = tasks
	return j
}

func (j *Job) AddTask(t *Task) *Job {
	if !Contains(j.Tasks, t) {
		j.Tasks = append(j.Tasks, t)
	}
	if !Contains(t.Jobs, j) {
		t.Jobs = append(t.Jobs, j)
	}
	return j
}

func (j *Job) RemoveTask(t *Task) *Job {
	j.Tasks = without(j.Tasks, t)
	t.Jobs = without(t.Jobs, j)
	return j
}

// SetJobs - обратная сторона many-to-many, изменения проводятся через Job
func (t *Task) SetJobs(jobs []*Job) *Task {
	for _, j := range t.Jobs {
		j.RemoveTask(t)
	}
	for _, j := range jobs {
		j.AddTask(t)
	}
	t.Jobs = jobs
	return t
}

func (t *Task) AddJob(j *Job) *Task {
	j.AddTask(t)
	return t
}

func (t *Task) RemoveJob(j *Job) *Task {
	j.RemoveTask(t)
	return t
}

func (c *Country) SetRegion(r *Region) *Country {
	c.Region = r
	c.RegionID = refOf(r, func(r *Region) int64 { return r.ID })
	return c
}

func (l *Location) SetCountry(c *Country) *Location {
	l.Country = c
	l.CountryID = refOf(c, func(c *Country) int64 { return c.ID })
	return l
}

func (h *JobHistory) SetJob(j *Job) *JobHistory {
	h.Job = j
	h.JobID = refOf(j, func(j *Job) int64 { return j.ID })
	return h
}

func (h *JobHistory) SetDepartment(d *Department) *JobHistory {
	h.Department = d
	h.DepartmentID = refOf(d, func(d *Department) int64 { return d.ID })
	return h
}

func (h *JobHistory) SetEmployee(e *Employee) *JobHistory {
	h.Employee = e
	h.EmployeeID = refOf(e, func(e *Employee) int64 { return e.ID })
	return h
}

// refOf возвращает внешний ключ для ссылки; nil для пустой или несохранённой сущности
func refOf[T any](e *T, id func(*T) int64) *int64 {
	if e == nil {
		return nil
	}
	return ref(id(e))
}
