package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrNotFound                = errors.New("entity not found")
	ErrIDNotNull               = errors.New("a new entity cannot already have an id")
	ErrIDNull                  = errors.New("entity id is required")
	ErrIDMismatch              = errors.New("entity id does not match the path id")
	ErrUnknownProjection       = errors.New("unknown projection")
	ErrEmployeeNotInDepartment = errors.New("employee does not belong to the department")
	ErrTaskNotInJob            = errors.New("task is not assigned to the job")
)
