package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/service"
)

// DepartmentHandler - CRUD подразделений плюс управление составом сотрудников
type DepartmentHandler struct {
	*ResourceHandler[dto.DepartmentDTO]
	deptService service.DepartmentService
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		ResourceHandler: NewResourceHandler[dto.DepartmentDTO](deptService, func(d *dto.DepartmentDTO) *int64 { return d.ID }, logger, "DepartmentName"),
		deptService:     deptService,
	}
}

func (h *DepartmentHandler) Routes(r chi.Router) {
	h.ResourceHandler.Routes(r)
	r.Get("/{id}/employees", h.ListEmployees)
	r.Post("/{id}/employees/{employeeId}", h.AddEmployee)
	r.Delete("/{id}/employees/{employeeId}", h.RemoveEmployee)
	r.Get("/{id}/projections/{name}", h.GetProjection)
}

func (h *DepartmentHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	employees, err := h.deptService.FindEmployees(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, employees)
}

func (h *DepartmentHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	id, employeeID, ok := h.extractIDs(w, r)
	if !ok {
		return
	}

	emp, err := h.deptService.AddEmployee(r.Context(), id, employeeID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, emp)
}

func (h *DepartmentHandler) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	id, employeeID, ok := h.extractIDs(w, r)
	if !ok {
		return
	}

	emp, err := h.deptService.RemoveEmployee(r.Context(), id, employeeID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, emp)
}

// GetProjection отдаёт подразделение в виде именованной частичной проекции
func (h *DepartmentHandler) GetProjection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	dept, err := h.deptService.FindProjection(r.Context(), id, chi.URLParam(r, "name"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dept)
}

func (h *DepartmentHandler) extractIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return 0, 0, false
	}
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return 0, 0, false
	}
	return id, employeeID, true
}
