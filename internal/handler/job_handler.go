package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/service"
)

// JobHandler - CRUD должностей плюс связь с задачами
type JobHandler struct {
	*ResourceHandler[dto.JobDTO]
	jobService service.JobService
}

func NewJobHandler(jobService service.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		ResourceHandler: NewResourceHandler[dto.JobDTO](jobService, func(d *dto.JobDTO) *int64 { return d.ID }, logger),
		jobService:      jobService,
	}
}

func (h *JobHandler) Routes(r chi.Router) {
	h.ResourceHandler.Routes(r)
	r.Get("/{id}/tasks", h.ListTasks)
	r.Post("/{id}/tasks/{taskId}", h.AddTask)
	r.Delete("/{id}/tasks/{taskId}", h.RemoveTask)
}

func (h *JobHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid job id", err.Error())
		return
	}

	tasks, err := h.jobService.FindTasks(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, tasks)
}

func (h *JobHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	id, taskID, ok := h.extractIDs(w, r)
	if !ok {
		return
	}

	tasks, err := h.jobService.AddTask(r.Context(), id, taskID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, tasks)
}

func (h *JobHandler) RemoveTask(w http.ResponseWriter, r *http.Request) {
	id, taskID, ok := h.extractIDs(w, r)
	if !ok {
		return
	}

	tasks, err := h.jobService.RemoveTask(r.Context(), id, taskID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, tasks)
}

func (h *JobHandler) extractIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid job id", err.Error())
		return 0, 0, false
	}
	taskID, err := pathID(r, "taskId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id", err.Error())
		return 0, 0, false
	}
	return id, taskID, true
}
