package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/repository"
	"github.com/hr-entity-api/internal/service"
)

const defaultPageSize = 20

// responder - общие методы разбора запроса и записи ответа
type responder struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	return responder{
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// ResourceHandler обслуживает CRUD маршруты одной сущности
type ResourceHandler[D any] struct {
	responder
	service service.CrudService[D]
	idOf    func(*D) *int64
	// partialExcept - обязательные поля, которые PATCH может не передавать
	partialExcept []string
}

// NewResourceHandler создаёт обработчик для сервиса сущности
func NewResourceHandler[D any](svc service.CrudService[D], idOf func(*D) *int64, logger *slog.Logger, partialExcept ...string) *ResourceHandler[D] {
	return &ResourceHandler[D]{
		responder:     newResponder(logger),
		service:       svc,
		idOf:          idOf,
		partialExcept: partialExcept,
	}
}

// Routes регистрирует маршруты сущности в r
func (h *ResourceHandler[D]) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}", h.PartialUpdate)
	r.Delete("/{id}", h.Delete)
}

func (h *ResourceHandler[D]) Create(w http.ResponseWriter, r *http.Request) {
	var req D
	if !h.decode(w, r, &req) {
		return
	}
	if h.idOf(&req) != nil {
		h.handleServiceError(w, domain.ErrIDNotNull)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	created, err := h.service.Save(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, created)
}

func (h *ResourceHandler[D]) List(w http.ResponseWriter, r *http.Request) {
	query, err := parsePageQuery(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid page query", err.Error())
		return
	}
	if err := h.validator.Struct(&query); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	list, total, err := h.service.FindAll(r.Context(), repository.Page{Number: query.Page, Size: query.Size})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	h.respondJSON(w, http.StatusOK, list)
}

func (h *ResourceHandler[D]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id", err.Error())
		return
	}

	found, ok, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if !ok {
		h.handleServiceError(w, domain.ErrNotFound)
		return
	}

	h.respondJSON(w, http.StatusOK, found)
}

func (h *ResourceHandler[D]) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeWithID(w, r)
	if !ok {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, updated)
}

// PartialUpdate меняет только переданные поля
func (h *ResourceHandler[D]) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeWithID(w, r)
	if !ok {
		return
	}
	if err := h.validator.StructExcept(req, h.partialExcept...); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	updated, err := h.service.PartialUpdate(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, updated)
}

func (h *ResourceHandler[D]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id", err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeWithID разбирает тело PUT/PATCH: id в теле обязателен и должен совпадать с id в пути
func (h *ResourceHandler[D]) decodeWithID(w http.ResponseWriter, r *http.Request) (*D, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id", err.Error())
		return nil, false
	}

	var req D
	if !h.decode(w, r, &req) {
		return nil, false
	}

	bodyID := h.idOf(&req)
	switch {
	case bodyID == nil:
		h.handleServiceError(w, domain.ErrIDNull)
		return nil, false
	case *bodyID != id:
		h.handleServiceError(w, domain.ErrIDMismatch)
		return nil, false
	}
	return &req, true
}

func (h responder) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

func (h responder) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "entity not found", "")
	case errors.Is(err, domain.ErrIDNotNull):
		h.respondError(w, http.StatusBadRequest, "a new entity cannot already have an id", "")
	case errors.Is(err, domain.ErrIDNull):
		h.respondError(w, http.StatusBadRequest, "id is required", "")
	case errors.Is(err, domain.ErrIDMismatch):
		h.respondError(w, http.StatusBadRequest, "id in body does not match id in path", "")
	case errors.Is(err, domain.ErrUnknownProjection):
		h.respondError(w, http.StatusBadRequest, "unknown projection", err.Error())
	case errors.Is(err, domain.ErrEmployeeNotInDepartment):
		h.respondError(w, http.StatusConflict, "employee does not belong to department", "")
	case errors.Is(err, domain.ErrTaskNotInJob):
		h.respondError(w, http.StatusConflict, "task is not linked to job", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

func pathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", param, raw)
	}
	return id, nil
}

func parsePageQuery(r *http.Request) (dto.PageQuery, error) {
	query := dto.PageQuery{Page: 0, Size: defaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("page: %w", err)
		}
		query.Page = page
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("size: %w", err)
		}
		query.Size = size
	}

	return query, nil
}
