package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/metrics"
	"github.com/hr-entity-api/internal/middleware"
	"github.com/hr-entity-api/internal/service"
)

// Services - сервисы, которые обслуживает API
type Services struct {
	Regions      service.CrudService[dto.RegionDTO]
	Countries    service.CrudService[dto.CountryDTO]
	Locations    service.CrudService[dto.LocationDTO]
	Departments  service.DepartmentService
	Employees    service.EmployeeService
	Jobs         service.JobService
	Tasks        service.CrudService[dto.TaskDTO]
	JobHistories service.CrudService[dto.JobHistoryDTO]
}

// Router настраивает маршруты API
type Router struct {
	services Services
	metrics  *metrics.HTTP
	logger   *slog.Logger
}

// NewRouter создаёт новый роутер; metrics может быть nil
func NewRouter(services Services, m *metrics.HTTP, logger *slog.Logger) *Router {
	return &Router{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	mux := chi.NewRouter()

	// Recoverer внутри Logger и метрик: ответ 500 после паники попадает в лог и счётчики
	mux.Use(chimw.RequestID)
	mux.Use(middleware.Logger(r.logger))
	if r.metrics != nil {
		mux.Use(r.metrics.Middleware)
	}
	mux.Use(middleware.Recoverer(r.logger))
	if r.metrics != nil {
		mux.Method(http.MethodGet, "/metrics", r.metrics.Handler())
	}

	mux.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	s := r.services
	mux.Route("/api", func(api chi.Router) {
		api.Use(middleware.ContentType)

		api.Route("/regions", NewResourceHandler(s.Regions, func(d *dto.RegionDTO) *int64 { return d.ID }, r.logger, "RegionName").Routes)
		api.Route("/countries", NewResourceHandler(s.Countries, func(d *dto.CountryDTO) *int64 { return d.ID }, r.logger).Routes)
		api.Route("/locations", NewResourceHandler(s.Locations, func(d *dto.LocationDTO) *int64 { return d.ID }, r.logger).Routes)
		api.Route("/departments", NewDepartmentHandler(s.Departments, r.logger).Routes)
		api.Route("/employees", NewResourceHandler[dto.EmployeeDTO](s.Employees, func(d *dto.EmployeeDTO) *int64 { return d.ID }, r.logger).Routes)
		api.Route("/jobs", NewJobHandler(s.Jobs, r.logger).Routes)
		api.Route("/tasks", NewResourceHandler(s.Tasks, func(d *dto.TaskDTO) *int64 { return d.ID }, r.logger).Routes)
		api.Route("/job-histories", NewResourceHandler(s.JobHistories, func(d *dto.JobHistoryDTO) *int64 { return d.ID }, r.logger).Routes)
	})

	return mux
}
