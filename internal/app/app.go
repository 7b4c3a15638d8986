// Package app собирает репозитории, кэш и сервисы в готовый набор для API.
package app

import (
	"log/slog"

	"github.com/hr-entity-api/internal/cache"
	"github.com/hr-entity-api/internal/config"
	"github.com/hr-entity-api/internal/handler"
	"github.com/hr-entity-api/internal/repository"
	"github.com/hr-entity-api/internal/service"
	"gorm.io/gorm"
)

// NewServices создаёт сервисы поверх db. Для наборов сущностей, перечисленных
// в cacheCfg, FindByID идёт через кэш c.
func NewServices(db *gorm.DB, c cache.Cache, cacheCfg config.CacheConfig, logger *slog.Logger) handler.Services {
	ttl := cacheCfg.TTL.Duration

	regionRepo := repository.NewRegionRepository(db)
	if cacheCfg.Caches("regions") {
		regionRepo = repository.WithCache(regionRepo, c, "hr:region", ttl, logger)
	}
	countryRepo := repository.NewCountryRepository(db)
	if cacheCfg.Caches("countries") {
		countryRepo = repository.WithCache(countryRepo, c, "hr:country", ttl, logger)
	}
	locationRepo := repository.NewLocationRepository(db)
	if cacheCfg.Caches("locations") {
		locationRepo = repository.WithCache(locationRepo, c, "hr:location", ttl, logger)
	}
	deptRepo := repository.NewDepartmentRepository(db)
	if cacheCfg.Caches("departments") {
		deptRepo = repository.WithDepartmentCache(deptRepo, c, ttl, logger)
	}
	taskRepo := repository.NewTaskRepository(db)
	if cacheCfg.Caches("tasks") {
		taskRepo = repository.WithCache(taskRepo, c, "hr:task", ttl, logger)
	}

	empRepo := repository.NewEmployeeRepository(db)
	jobRepo := repository.NewJobRepository(db)

	return handler.Services{
		Regions:      service.NewRegionService(regionRepo),
		Countries:    service.NewCountryService(countryRepo),
		Locations:    service.NewLocationService(locationRepo),
		Departments:  service.NewDepartmentService(deptRepo, empRepo),
		Employees:    service.NewEmployeeService(empRepo),
		Jobs:         service.NewJobService(jobRepo, taskRepo),
		Tasks:        service.NewTaskService(taskRepo),
		JobHistories: service.NewJobHistoryService(repository.NewJobHistoryRepository(db)),
	}
}
