// Package testutil - общие заготовки для тестов: БД sqlite в памяти со схемой.
package testutil

import (
	"testing"

	"github.com/hr-entity-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// NewSQLite открывает отдельную БД в памяти и создаёт таблицы всех сущностей
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// у каждого соединения sqlite :memory: своя БД
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&domain.Region{},
		&domain.Country{},
		&domain.Location{},
		&domain.Department{},
		&domain.Employee{},
		&domain.Job{},
		&domain.Task{},
		&domain.JobHistory{},
	))
	return db
}

// CountQueries считает SELECT запросы, выполненные через db после вызова
func CountQueries(t *testing.T, db *gorm.DB) *int {
	t.Helper()

	n := new(int)
	name := "testutil:count_" + t.Name()
	require.NoError(t, db.Callback().Query().After("gorm:query").Register(name, func(*gorm.DB) {
		*n++
	}))
	return n
}

// Create сохраняет записи как есть, без связанных сущностей
func Create(t *testing.T, db *gorm.DB, values ...any) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, db.Omit(clause.Associations).Create(v).Error)
	}
}
