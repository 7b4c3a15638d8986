package service_test

import (
	"context"
	"testing"

	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/dto"
	"github.com/hr-entity-api/internal/repository"
	"github.com/hr-entity-api/internal/service"
	"github.com/hr-entity-api/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSales(t *testing.T, db *gorm.DB) {
	t.Helper()
	testutil.Create(t, db,
		&domain.Department{ID: 2, DepartmentName: "Sales", DepartmentDescription: "field sales"},
		&domain.Department{ID: 3, DepartmentName: "Support"},
		&domain.Employee{ID: 5, FirstName: "Ann", DepartmentID: int64Ptr(2),
			Salary: decimal.NewNullDecimal(decimal.RequireFromString("1200.50"))},
		&domain.Employee{ID: 6, FirstName: "Bob", DepartmentID: int64Ptr(2)},
		&domain.Employee{ID: 7, FirstName: "Cid"},
	)
}

func TestEmployeeService_FindOneEager(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLite(t)
	seedSales(t, db)
	svc := service.NewEmployeeService(repository.NewEmployeeRepository(db))

	queries := testutil.CountQueries(t, db)
	found, ok, err := svc.FindOne(ctx, 5)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 1, *queries)
	require.NotNil(t, found.Department)
	assert.Equal(t, int64(2), *found.Department.ID)
	assert.Equal(t, "Sales", found.Department.DepartmentName)
	assert.Empty(t, found.Department.DepartmentDescription)
	assert.True(t, found.Salary.Decimal.Equal(decimal.RequireFromString("1200.5")))

	noDept, ok, err := svc.FindOne(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, noDept.Department)

	_, ok, err = svc.FindOne(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmployeeService_FindAllEager(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLite(t)
	seedSales(t, db)
	svc := service.NewEmployeeService(repository.NewEmployeeRepository(db))

	list, total, err := svc.FindAll(ctx, repository.Page{Number: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 2)
	for _, e := range list {
		require.NotNil(t, e.Department)
		assert.Equal(t, "Sales", e.Department.DepartmentName)
	}
}

func TestEmployeeService_FindByDepartmentID(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLite(t)
	seedSales(t, db)
	svc := service.NewEmployeeService(repository.NewEmployeeRepository(db))

	list, err := svc.FindByDepartmentID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ann", list[0].FirstName)
	assert.Equal(t, "Bob", list[1].FirstName)

	list, err = svc.FindByDepartmentID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []*dto.EmployeeDTO{}, list)
}

func TestEmployeeService_UpdateReturnsStoredDepartment(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLite(t)
	seedSales(t, db)
	svc := service.NewEmployeeService(repository.NewEmployeeRepository(db))

	updated, err := svc.Update(ctx, &dto.EmployeeDTO{
		ID:         int64Ptr(5),
		FirstName:  "Ann",
		Department: &dto.DepartmentDTO{ID: int64Ptr(2), DepartmentName: "Bogus"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Sales", updated.Department.DepartmentName)

	found, ok, err := svc.FindOne(ctx, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, found, updated)
}

func TestEmployeeService_PartialUpdateReturnsStoredDepartment(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLite(t)
	seedSales(t, db)
	svc := service.NewEmployeeService(repository.NewEmployeeRepository(db))

	patched, err := svc.PartialUpdate(ctx, &dto.EmployeeDTO{
		ID:         int64Ptr(7),
		Department: &dto.DepartmentDTO{ID: int64Ptr(3), DepartmentName: "Bogus"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cid", patched.FirstName)
	require.NotNil(t, patched.Department)
	assert.Equal(t, int64(3), *patched.Department.ID)
	assert.Equal(t, "Support", patched.Department.DepartmentName)
}

func TestEmployeeService_SaveReturnsStoredDepartment(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLite(t)
	seedSales(t, db)
	svc := service.NewEmployeeService(repository.NewEmployeeRepository(db))

	created, err := svc.Save(ctx, &dto.EmployeeDTO{
		FirstName:  "Dee",
		Department: &dto.DepartmentDTO{ID: int64Ptr(2)},
	})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	require.NotNil(t, created.Department)
	assert.Equal(t, "Sales", created.Department.DepartmentName)
}
