package service_test

import (
	"context"
	"testing"

	"github.com/hr-entity-api/internal/domain"
	"github.com/hr-entity-api/internal/repository"
	"github.com/hr-entity-api/internal/service"
	"github.com/hr-entity-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDepartmentService(t *testing.T) (service.DepartmentService, *gorm.DB) {
	t.Helper()
	db := testutil.NewSQLite(t)
	seedSales(t, db)
	return service.NewDepartmentService(repository.NewDepartmentRepository(db), repository.NewEmployeeRepository(db)), db
}

func TestDepartmentService_FindEmployees(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDepartmentService(t)

	list, err := svc.FindEmployees(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(5), *list[0].ID)
	assert.Equal(t, int64(6), *list[1].ID)

	list, err = svc.FindEmployees(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = svc.FindEmployees(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDepartmentService_AddEmployee(t *testing.T) {
	ctx := context.Background()
	svc, db := newDepartmentService(t)

	added, err := svc.AddEmployee(ctx, 3, 5)
	require.NoError(t, err)
	require.NotNil(t, added.Department)
	assert.Equal(t, int64(3), *added.Department.ID)

	var stored domain.Employee
	require.NoError(t, db.First(&stored, 5).Error)
	require.NotNil(t, stored.DepartmentID)
	assert.Equal(t, int64(3), *stored.DepartmentID)

	// повторное добавление ничего не меняет
	_, err = svc.AddEmployee(ctx, 3, 5)
	require.NoError(t, err)
	list, err := svc.FindEmployees(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.AddEmployee(ctx, 3, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.AddEmployee(ctx, 404, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDepartmentService_RemoveEmployee(t *testing.T) {
	ctx := context.Background()
	svc, db := newDepartmentService(t)

	removed, err := svc.RemoveEmployee(ctx, 2, 6)
	require.NoError(t, err)
	assert.Nil(t, removed.Department)

	var stored domain.Employee
	require.NoError(t, db.First(&stored, 6).Error)
	assert.Nil(t, stored.DepartmentID)

	_, err = svc.RemoveEmployee(ctx, 2, 6)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotInDepartment)
	_, err = svc.RemoveEmployee(ctx, 3, 5)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotInDepartment)
}

func TestDepartmentService_FindProjection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDepartmentService(t)

	projected, err := svc.FindProjection(ctx, 2, "departmentDepartmentName")
	require.NoError(t, err)
	assert.Equal(t, int64(2), *projected.ID)
	assert.Equal(t, "Sales", projected.DepartmentName)
	assert.Empty(t, projected.DepartmentDescription)

	idOnly, err := svc.FindProjection(ctx, 2, "departmentId")
	require.NoError(t, err)
	assert.Equal(t, int64(2), *idOnly.ID)
	assert.Empty(t, idOnly.DepartmentName)

	_, err = svc.FindProjection(ctx, 2, "departmentBudget")
	assert.ErrorIs(t, err, domain.ErrUnknownProjection)

	_, err = svc.FindProjection(ctx, 404, "departmentId")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
