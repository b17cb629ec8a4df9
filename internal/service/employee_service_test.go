package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
)

func TestEmployeeCreate_BlankOptionalsStayUnset(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")

	blank := "   "
	emp, err := env.empService.Create(context.Background(), &dto.CreateEmployeeRequest{
		EmployeeID:   "E-1",
		FirstName:    "Anna",
		LastName:     "Schmidt",
		Phone:        &blank,
		Role:         "nurse",
		DepartmentID: "icu",
	})
	require.NoError(t, err)

	assert.Nil(t, emp.Email)
	assert.Nil(t, emp.Phone)
	assert.Nil(t, emp.Group)
	assert.Equal(t, domain.EmployeeStatusActive, emp.Status)
}

func TestEmployeeCreate_DuplicateEmployeeID(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	env.createEmployee(t, "E-1", "icu")

	_, err := env.empService.Create(context.Background(), &dto.CreateEmployeeRequest{
		EmployeeID:   "E-1",
		FirstName:    "Bea",
		LastName:     "Klein",
		Role:         "nurse",
		DepartmentID: "icu",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmployeeID)
}

func TestEmployeeCreate_DepartmentNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.empService.Create(context.Background(), &dto.CreateEmployeeRequest{
		EmployeeID:   "E-1",
		FirstName:    "Anna",
		LastName:     "Schmidt",
		Role:         "nurse",
		DepartmentID: "missing",
	})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestEmployeeUpdate_ClearsMissingOptionals(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")

	email := "anna@clinic.test"
	emp, err := env.empService.Create(context.Background(), &dto.CreateEmployeeRequest{
		EmployeeID:   "E-1",
		FirstName:    "Anna",
		LastName:     "Schmidt",
		Email:        &email,
		Role:         "nurse",
		DepartmentID: "icu",
	})
	require.NoError(t, err)
	require.NotNil(t, emp.Email)

	updated, err := env.empService.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{
		EmployeeID:   "E-1",
		FirstName:    "Anna",
		LastName:     "Schmidt",
		Role:         "nurse",
		DepartmentID: "icu",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Email)
}

func TestEmployeeUpdate_DuplicateEmployeeID(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	env.createEmployee(t, "E-1", "icu")
	second := env.createEmployee(t, "E-2", "icu")

	_, err := env.empService.Update(context.Background(), second.ID, &dto.UpdateEmployeeRequest{
		EmployeeID:   "E-1",
		FirstName:    "Anna",
		LastName:     "Schmidt",
		Role:         "nurse",
		DepartmentID: "icu",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmployeeID)
}

func TestEmployeeUpdate_KeepOwnEmployeeID(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")

	updated, err := env.empService.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{
		EmployeeID:   "E-1",
		FirstName:    "Annette",
		LastName:     "Schmidt",
		Role:         "nurse",
		DepartmentID: "icu",
	})
	require.NoError(t, err)
	assert.Equal(t, "Annette", updated.FirstName)
}

func TestEmployeeDelete_BlockedByManagedDepartment(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")

	_, err := env.deptService.Update(context.Background(), "icu", &dto.UpdateDepartmentRequest{
		Name:      "ICU",
		ManagerID: &emp.ID,
	})
	require.NoError(t, err)

	err = env.empService.Delete(context.Background(), emp.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeManagesDepartment)
}

func TestEmployeeDelete_BlockedBySchedules(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")
	plan := env.createPlan(t, "icu")
	st := env.createShiftType(t, plan.ID, "D")

	_, err := env.schedService.ApplyChanges(context.Background(), plan.ID, []dto.ScheduleChange{
		{EmployeeID: emp.ID, Date: "2026-01-05", ShiftTypeID: st.ID},
	})
	require.NoError(t, err)

	err = env.empService.Delete(context.Background(), emp.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeHasSchedules)
}

func TestEmployeeDelete_Success(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")

	require.NoError(t, env.empService.Delete(context.Background(), emp.ID))

	_, err := env.empService.GetByID(context.Background(), emp.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
