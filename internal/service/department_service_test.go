package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
)

func TestDepartmentCreate_Defaults(t *testing.T) {
	env := newTestEnv(t)

	desc := "Intensive care"
	dept, err := env.deptService.Create(context.Background(), &dto.CreateDepartmentRequest{
		ID:          "icu",
		Name:        "ICU",
		Description: &desc,
		Groups:      []string{"day", "night"},
	})
	require.NoError(t, err)

	assert.Equal(t, "icu", dept.ID)
	assert.Equal(t, domain.DepartmentStatusActive, dept.Status)
	assert.Equal(t, []string{"day", "night"}, dept.Groups)
	assert.Nil(t, dept.ManagerID)
}

func TestDepartmentCreate_DuplicateID(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")

	_, err := env.deptService.Create(context.Background(), &dto.CreateDepartmentRequest{
		ID:   "icu",
		Name: "Another ICU",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateDepartmentID)
}

func TestDepartmentUpdate_SetsAndClearsManager(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")

	updated, err := env.deptService.Update(context.Background(), "icu", &dto.UpdateDepartmentRequest{
		Name:      "ICU",
		ManagerID: &emp.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ManagerID)
	assert.Equal(t, emp.ID, *updated.ManagerID)
	require.NotNil(t, updated.Manager)
	assert.Equal(t, emp.ID, updated.Manager.ID)

	// Отсутствующий managerId снимает руководителя
	updated, err = env.deptService.Update(context.Background(), "icu", &dto.UpdateDepartmentRequest{
		Name: "ICU",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ManagerID)
}

func TestDepartmentUpdate_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.deptService.Update(context.Background(), "missing", &dto.UpdateDepartmentRequest{
		Name: "Ghost",
	})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentDelete_BlockedByEmployees(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	env.createEmployee(t, "E-1", "icu")

	_, err := env.deptService.Delete(context.Background(), "icu")
	assert.ErrorIs(t, err, domain.ErrDepartmentHasEmployees)
}

func TestDepartmentDelete_RemovesPlanLinks(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	env.createDepartment(t, "er")
	planA := env.createPlan(t, "icu", "er")
	planB := env.createPlan(t, "icu", "er")

	affected, err := env.deptService.Delete(context.Background(), "icu")
	require.NoError(t, err)
	assert.Equal(t, 2, affected)

	for _, planID := range []string{planA.ID, planB.ID} {
		plan, err := env.planService.GetByID(context.Background(), planID)
		require.NoError(t, err)
		require.Len(t, plan.Departments, 1)
		assert.Equal(t, "er", plan.Departments[0].DepartmentID)
	}
}

func TestDepartmentDelete_KeepsSchedules(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	env.createDepartment(t, "er")
	emp := env.createEmployee(t, "E-1", "icu")
	plan := env.createPlan(t, "icu", "er")
	st := env.createShiftType(t, plan.ID, "D")

	_, err := env.schedService.ApplyChanges(context.Background(), plan.ID, []dto.ScheduleChange{
		{EmployeeID: emp.ID, Date: "2026-01-05", ShiftTypeID: st.ID},
	})
	require.NoError(t, err)

	// Сотрудника переводим в другое подразделение, чтобы снять блокировку
	_, err = env.empService.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{
		EmployeeID:   "E-1",
		FirstName:    "Anna",
		LastName:     "Schmidt",
		Role:         "nurse",
		DepartmentID: "er",
	})
	require.NoError(t, err)

	affected, err := env.deptService.Delete(context.Background(), "icu")
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	// Назначение остаётся, но теряет ссылку на удалённую связь
	var sched domain.Schedule
	require.NoError(t, env.db.First(&sched).Error)
	assert.Nil(t, sched.ShiftPlanDepartmentID)
}

func TestDepartmentDelete_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.deptService.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}
