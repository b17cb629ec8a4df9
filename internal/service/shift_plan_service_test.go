package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
)

func TestShiftPlanCreate_AssignsDisplayOrder(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	env.createDepartment(t, "er")

	plan := env.createPlan(t, "icu", "er")

	require.Len(t, plan.Departments, 2)
	assert.Equal(t, "icu", plan.Departments[0].DepartmentID)
	assert.Equal(t, 0, plan.Departments[0].DisplayOrder)
	assert.Equal(t, "er", plan.Departments[1].DepartmentID)
	assert.Equal(t, 1, plan.Departments[1].DisplayOrder)
	assert.Equal(t, domain.ShiftPlanStatusDraft, plan.Status)
}

func TestShiftPlanCreate_InvalidDate(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")

	_, err := env.planService.Create(context.Background(), &dto.SaveShiftPlanRequest{
		Name:          "Broken",
		StartDate:     "01.01.2026",
		EndDate:       "2026-01-31",
		DepartmentIDs: []string{"icu"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestShiftPlanCreate_EndDateNotAfterStart(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")

	for _, endDate := range []string{"2026-01-01", "2025-12-31"} {
		_, err := env.planService.Create(context.Background(), &dto.SaveShiftPlanRequest{
			Name:          "Broken",
			StartDate:     "2026-01-01",
			EndDate:       endDate,
			DepartmentIDs: []string{"icu"},
		})
		assert.ErrorIs(t, err, domain.ErrEndDateNotAfterStart)
	}
}

func TestShiftPlanCreate_DateTooFarInFuture(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")

	_, err := env.planService.Create(context.Background(), &dto.SaveShiftPlanRequest{
		Name:          "Distant",
		StartDate:     "2099-01-01",
		EndDate:       "2099-01-31",
		DepartmentIDs: []string{"icu"},
	})
	assert.ErrorIs(t, err, domain.ErrDateTooFarInFuture)
}

func TestShiftPlanCreate_NoDepartments(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.planService.Create(context.Background(), &dto.SaveShiftPlanRequest{
		Name:      "Empty",
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})
	assert.ErrorIs(t, err, domain.ErrNoDepartments)
}

func TestShiftPlanCreate_UnknownDepartment(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")

	_, err := env.planService.Create(context.Background(), &dto.SaveShiftPlanRequest{
		Name:          "Broken",
		StartDate:     "2026-01-01",
		EndDate:       "2026-01-31",
		DepartmentIDs: []string{"icu", "missing"},
	})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)

	// Транзакция откатилась, график не должен существовать
	plans, err := env.planService.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestShiftPlanUpdate_ReplacesDepartments(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	env.createDepartment(t, "er")
	env.createDepartment(t, "lab")
	plan := env.createPlan(t, "icu", "er")

	updated, err := env.planService.Update(context.Background(), plan.ID, &dto.SaveShiftPlanRequest{
		Name:          "February",
		StartDate:     "2026-02-01",
		EndDate:       "2026-02-28",
		DepartmentIDs: []string{"lab"},
	})
	require.NoError(t, err)

	assert.Equal(t, "February", updated.Name)
	require.Len(t, updated.Departments, 1)
	assert.Equal(t, "lab", updated.Departments[0].DepartmentID)
	assert.Equal(t, 0, updated.Departments[0].DisplayOrder)
}

func TestShiftPlanUpdate_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")

	_, err := env.planService.Update(context.Background(), "11111111-1111-1111-1111-111111111111", &dto.SaveShiftPlanRequest{
		Name:          "Ghost",
		StartDate:     "2026-01-01",
		EndDate:       "2026-01-31",
		DepartmentIDs: []string{"icu"},
	})
	assert.ErrorIs(t, err, domain.ErrShiftPlanNotFound)
}

func TestShiftPlanUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	plan := env.createPlan(t, "icu")

	updated, err := env.planService.UpdateStatus(context.Background(), plan.ID, domain.ShiftPlanStatusActive)
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftPlanStatusActive, updated.Status)
}

func TestShiftPlanReorder_SwapsPositions(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	env.createDepartment(t, "er")
	plan := env.createPlan(t, "icu", "er")

	updated, err := env.planService.ReorderDepartments(context.Background(), plan.ID, []string{"er", "icu"})
	require.NoError(t, err)

	require.Len(t, updated.Departments, 2)
	assert.Equal(t, "er", updated.Departments[0].DepartmentID)
	assert.Equal(t, "icu", updated.Departments[1].DepartmentID)
}

func TestShiftPlanReorder_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	env.createDepartment(t, "er")
	plan := env.createPlan(t, "icu", "er")

	order := []string{"er", "icu"}
	first, err := env.planService.ReorderDepartments(context.Background(), plan.ID, order)
	require.NoError(t, err)
	second, err := env.planService.ReorderDepartments(context.Background(), plan.ID, order)
	require.NoError(t, err)

	require.Len(t, second.Departments, 2)
	for i := range first.Departments {
		assert.Equal(t, first.Departments[i].DepartmentID, second.Departments[i].DepartmentID)
		assert.Equal(t, first.Departments[i].DisplayOrder, second.Departments[i].DisplayOrder)
	}
}

func TestShiftPlanReorder_UnknownDepartment(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	plan := env.createPlan(t, "icu")

	_, err := env.planService.ReorderDepartments(context.Background(), plan.ID, []string{"icu", "missing"})
	assert.ErrorIs(t, err, domain.ErrUnknownPlanDepartment)
}

func TestShiftPlanDelete_Cascades(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")
	plan := env.createPlan(t, "icu")
	st := env.createShiftType(t, plan.ID, "D")

	_, err := env.schedService.ApplyChanges(context.Background(), plan.ID, []dto.ScheduleChange{
		{EmployeeID: emp.ID, Date: "2026-01-05", ShiftTypeID: st.ID},
	})
	require.NoError(t, err)

	require.NoError(t, env.planService.Delete(context.Background(), plan.ID))

	_, err = env.planService.GetByID(context.Background(), plan.ID)
	assert.ErrorIs(t, err, domain.ErrShiftPlanNotFound)

	var schedules, types, links int64
	env.db.Model(&domain.Schedule{}).Count(&schedules)
	env.db.Model(&domain.ShiftType{}).Count(&types)
	env.db.Model(&domain.ShiftPlanDepartment{}).Count(&links)
	assert.Zero(t, schedules)
	assert.Zero(t, types)
	assert.Zero(t, links)
}

func TestShiftPlanDelete_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.planService.Delete(context.Background(), "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, domain.ErrShiftPlanNotFound)
}
