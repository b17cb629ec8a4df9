package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
)

func TestApplyChanges_CreatesSchedule(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")
	plan := env.createPlan(t, "icu")
	st := env.createShiftType(t, plan.ID, "D")

	resp, err := env.schedService.ApplyChanges(context.Background(), plan.ID, []dto.ScheduleChange{
		{EmployeeID: emp.ID, Date: "2026-01-05", ShiftTypeID: st.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "Applied 1 of 1 changes", resp.Message)
	assert.Equal(t, 1, resp.Succeeded)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Success)
	assert.Equal(t, "created", resp.Results[0].Action)
	require.NotNil(t, resp.Results[0].Schedule)
	assert.Equal(t, st.ID, resp.Results[0].Schedule.ShiftTypeID)

	// Назначение привязано к строке подразделения сотрудника в графике
	require.NotNil(t, resp.Results[0].Schedule.ShiftPlanDepartmentID)
	assert.Equal(t, plan.Departments[0].ID, *resp.Results[0].Schedule.ShiftPlanDepartmentID)
}

func TestApplyChanges_UpdatesExisting(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")
	plan := env.createPlan(t, "icu")
	day := env.createShiftType(t, plan.ID, "D")
	night := env.createShiftType(t, plan.ID, "N")

	_, err := env.schedService.ApplyChanges(context.Background(), plan.ID, []dto.ScheduleChange{
		{EmployeeID: emp.ID, Date: "2026-01-05", ShiftTypeID: day.ID},
	})
	require.NoError(t, err)

	resp, err := env.schedService.ApplyChanges(context.Background(), plan.ID, []dto.ScheduleChange{
		{EmployeeID: emp.ID, Date: "2026-01-05", ShiftTypeID: night.ID},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "updated", resp.Results[0].Action)
	assert.Equal(t, night.ID, resp.Results[0].Schedule.ShiftTypeID)

	// Дубликат не создаётся, пара (сотрудник, дата) остаётся уникальной
	var count int64
	env.db.Model(&domain.Schedule{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestApplyChanges_PartialFailureDoesNotStopBatch(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")
	plan := env.createPlan(t, "icu")
	st := env.createShiftType(t, plan.ID, "D")

	resp, err := env.schedService.ApplyChanges(context.Background(), plan.ID, []dto.ScheduleChange{
		{EmployeeID: emp.ID, Date: "2026-01-05", ShiftTypeID: st.ID},
		{EmployeeID: "", Date: "2026-01-06", ShiftTypeID: st.ID},
		{EmployeeID: emp.ID, Date: "not-a-date", ShiftTypeID: st.ID},
		{EmployeeID: emp.ID, Date: "2026-01-07", ShiftTypeID: st.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "Applied 2 of 4 changes", resp.Message)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 4, resp.Total)

	assert.True(t, resp.Results[0].Success)
	assert.False(t, resp.Results[1].Success)
	assert.Equal(t, "Missing required fields", resp.Results[1].Error)
	assert.False(t, resp.Results[2].Success)
	assert.Equal(t, "Invalid date format", resp.Results[2].Error)
	assert.True(t, resp.Results[3].Success)
}

func TestApplyChanges_EmptyList(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	plan := env.createPlan(t, "icu")

	_, err := env.schedService.ApplyChanges(context.Background(), plan.ID, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyChangeList)
}

func TestApplyChanges_PlanNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.schedService.ApplyChanges(context.Background(), "11111111-1111-1111-1111-111111111111", []dto.ScheduleChange{
		{EmployeeID: "x", Date: "2026-01-05", ShiftTypeID: "y"},
	})
	assert.ErrorIs(t, err, domain.ErrShiftPlanNotFound)
}

func TestScheduleDelete(t *testing.T) {
	env := newTestEnv(t)
	env.createDepartment(t, "icu")
	emp := env.createEmployee(t, "E-1", "icu")
	plan := env.createPlan(t, "icu")
	st := env.createShiftType(t, plan.ID, "D")

	resp, err := env.schedService.ApplyChanges(context.Background(), plan.ID, []dto.ScheduleChange{
		{EmployeeID: emp.ID, Date: "2026-01-05", ShiftTypeID: st.ID},
	})
	require.NoError(t, err)

	require.NoError(t, env.schedService.Delete(context.Background(), resp.Results[0].Schedule.ID))

	var count int64
	env.db.Model(&domain.Schedule{}).Count(&count)
	assert.Zero(t, count)
}

func TestScheduleDelete_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.schedService.Delete(context.Background(), "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}
