package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
	"github.com/shift-planner-api/internal/repository"
	"github.com/shift-planner-api/internal/service"
)

// testEnv поднимает сервисы поверх SQLite в памяти,
// каждый тест получает свою базу
type testEnv struct {
	db *gorm.DB

	deptService  service.DepartmentService
	empService   service.EmployeeService
	planService  service.ShiftPlanService
	typeService  service.ShiftTypeService
	schedService service.ScheduleService
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithGuard(t, false)
}

func newTestEnvWithGuard(t *testing.T, shiftTypeDeleteGuard bool) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&domain.Department{},
		&domain.Employee{},
		&domain.ShiftPlan{},
		&domain.ShiftPlanDepartment{},
		&domain.ShiftType{},
		&domain.Schedule{},
	))

	deptRepo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	planRepo := repository.NewShiftPlanRepository(db)
	typeRepo := repository.NewShiftTypeRepository(db)
	schedRepo := repository.NewScheduleRepository(db)

	return &testEnv{
		db:           db,
		deptService:  service.NewDepartmentService(deptRepo, empRepo, planRepo, schedRepo),
		empService:   service.NewEmployeeService(empRepo, deptRepo, schedRepo),
		planService:  service.NewShiftPlanService(planRepo),
		typeService:  service.NewShiftTypeService(typeRepo, planRepo, schedRepo, shiftTypeDeleteGuard),
		schedService: service.NewScheduleService(schedRepo, planRepo, empRepo),
	}
}

func (e *testEnv) createDepartment(t *testing.T, id string) *domain.Department {
	t.Helper()
	dept, err := e.deptService.Create(context.Background(), &dto.CreateDepartmentRequest{
		ID:   id,
		Name: "Department " + id,
	})
	require.NoError(t, err)
	return dept
}

func (e *testEnv) createEmployee(t *testing.T, employeeID, departmentID string) *domain.Employee {
	t.Helper()
	emp, err := e.empService.Create(context.Background(), &dto.CreateEmployeeRequest{
		EmployeeID:   employeeID,
		FirstName:    "Anna",
		LastName:     "Schmidt",
		Role:         "nurse",
		DepartmentID: departmentID,
	})
	require.NoError(t, err)
	return emp
}

func (e *testEnv) createPlan(t *testing.T, departmentIDs ...string) *domain.ShiftPlan {
	t.Helper()
	plan, err := e.planService.Create(context.Background(), &dto.SaveShiftPlanRequest{
		Name:          "January",
		StartDate:     "2026-01-01",
		EndDate:       "2026-01-31",
		DepartmentIDs: departmentIDs,
	})
	require.NoError(t, err)
	return plan
}

func (e *testEnv) createShiftType(t *testing.T, planID, code string) *domain.ShiftType {
	t.Helper()
	st, err := e.typeService.Create(context.Background(), &dto.CreateShiftTypeRequest{
		Code:        code,
		Name:        "Shift " + code,
		Color:       "#ff8800",
		ShiftPlanID: planID,
	})
	require.NoError(t, err)
	return st
}
