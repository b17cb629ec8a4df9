package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrShiftPlanNotFound  = errors.New("shift plan not found")
	ErrShiftTypeNotFound  = errors.New("shift type not found")
	ErrScheduleNotFound   = errors.New("schedule not found")

	ErrDuplicateDepartmentID  = errors.New("department with this id already exists")
	ErrDuplicateEmployeeID    = errors.New("employee with this employee id already exists")
	ErrDuplicateShiftTypeCode = errors.New("shift type with this code already exists in the plan")
	ErrDuplicateSchedule      = errors.New("schedule for this employee and date already exists")

	ErrDepartmentHasEmployees    = errors.New("department has assigned employees")
	ErrEmployeeManagesDepartment = errors.New("employee manages a department")
	ErrEmployeeHasSchedules      = errors.New("employee has assigned schedules")
	ErrShiftTypeInUse            = errors.New("shift type is referenced by schedules")

	ErrInvalidDate           = errors.New("invalid date format")
	ErrEndDateNotAfterStart  = errors.New("end date must be after start date")
	ErrDateTooFarInFuture    = errors.New("date is more than 10 years in the future")
	ErrNoDepartments         = errors.New("at least one department is required")
	ErrUnknownPlanDepartment = errors.New("department is not associated with the shift plan")
	ErrShiftTimeRequired     = errors.New("start and end time are required for this shift type")
	ErrEmptyChangeList       = errors.New("changes must be a non-empty array")
)
