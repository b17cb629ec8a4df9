package dto

// SaveShiftPlanRequest - запрос на создание или полное обновление графика.
// Список подразделений полностью заменяет существующие связи,
// порядок в массиве определяет displayOrder.
type SaveShiftPlanRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	StartDate     string   `json:"startDate" validate:"required"`
	EndDate       string   `json:"endDate" validate:"required"`
	DepartmentIDs []string `json:"departmentIds"`
	Status        *string  `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE PUBLISHED ARCHIVED"`
}

// UpdateShiftPlanStatusRequest - запрос на смену статуса графика
type UpdateShiftPlanStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT ACTIVE ARCHIVED"`
}

// ReorderDepartmentsRequest - запрос на изменение порядка подразделений графика
type ReorderDepartmentsRequest struct {
	DepartmentIDs []string `json:"departmentIds" validate:"required,min=1"`
}
