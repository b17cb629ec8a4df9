package dto

// CreateDepartmentRequest - запрос на создание подразделения.
// Идентификатор задаётся пользователем и должен быть уникальным.
type CreateDepartmentRequest struct {
	ID          string   `json:"id" validate:"required,min=1,max=50"`
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Groups      []string `json:"groups" validate:"omitempty,dive,min=1,max=100"`
	Status      *string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
	ManagerID   *string  `json:"managerId" validate:"omitempty,uuid"`
}

// UpdateDepartmentRequest - запрос на обновление подразделения.
// Отсутствующий managerId снимает руководителя.
type UpdateDepartmentRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Groups      []string `json:"groups" validate:"omitempty,dive,min=1,max=100"`
	Status      *string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
	ManagerID   *string  `json:"managerId" validate:"omitempty,uuid"`
}
