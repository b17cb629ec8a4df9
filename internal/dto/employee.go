package dto

// CreateEmployeeRequest - запрос на создание сотрудника.
// Пустые необязательные поля не записываются вовсе.
type CreateEmployeeRequest struct {
	EmployeeID   string  `json:"employeeId" validate:"required,min=1,max=50"`
	FirstName    string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName     string  `json:"lastName" validate:"required,min=1,max=100"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Group        *string `json:"group" validate:"omitempty,max=100"`
	Role         string  `json:"role" validate:"required,min=1,max=100"`
	Status       *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE ON_LEAVE"`
	DepartmentID string  `json:"departmentId" validate:"required,min=1,max=50"`
}

// UpdateEmployeeRequest - запрос на обновление сотрудника.
// Отсутствующие необязательные поля явно обнуляются.
type UpdateEmployeeRequest struct {
	EmployeeID   string  `json:"employeeId" validate:"required,min=1,max=50"`
	FirstName    string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName     string  `json:"lastName" validate:"required,min=1,max=100"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Group        *string `json:"group" validate:"omitempty,max=100"`
	Role         string  `json:"role" validate:"required,min=1,max=100"`
	Status       *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE ON_LEAVE"`
	DepartmentID string  `json:"departmentId" validate:"required,min=1,max=50"`
}
