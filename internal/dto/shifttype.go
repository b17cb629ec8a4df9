package dto

// CreateShiftTypeRequest - запрос на создание типа смены
type CreateShiftTypeRequest struct {
	Code         string  `json:"code" validate:"required,min=1,max=3"`
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Color        string  `json:"color" validate:"omitempty,max=20"`
	StartTime    *string `json:"startTime" validate:"omitempty,len=5"`
	EndTime      *string `json:"endTime" validate:"omitempty,len=5"`
	RequiresTime bool    `json:"requiresTime"`
	ShiftPlanID  string  `json:"shiftPlanId" validate:"required,uuid"`
}

// UpdateShiftTypeRequest - запрос на обновление типа смены
type UpdateShiftTypeRequest struct {
	Code         string  `json:"code" validate:"required,min=1,max=3"`
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Color        string  `json:"color" validate:"omitempty,max=20"`
	StartTime    *string `json:"startTime" validate:"omitempty,len=5"`
	EndTime      *string `json:"endTime" validate:"omitempty,len=5"`
	RequiresTime bool    `json:"requiresTime"`
}
