package dto

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse - ответ с информационным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
