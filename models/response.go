package models

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}
