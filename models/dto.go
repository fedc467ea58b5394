package models

type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// PlaceOrderRequest is an Order minus the server-assigned id and date.
type PlaceOrderRequest struct {
	UserEmail string      `json:"userEmail"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
}
