package models

import "time"

type Order struct {
	ID        string      `json:"id"`
	UserEmail string      `json:"userEmail"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Date      time.Time   `json:"date"`
}

type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
