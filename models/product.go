package models

// Product is seeded externally in data/products.json and is read-only.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock,omitempty"`
	Image    string  `json:"image"`
	Make     string  `json:"make,omitempty"`
}
