package repositories

import (
	"strings"

	"shopkart/models"
)

type OrderRepository struct {
	store *FileStore
}

func NewOrderRepository(store *FileStore) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) GetAll() ([]models.Order, error) {
	unlock := r.store.lock(ordersFile)
	defer unlock()
	return r.loadOrders()
}

// GetByUserEmail filters case-insensitively, preserving stored order.
func (r *OrderRepository) GetByUserEmail(email string) ([]models.Order, error) {
	unlock := r.store.lock(ordersFile)
	defer unlock()

	orders, err := r.loadOrders()
	if err != nil {
		return nil, err
	}
	filtered := []models.Order{}
	for _, o := range orders {
		if strings.EqualFold(o.UserEmail, email) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// Prepend inserts o at the head of the list so listing stays
// most-recent-first without sorting.
func (r *OrderRepository) Prepend(o models.Order) error {
	unlock := r.store.lock(ordersFile)
	defer unlock()

	orders, err := r.loadOrders()
	if err != nil {
		return err
	}
	orders = append([]models.Order{o}, orders...)
	return r.store.write(ordersFile, orders)
}

func (r *OrderRepository) loadOrders() ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.store.read(ordersFile, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
