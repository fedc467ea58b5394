package services

import (
	"math"
	"time"

	"github.com/google/uuid"

	"shopkart/models"
	"shopkart/repositories"
)

// totalTolerance absorbs float rounding between the client's sum and
// the server's recomputation.
const totalTolerance = 0.005

type OrderService struct {
	orderRepo *repositories.OrderRepository
}

func NewOrderService(store *repositories.FileStore) *OrderService {
	return &OrderService{
		orderRepo: repositories.NewOrderRepository(store),
	}
}

// PlaceOrder validates the request, recomputes the total from the item
// prices, and prepends the persisted order. Stock levels are displayed
// but never decremented.
func (s *OrderService) PlaceOrder(req models.PlaceOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, ErrInvalidOrder
	}

	var total float64
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return models.Order{}, ErrInvalidOrder
		}
		total += item.Price * float64(item.Quantity)
	}
	if math.Abs(total-req.Total) > totalTolerance {
		return models.Order{}, ErrTotalMismatch
	}

	userEmail := req.UserEmail
	if userEmail == "" {
		userEmail = "guest"
	}

	order := models.Order{
		ID:        "ORD-" + uuid.NewString(),
		UserEmail: userEmail,
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Items:     req.Items,
		Total:     req.Total,
		Date:      time.Now().UTC(),
	}

	if err := s.orderRepo.Prepend(order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ListOrders returns all orders, or only those whose userEmail matches
// the filter case-insensitively when one is supplied.
func (s *OrderService) ListOrders(userEmail string) ([]models.Order, error) {
	if userEmail != "" {
		return s.orderRepo.GetByUserEmail(userEmail)
	}
	return s.orderRepo.GetAll()
}
