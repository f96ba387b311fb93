package usecase

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"food-order-backend/internal/config"
	"food-order-backend/internal/domain"
)

type OrderRepo interface {
	PutOrder(*domain.Order) error
	GetOrder(id string) (*domain.Order, bool)
	ListOrdersByIDs(ids []string) []domain.Order
	ListOrdersByVendor(vendorID string) []domain.Order
}

type TransactionRepo interface {
	PutTransaction(*domain.Transaction) error
	GetTransaction(id string) (*domain.Transaction, bool)
	ListTransactions() []domain.Transaction
}

type DeliveryRepo interface {
	PutDeliveryUser(*domain.DeliveryUser) error
	GetDeliveryUser(id string) (*domain.DeliveryUser, bool)
	GetDeliveryUserByEmail(email string) (*domain.DeliveryUser, bool)
	ListDeliveryUsersByPincode(pincode string) []domain.DeliveryUser
}

// OrderItemRef is what the caller claims to want: a food id and a
// unit count.
type OrderItemRef struct {
	FoodID string `json:"_id"`
	Unit   int    `json:"unit"`
}

type OrderService struct {
	Customers    CustomerRepo
	Foods        FoodRepo
	Orders       OrderRepo
	Transactions TransactionRepo
	Vandors      VandorRepo
	Deliveries   DeliveryRepo

	// IDMode selects the order-number generator; ItemsSource selects
	// whether CreateOrder trusts the request body or the stored cart.
	IDMode         string
	ItemsSource    string
	AssignDelivery bool
}

// validateTransaction enforces the precondition that the payment
// record exists and has not already failed.
func (s *OrderService) validateTransaction(txnID string) (*domain.Transaction, bool) {
	txn, ok := s.Transactions.GetTransaction(txnID)
	if !ok {
		return nil, false
	}
	if strings.ToLower(string(txn.Status)) == "failed" {
		return txn, false
	}
	return txn, true
}

// nextOrderNumber issues the public order number. The default mode
// derives it from a v4 uuid and is collision free; legacy mode keeps
// the source system's 1000-89999 draw, which can collide.
func (s *OrderService) nextOrderNumber() string {
	if s.IDMode == config.OrderIDLegacy {
		return strconv.Itoa(rand.Intn(89000) + 1000)
	}
	return uuid.NewString()
}

// CreateOrder turns the customer's claimed items into an immutable
// order. The whole operation fails, creating nothing, when the
// transaction precondition fails or no item resolves. The cart clear,
// order append and transaction confirm are three separate writes with
// no rollback; the persistence is best effort, matching the source
// system.
func (s *OrderService) CreateOrder(customerID, txnID string, paidAmount float64, items []OrderItemRef) (*domain.Order, error) {
	txn, ok := s.validateTransaction(txnID)
	if !ok || txn == nil {
		return nil, ErrBadRequest("error while creating order")
	}
	profile, ok := s.Customers.GetCustomer(customerID)
	if !ok {
		return nil, ErrNotFound("customer")
	}
	if s.ItemsSource == config.ItemsFromCart {
		items = items[:0:0]
		for _, ci := range profile.Cart {
			items = append(items, OrderItemRef{FoodID: ci.Food.ID, Unit: ci.Unit})
		}
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.FoodID)
	}
	foods := s.Foods.ListFoodsByIDs(ids)

	var cartItems []domain.CartItem
	var netAmount float64
	var vendorID string
	for _, food := range foods {
		for _, it := range items {
			if food.ID != it.FoodID {
				continue
			}
			// Last matched vendor wins when items span vendors,
			// preserved from the source system.
			vendorID = food.VendorID
			netAmount += food.Price * float64(it.Unit)
			cartItems = append(cartItems, domain.CartItem{Food: food, Unit: it.Unit})
		}
	}
	if len(cartItems) == 0 {
		return nil, ErrBadRequest("error while creating order")
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:          uuid.NewString(),
		OrderID:     s.nextOrderNumber(),
		VendorID:    vendorID,
		Items:       cartItems,
		TotalAmount: netAmount,
		PaidAmount:  paidAmount,
		OrderDate:   now,
		OrderStatus: domain.OrderWaiting,
		Remarks:     "",
		DeliveryID:  "",
		ReadyTime:   45,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_ = s.Orders.PutOrder(order)

	profile.Cart = []domain.CartItem{}
	profile.Orders = append(profile.Orders, order.ID)
	profile.UpdatedAt = now
	_ = s.Customers.PutCustomer(profile)

	txn.VendorID = vendorID
	txn.OrderID = order.OrderID
	txn.Status = domain.TxnConfirmed
	txn.UpdatedAt = now
	_ = s.Transactions.PutTransaction(txn)

	if s.AssignDelivery {
		s.assignOrderForDelivery(order.ID, vendorID)
	}
	return order, nil
}

func (s *OrderService) GetOrders(customerID string) ([]domain.Order, error) {
	profile, ok := s.Customers.GetCustomer(customerID)
	if !ok {
		return nil, ErrNotFound("customer")
	}
	return s.Orders.ListOrdersByIDs(profile.Orders), nil
}

func (s *OrderService) GetOrderByID(id string) (*domain.Order, error) {
	order, ok := s.Orders.GetOrder(id)
	if !ok {
		return nil, ErrNotFound("order")
	}
	return order, nil
}

func (s *OrderService) VendorOrders(vendorID string) []domain.Order {
	return s.Orders.ListOrdersByVendor(vendorID)
}

// ProcessOrder lets the vendor move an order through its states.
func (s *OrderService) ProcessOrder(id string, status domain.OrderStatus, remarks string, readyTime int) (*domain.Order, error) {
	order, ok := s.Orders.GetOrder(id)
	if !ok {
		return nil, ErrNotFound("order")
	}
	order.OrderStatus = status
	order.Remarks = remarks
	if readyTime > 0 {
		order.ReadyTime = readyTime
	}
	order.UpdatedAt = time.Now().UTC()
	_ = s.Orders.PutOrder(order)
	return order, nil
}

// assignOrderForDelivery stamps the order with the first verified and
// available courier in the vendor's area. Finding nobody is not an
// error; the order simply stays unassigned.
func (s *OrderService) assignOrderForDelivery(orderDocID, vendorID string) {
	vandor, ok := s.Vandors.GetVandor(vendorID)
	if !ok {
		return
	}
	couriers := s.Deliveries.ListDeliveryUsersByPincode(vandor.Pincode)
	for _, courier := range couriers {
		if !courier.Verified || !courier.IsAvailable {
			continue
		}
		order, ok := s.Orders.GetOrder(orderDocID)
		if !ok {
			return
		}
		order.DeliveryID = courier.ID
		order.UpdatedAt = time.Now().UTC()
		_ = s.Orders.PutOrder(order)
		return
	}
}
