package domain

import "time"

type OrderStatus string

const (
	OrderWaiting   OrderStatus = "Waiting"
	OrderAccepted  OrderStatus = "Accepted"
	OrderPreparing OrderStatus = "Preparing"
	OrderOnTheWay  OrderStatus = "On the way"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// Order is an immutable snapshot of a purchase; after creation only
// status, remarks, readyTime and deliveryId are mutated.
type Order struct {
	ID          string      `json:"id"`
	OrderID     string      `json:"orderId"`
	VendorID    string      `json:"vendorId"`
	Items       []CartItem  `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	PaidAmount  float64     `json:"paidAmount"`
	OrderDate   time.Time   `json:"orderDate"`
	OrderStatus OrderStatus `json:"orderStatus"`
	Remarks     string      `json:"remarks"`
	DeliveryID  string      `json:"deliveryId"`
	ReadyTime   int         `json:"readyTime"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
