package domain

import "time"

type TransactionStatus string

const (
	TxnOpen      TransactionStatus = "OPEN"
	TxnConfirmed TransactionStatus = "CONFIRMED"
	TxnFailed    TransactionStatus = "FAILED"
)

// Transaction is a payment-attempt record; it is linked to a vendor
// and an order number once the order it paid for is created.
type Transaction struct {
	ID              string            `json:"id"`
	CustomerID      string            `json:"customer"`
	VendorID        string            `json:"vendorId"`
	OrderID         string            `json:"orderId"`
	OrderValue      float64           `json:"orderValue"`
	OfferUsed       string            `json:"offerUsed"`
	Status          TransactionStatus `json:"status"`
	PaymentMode     string            `json:"paymentMode"`
	PaymentResponse string            `json:"paymentResponse"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
