package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"food-order-backend/internal/domain"
)

// ChargeClient is the payment gateway seam. The production default is
// a placeholder that answers with a cash-on-delivery note; no real
// charge happens.
type ChargeClient interface {
	Charge(ctx context.Context, customerID string, amount float64, mode string) (string, error)
}

type PaymentService struct {
	Offers       OfferRepo
	Transactions TransactionRepo
	Gateway      ChargeClient
}

// CreatePayment records an OPEN transaction for the claimed amount,
// discounted by the offer when one is supplied and active. Neither
// the validity window nor the minimum order value is re-checked here,
// matching the source system.
func (s *PaymentService) CreatePayment(customerID string, amount float64, paymentMode, offerID string) (*domain.Transaction, error) {
	payable := amount
	offerUsed := "NA"
	if offerID != "" {
		if offer, ok := s.Offers.GetOffer(offerID); ok && offer.IsActive {
			payable -= offer.OfferAmount
		}
		offerUsed = offerID
	}
	response, err := s.Gateway.Charge(context.Background(), customerID, payable, paymentMode)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		VendorID:        "",
		OrderID:         "",
		OrderValue:      payable,
		OfferUsed:       offerUsed,
		Status:          domain.TxnOpen,
		PaymentMode:     paymentMode,
		PaymentResponse: response,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	_ = s.Transactions.PutTransaction(txn)
	return txn, nil
}

func (s *PaymentService) ListTransactions() []domain.Transaction {
	return s.Transactions.ListTransactions()
}

func (s *PaymentService) GetTransaction(id string) (*domain.Transaction, error) {
	txn, ok := s.Transactions.GetTransaction(id)
	if !ok {
		return nil, ErrNotFound("transaction")
	}
	return txn, nil
}
