package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"food-order-backend/internal/domain"
	"food-order-backend/internal/infrastructure/payment"
	"food-order-backend/internal/infrastructure/repo"
)

func newPaymentService() (*PaymentService, *repo.MemoryOfferRepo, *repo.MemoryTransactionRepo) {
	offers := repo.NewMemoryOfferRepo()
	txns := repo.NewMemoryTransactionRepo()
	svc := &PaymentService{
		Offers:       offers,
		Transactions: txns,
		Gateway:      &payment.Client{},
	}
	return svc, offers, txns
}

func TestCreatePaymentWithoutOffer(t *testing.T) {
	svc, _, _ := newPaymentService()

	txn, err := svc.CreatePayment("c1", 120.0, "COD", "")
	require.NoError(t, err)
	require.Equal(t, domain.TxnOpen, txn.Status)
	require.Equal(t, 120.0, txn.OrderValue)
	require.Equal(t, "NA", txn.OfferUsed)
	require.Equal(t, "Payment is cash on Delivery", txn.PaymentResponse)
	require.Empty(t, txn.VendorID)
	require.Empty(t, txn.OrderID)
}

func TestCreatePaymentAppliesActiveOffer(t *testing.T) {
	svc, offers, _ := newPaymentService()
	_ = offers.PutOffer(&domain.Offer{ID: "off-1", OfferAmount: 20.0, IsActive: true})

	txn, err := svc.CreatePayment("c1", 120.0, "CARD", "off-1")
	require.NoError(t, err)
	require.Equal(t, 100.0, txn.OrderValue)
	require.Equal(t, "off-1", txn.OfferUsed)
}

func TestCreatePaymentIgnoresInactiveOffer(t *testing.T) {
	svc, offers, _ := newPaymentService()
	_ = offers.PutOffer(&domain.Offer{ID: "off-1", OfferAmount: 20.0, IsActive: false})

	txn, err := svc.CreatePayment("c1", 120.0, "CARD", "off-1")
	require.NoError(t, err)
	require.Equal(t, 120.0, txn.OrderValue)
	// the id is still recorded even though no discount applied
	require.Equal(t, "off-1", txn.OfferUsed)
}

func TestTransactionReads(t *testing.T) {
	svc, _, txns := newPaymentService()
	_ = txns.PutTransaction(&domain.Transaction{ID: "t1", Status: domain.TxnOpen})

	got, err := svc.GetTransaction("t1")
	require.NoError(t, err)
	require.Equal(t, "t1", got.ID)

	_, err = svc.GetTransaction("missing")
	require.Error(t, err)

	require.Len(t, svc.ListTransactions(), 1)
}
