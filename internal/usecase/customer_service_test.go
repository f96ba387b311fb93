package usecase

import (
	"context"
	"testing"
	"time"

	"food-order-backend/internal/domain"
	"food-order-backend/internal/infrastructure/repo"
)

type fakeSMS struct {
	sent []int
	fail bool
}

func (f *fakeSMS) SendOTP(_ context.Context, otp int, _ string) bool {
	f.sent = append(f.sent, otp)
	return !f.fail
}

func newCustomerService() (*CustomerService, *repo.MemoryCustomerRepo, *repo.MemoryFoodRepo, *fakeSMS) {
	customers := repo.NewMemoryCustomerRepo()
	foods := repo.NewMemoryFoodRepo()
	sms := &fakeSMS{}
	svc := &CustomerService{
		Customers: customers,
		Foods:     foods,
		Auth:      &AuthService{JWTSecret: "test-secret"},
		SMS:       sms,
	}
	return svc, customers, foods, sms
}

func seedFood(foods *repo.MemoryFoodRepo, id, vendorID string, price float64) {
	_ = foods.PutFood(&domain.Food{ID: id, VendorID: vendorID, Name: "food-" + id, Price: price})
}

func TestSignUpAndLogin(t *testing.T) {
	svc, _, _, sms := newCustomerService()

	token, c, err := svc.SignUp("a@b.com", "98000000", "password1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if token == "" {
		t.Fatal("no signature issued")
	}
	if c.Verified {
		t.Fatal("fresh customer must be unverified")
	}
	if len(sms.sent) != 1 {
		t.Fatalf("expected one OTP sent, got %d", len(sms.sent))
	}

	if _, _, err := svc.SignUp("a@b.com", "98000001", "password2"); err == nil {
		t.Fatal("duplicate email accepted")
	}

	if _, _, err := svc.Login("a@b.com", "password1"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, _, err := svc.Login("a@b.com", "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestVerifyOTP(t *testing.T) {
	svc, customers, _, _ := newCustomerService()
	_, c, err := svc.SignUp("a@b.com", "98000000", "password1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, _, err := svc.VerifyOTP(c.ID, c.OTP+1); err == nil {
		t.Fatal("wrong OTP accepted")
	}

	_, verified, err := svc.VerifyOTP(c.ID, c.OTP)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !verified.Verified {
		t.Fatal("customer not flagged verified")
	}

	// expired code is rejected even when it matches
	stored, _ := customers.GetCustomer(c.ID)
	stored.OTPExpiry = time.Now().Add(-time.Minute)
	_ = customers.PutCustomer(stored)
	if _, _, err := svc.VerifyOTP(c.ID, stored.OTP); err == nil {
		t.Fatal("expired OTP accepted")
	}
}

func TestAddToCartReplaceAndRemove(t *testing.T) {
	svc, _, foods, _ := newCustomerService()
	_, c, _ := svc.SignUp("a@b.com", "98000000", "password1")
	seedFood(foods, "f1", "v1", 5.0)
	seedFood(foods, "f2", "v1", 3.0)

	// repeated positive units leave exactly one entry with the last unit
	for _, unit := range []int{1, 4, 2} {
		if _, err := svc.AddToCart(c.ID, "f1", unit); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	cart, _ := svc.GetCart(c.ID)
	if len(cart) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(cart))
	}
	if cart[0].Unit != 2 {
		t.Fatalf("expected last unit 2, got %d", cart[0].Unit)
	}

	// unit zero removes the entry
	if _, err := svc.AddToCart(c.ID, "f1", 0); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	cart, _ = svc.GetCart(c.ID)
	for _, item := range cart {
		if item.Food.ID == "f1" {
			t.Fatal("f1 still in cart after unit 0")
		}
	}

	// zero unit for an absent entry is a no-op, not an append
	if _, err := svc.AddToCart(c.ID, "f2", 0); err != nil {
		t.Fatalf("noop add failed: %v", err)
	}
	cart, _ = svc.GetCart(c.ID)
	if len(cart) != 0 {
		t.Fatalf("expected empty cart, got %d entries", len(cart))
	}

	if _, err := svc.AddToCart(c.ID, "missing", 1); err == nil {
		t.Fatal("unknown food accepted")
	}
}

func TestDeleteCart(t *testing.T) {
	svc, _, foods, _ := newCustomerService()
	_, c, _ := svc.SignUp("a@b.com", "98000000", "password1")
	seedFood(foods, "f1", "v1", 5.0)
	_, _ = svc.AddToCart(c.ID, "f1", 3)

	profile, err := svc.DeleteCart(c.ID)
	if err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}
	if len(profile.Cart) != 0 {
		t.Fatalf("cart not cleared: %d entries", len(profile.Cart))
	}
}

func TestRequestOTPReportsDeliveryFailure(t *testing.T) {
	svc, _, _, sms := newCustomerService()
	_, c, _ := svc.SignUp("a@b.com", "98000000", "password1")

	sms.fail = true
	if err := svc.RequestOTP(c.ID); err == nil {
		t.Fatal("failed delivery not reported")
	}

	sms.fail = false
	if err := svc.RequestOTP(c.ID); err != nil {
		t.Fatalf("request OTP failed: %v", err)
	}
}
