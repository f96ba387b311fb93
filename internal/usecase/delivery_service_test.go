package usecase

import (
	"testing"

	"food-order-backend/internal/infrastructure/repo"
)

func newDeliveryService() (*DeliveryService, *repo.MemoryDeliveryRepo) {
	deliveries := repo.NewMemoryDeliveryRepo()
	svc := &DeliveryService{
		Deliveries: deliveries,
		Auth:       &AuthService{JWTSecret: "test-secret"},
	}
	return svc, deliveries
}

func deliveryInput(email string) CreateDeliveryUserInput {
	return CreateDeliveryUserInput{
		Email:     email,
		Phone:     "98000000",
		Password:  "secret1",
		Address:   "7 Side St",
		FirstName: "Riley",
		LastName:  "Moore",
		Pincode:   "440001",
	}
}

func TestDeliverySignUpAndLogin(t *testing.T) {
	svc, _ := newDeliveryService()

	token, d, err := svc.SignUp(deliveryInput("d@b.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if token == "" {
		t.Fatal("no signature issued")
	}
	if d.Verified {
		t.Fatal("courier must start unverified")
	}
	if d.IsAvailable {
		t.Fatal("courier must start unavailable")
	}

	if _, _, err := svc.SignUp(deliveryInput("d@b.com")); err == nil {
		t.Fatal("duplicate email accepted")
	}

	if _, _, err := svc.Login("d@b.com", "secret1"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, _, err := svc.Login("d@b.com", "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestDeliveryChangeStatus(t *testing.T) {
	svc, _ := newDeliveryService()
	_, d, _ := svc.SignUp(deliveryInput("d@b.com"))

	d, err := svc.ChangeStatus(d.ID, 21.1, 79.0)
	if err != nil {
		t.Fatalf("change status failed: %v", err)
	}
	if !d.IsAvailable {
		t.Fatal("not flipped available")
	}
	if d.Lat != 21.1 || d.Lng != 79.0 {
		t.Fatalf("location not stored: %v %v", d.Lat, d.Lng)
	}

	d, _ = svc.ChangeStatus(d.ID, 0, 0)
	if d.IsAvailable {
		t.Fatal("not flipped unavailable")
	}

	if _, err := svc.ChangeStatus("ghost", 0, 0); err == nil {
		t.Fatal("unknown courier accepted")
	}
}
