package usecase

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"food-order-backend/internal/domain"
)

type CustomerRepo interface {
	PutCustomer(*domain.Customer) error
	GetCustomer(id string) (*domain.Customer, bool)
	GetCustomerByEmail(email string) (*domain.Customer, bool)
}

type FoodRepo interface {
	PutFood(*domain.Food) error
	GetFood(id string) (*domain.Food, bool)
	ListFoodsByVendor(vendorID string) []domain.Food
	ListFoodsByIDs(ids []string) []domain.Food
}

// SMSSender delivers one-time passcodes. Delivery failure is reported
// as a plain boolean, never an error that aborts the request.
type SMSSender interface {
	SendOTP(ctx context.Context, otp int, phone string) bool
}

type CustomerService struct {
	Customers CustomerRepo
	Foods     FoodRepo
	Auth      *AuthService
	SMS       SMSSender
}

// GenerateOTP draws a six digit passcode valid for thirty minutes.
func GenerateOTP() (int, time.Time) {
	otp := 100000 + rand.Intn(900000)
	return otp, time.Now().Add(30 * time.Minute)
}

func (s *CustomerService) SignUp(email, phone, password string) (string, *domain.Customer, error) {
	if _, exists := s.Customers.GetCustomerByEmail(email); exists {
		return "", nil, ErrConflict("email already exist")
	}
	salt, err := GenerateSalt()
	if err != nil {
		return "", nil, err
	}
	hashed, err := HashPassword(password, salt)
	if err != nil {
		return "", nil, err
	}
	otp, expiry := GenerateOTP()
	now := time.Now().UTC()
	c := &domain.Customer{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hashed,
		Salt:      salt,
		Phone:     phone,
		Verified:  false,
		OTP:       otp,
		OTPExpiry: expiry,
		Cart:      []domain.CartItem{},
		Orders:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	_ = s.Customers.PutCustomer(c)
	_ = s.SMS.SendOTP(context.Background(), otp, c.Phone)
	token, err := s.Auth.Sign(domain.AuthPayload{ID: c.ID, Email: c.Email, Verified: c.Verified})
	if err != nil {
		return "", nil, err
	}
	return token, c, nil
}

func (s *CustomerService) Login(email, password string) (string, *domain.Customer, error) {
	c, ok := s.Customers.GetCustomerByEmail(email)
	if !ok || !ValidatePassword(password, c.Password, c.Salt) {
		return "", nil, ErrUnauthorized("invalid credentials")
	}
	token, err := s.Auth.Sign(domain.AuthPayload{ID: c.ID, Email: c.Email, Verified: c.Verified})
	if err != nil {
		return "", nil, err
	}
	return token, c, nil
}

// VerifyOTP flips the customer to verified when the code matches and
// has not expired, and re-issues a token carrying the new flag.
func (s *CustomerService) VerifyOTP(customerID string, otp int) (string, *domain.Customer, error) {
	c, ok := s.Customers.GetCustomer(customerID)
	if !ok {
		return "", nil, ErrNotFound("customer")
	}
	if c.OTP != otp || time.Now().After(c.OTPExpiry) {
		return "", nil, ErrBadRequest("unable to verify customer")
	}
	c.Verified = true
	c.UpdatedAt = time.Now().UTC()
	_ = s.Customers.PutCustomer(c)
	token, err := s.Auth.Sign(domain.AuthPayload{ID: c.ID, Email: c.Email, Verified: true})
	if err != nil {
		return "", nil, err
	}
	return token, c, nil
}

func (s *CustomerService) RequestOTP(customerID string) error {
	c, ok := s.Customers.GetCustomer(customerID)
	if !ok {
		return ErrNotFound("customer")
	}
	otp, expiry := GenerateOTP()
	c.OTP = otp
	c.OTPExpiry = expiry
	c.UpdatedAt = time.Now().UTC()
	_ = s.Customers.PutCustomer(c)
	if !s.SMS.SendOTP(context.Background(), otp, c.Phone) {
		return ErrBadRequest("failed to verify your phone number")
	}
	return nil
}

func (s *CustomerService) Profile(customerID string) (*domain.Customer, error) {
	c, ok := s.Customers.GetCustomer(customerID)
	if !ok {
		return nil, ErrNotFound("customer")
	}
	return c, nil
}

func (s *CustomerService) EditProfile(customerID, firstName, lastName, address string) (*domain.Customer, error) {
	c, ok := s.Customers.GetCustomer(customerID)
	if !ok {
		return nil, ErrNotFound("customer")
	}
	c.FirstName = firstName
	c.LastName = lastName
	c.Address = address
	c.UpdatedAt = time.Now().UTC()
	_ = s.Customers.PutCustomer(c)
	return c, nil
}

// AddToCart keeps at most one entry per food: a positive unit
// replaces the stored count, a unit of zero or less removes the
// entry, and an unknown food rejects the call.
func (s *CustomerService) AddToCart(customerID, foodID string, unit int) ([]domain.CartItem, error) {
	c, ok := s.Customers.GetCustomer(customerID)
	if !ok {
		return nil, ErrNotFound("customer")
	}
	food, ok := s.Foods.GetFood(foodID)
	if !ok {
		return nil, ErrNotFound("food")
	}
	idx := -1
	for i, item := range c.Cart {
		if item.Food.ID == foodID {
			idx = i
			break
		}
	}
	switch {
	case idx >= 0 && unit > 0:
		c.Cart[idx] = domain.CartItem{Food: *food, Unit: unit}
	case idx >= 0:
		c.Cart = append(c.Cart[:idx], c.Cart[idx+1:]...)
	case unit > 0:
		c.Cart = append(c.Cart, domain.CartItem{Food: *food, Unit: unit})
	}
	c.UpdatedAt = time.Now().UTC()
	_ = s.Customers.PutCustomer(c)
	return c.Cart, nil
}

func (s *CustomerService) GetCart(customerID string) ([]domain.CartItem, error) {
	c, ok := s.Customers.GetCustomer(customerID)
	if !ok {
		return nil, ErrNotFound("customer")
	}
	return c.Cart, nil
}

func (s *CustomerService) DeleteCart(customerID string) (*domain.Customer, error) {
	c, ok := s.Customers.GetCustomer(customerID)
	if !ok {
		return nil, ErrNotFound("customer")
	}
	c.Cart = []domain.CartItem{}
	c.UpdatedAt = time.Now().UTC()
	_ = s.Customers.PutCustomer(c)
	return c, nil
}
