package usecase

import (
	"time"

	"github.com/google/uuid"

	"food-order-backend/internal/domain"
)

type CreateDeliveryUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Address   string `json:"address"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Pincode   string `json:"pincode" validate:"required,len=6"`
}

type DeliveryService struct {
	Deliveries DeliveryRepo
	Auth       *AuthService
}

func (s *DeliveryService) SignUp(in CreateDeliveryUserInput) (string, *domain.DeliveryUser, error) {
	if _, exists := s.Deliveries.GetDeliveryUserByEmail(in.Email); exists {
		return "", nil, ErrConflict("a delivery user exists with the provided email")
	}
	salt, err := GenerateSalt()
	if err != nil {
		return "", nil, err
	}
	hashed, err := HashPassword(in.Password, salt)
	if err != nil {
		return "", nil, err
	}
	now := time.Now().UTC()
	d := &domain.DeliveryUser{
		ID:        uuid.NewString(),
		Email:     in.Email,
		Password:  hashed,
		Salt:      salt,
		Phone:     in.Phone,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		Pincode:   in.Pincode,
		Verified:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_ = s.Deliveries.PutDeliveryUser(d)
	token, err := s.Auth.Sign(domain.AuthPayload{ID: d.ID, Email: d.Email, Verified: d.Verified})
	if err != nil {
		return "", nil, err
	}
	return token, d, nil
}

func (s *DeliveryService) Login(email, password string) (string, *domain.DeliveryUser, error) {
	d, ok := s.Deliveries.GetDeliveryUserByEmail(email)
	if !ok || !ValidatePassword(password, d.Password, d.Salt) {
		return "", nil, ErrUnauthorized("invalid credentials")
	}
	token, err := s.Auth.Sign(domain.AuthPayload{ID: d.ID, Email: d.Email, Verified: d.Verified})
	if err != nil {
		return "", nil, err
	}
	return token, d, nil
}

func (s *DeliveryService) Profile(id string) (*domain.DeliveryUser, error) {
	d, ok := s.Deliveries.GetDeliveryUser(id)
	if !ok {
		return nil, ErrNotFound("delivery user")
	}
	return d, nil
}

func (s *DeliveryService) EditProfile(id, firstName, lastName, address string) (*domain.DeliveryUser, error) {
	d, ok := s.Deliveries.GetDeliveryUser(id)
	if !ok {
		return nil, ErrNotFound("delivery user")
	}
	d.FirstName = firstName
	d.LastName = lastName
	d.Address = address
	d.UpdatedAt = time.Now().UTC()
	_ = s.Deliveries.PutDeliveryUser(d)
	return d, nil
}

// ChangeStatus toggles courier availability; a supplied location also
// updates the courier's position.
func (s *DeliveryService) ChangeStatus(id string, lat, lng float64) (*domain.DeliveryUser, error) {
	d, ok := s.Deliveries.GetDeliveryUser(id)
	if !ok {
		return nil, ErrNotFound("delivery user")
	}
	if lat != 0 && lng != 0 {
		d.Lat = lat
		d.Lng = lng
	}
	d.IsAvailable = !d.IsAvailable
	d.UpdatedAt = time.Now().UTC()
	_ = s.Deliveries.PutDeliveryUser(d)
	return d, nil
}
