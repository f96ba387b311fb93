package usecase

import (
	"time"

	"github.com/google/uuid"

	"food-order-backend/internal/domain"
)

type VandorRepo interface {
	PutVandor(*domain.Vandor) error
	GetVandor(id string) (*domain.Vandor, bool)
	GetVandorByEmail(email string) (*domain.Vandor, bool)
	ListVandors() []domain.Vandor
}

type CreateVandorInput struct {
	Name      string   `json:"name" validate:"required"`
	OwnerName string   `json:"ownerName" validate:"required"`
	FoodType  []string `json:"foodType"`
	Pincode   string   `json:"pincode" validate:"required,len=6"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6"`
}

// CreateFoodInput arrives as multipart form fields alongside the
// image uploads.
type CreateFoodInput struct {
	Name        string  `json:"name" form:"name" validate:"required"`
	Description string  `json:"description" form:"description" validate:"required"`
	Category    string  `json:"category" form:"category"`
	FoodType    string  `json:"foodType" form:"foodType" validate:"required"`
	ReadyTime   int     `json:"readyTime" form:"readyTime"`
	Price       float64 `json:"price" form:"price" validate:"gte=0"`
}

type CatalogService struct {
	Vandors VandorRepo
	Foods   FoodRepo
	Auth    *AuthService
}

func (s *CatalogService) CreateVandor(in CreateVandorInput) (*domain.Vandor, error) {
	if _, exists := s.Vandors.GetVandorByEmail(in.Email); exists {
		return nil, ErrConflict("vandor exists with this email")
	}
	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}
	hashed, err := HashPassword(in.Password, salt)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	v := &domain.Vandor{
		ID:               uuid.NewString(),
		Name:             in.Name,
		OwnerName:        in.OwnerName,
		FoodType:         in.FoodType,
		Pincode:          in.Pincode,
		Address:          in.Address,
		Phone:            in.Phone,
		Email:            in.Email,
		Password:         hashed,
		Salt:             salt,
		ServiceAvailable: false,
		CoverImages:      []string{},
		Rating:           0,
		Foods:            []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	_ = s.Vandors.PutVandor(v)
	return v, nil
}

func (s *CatalogService) ListVandors() []domain.Vandor {
	return s.Vandors.ListVandors()
}

func (s *CatalogService) GetVandor(id string) (*domain.Vandor, error) {
	v, ok := s.Vandors.GetVandor(id)
	if !ok {
		return nil, ErrNotFound("vandor")
	}
	return v, nil
}

func (s *CatalogService) Login(email, password string) (string, *domain.Vandor, error) {
	v, ok := s.Vandors.GetVandorByEmail(email)
	if !ok || !ValidatePassword(password, v.Password, v.Salt) {
		return "", nil, ErrUnauthorized("invalid credentials")
	}
	token, err := s.Auth.Sign(domain.AuthPayload{ID: v.ID, Email: v.Email, Verified: true})
	if err != nil {
		return "", nil, err
	}
	return token, v, nil
}

func (s *CatalogService) UpdateProfile(vendorID, name, phone, address string, foodType []string) (*domain.Vandor, error) {
	v, ok := s.Vandors.GetVandor(vendorID)
	if !ok {
		return nil, ErrNotFound("vandor")
	}
	v.Name = name
	v.Phone = phone
	v.Address = address
	v.FoodType = foodType
	v.UpdatedAt = time.Now().UTC()
	_ = s.Vandors.PutVandor(v)
	return v, nil
}

// ToggleService flips availability; a supplied location also moves
// the vendor.
func (s *CatalogService) ToggleService(vendorID string, lat, lng float64) (*domain.Vandor, error) {
	v, ok := s.Vandors.GetVandor(vendorID)
	if !ok {
		return nil, ErrNotFound("vandor")
	}
	v.ServiceAvailable = !v.ServiceAvailable
	if lat != 0 && lng != 0 {
		v.Lat = lat
		v.Lng = lng
	}
	v.UpdatedAt = time.Now().UTC()
	_ = s.Vandors.PutVandor(v)
	return v, nil
}

func (s *CatalogService) AddCoverImages(vendorID string, images []string) (*domain.Vandor, error) {
	v, ok := s.Vandors.GetVandor(vendorID)
	if !ok {
		return nil, ErrNotFound("vandor")
	}
	v.CoverImages = append(v.CoverImages, images...)
	v.UpdatedAt = time.Now().UTC()
	_ = s.Vandors.PutVandor(v)
	return v, nil
}

// AddFood creates the food and appends its reference to the vendor's
// denormalized food list. The two writes are best effort; nothing
// rolls the first back if the second is lost.
func (s *CatalogService) AddFood(vendorID string, in CreateFoodInput, images []string) (*domain.Vandor, error) {
	v, ok := s.Vandors.GetVandor(vendorID)
	if !ok {
		return nil, ErrNotFound("vandor")
	}
	now := time.Now().UTC()
	food := &domain.Food{
		ID:          uuid.NewString(),
		VendorID:    v.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		FoodType:    in.FoodType,
		ReadyTime:   in.ReadyTime,
		Price:       in.Price,
		Rating:      0,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_ = s.Foods.PutFood(food)
	v.Foods = append(v.Foods, food.ID)
	v.UpdatedAt = now
	_ = s.Vandors.PutVandor(v)
	return v, nil
}

func (s *CatalogService) GetFoods(vendorID string) []domain.Food {
	return s.Foods.ListFoodsByVendor(vendorID)
}
