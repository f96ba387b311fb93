package usecase

import (
	"time"

	"github.com/google/uuid"

	"food-order-backend/internal/domain"
)

type OfferRepo interface {
	PutOffer(*domain.Offer) error
	GetOffer(id string) (*domain.Offer, bool)
	ListOffers() []domain.Offer
}

type OfferInput struct {
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	OfferType     string    `json:"offerType" validate:"required"`
	OfferAmount   float64   `json:"offerAmount" validate:"gte=0"`
	Pincode       string    `json:"pincode" validate:"required"`
	Promocode     string    `json:"promocode"`
	PromoType     string    `json:"promoType"`
	StartValidity time.Time `json:"startValidity"`
	EndValidity   time.Time `json:"endValidity"`
	Bank          []string  `json:"bank"`
	Bins          []int     `json:"bins"`
	MinValue      float64   `json:"minValue"`
	IsActive      bool      `json:"isActive"`
}

type OfferService struct {
	Offers  OfferRepo
	Vandors VandorRepo
}

// VerifyOffer reports an offer usable iff it exists and is active.
// The validity window is deliberately not consulted; the source
// system never checked it and the call's behavior is pinned until a
// product decision says otherwise.
func (s *OfferService) VerifyOffer(id string) (*domain.Offer, error) {
	offer, ok := s.Offers.GetOffer(id)
	if !ok || !offer.IsActive {
		return nil, ErrBadRequest("offer is not valid")
	}
	return offer, nil
}

func (s *OfferService) AddOffer(vendorID string, in OfferInput) (*domain.Offer, error) {
	if _, ok := s.Vandors.GetVandor(vendorID); !ok {
		return nil, ErrNotFound("vandor")
	}
	now := time.Now().UTC()
	offer := &domain.Offer{
		ID:            uuid.NewString(),
		OfferType:     in.OfferType,
		Vandors:       []string{vendorID},
		Title:         in.Title,
		Description:   in.Description,
		MinValue:      in.MinValue,
		OfferAmount:   in.OfferAmount,
		StartValidity: in.StartValidity,
		EndValidity:   in.EndValidity,
		Promocode:     in.Promocode,
		PromoType:     in.PromoType,
		Bank:          in.Bank,
		Bins:          in.Bins,
		Pincode:       in.Pincode,
		IsActive:      in.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	_ = s.Offers.PutOffer(offer)
	return offer, nil
}

func (s *OfferService) EditOffer(vendorID, offerID string, in OfferInput) (*domain.Offer, error) {
	offer, ok := s.Offers.GetOffer(offerID)
	if !ok {
		return nil, ErrNotFound("offer")
	}
	if _, ok := s.Vandors.GetVandor(vendorID); !ok {
		return nil, ErrNotFound("vandor")
	}
	offer.Title = in.Title
	offer.Description = in.Description
	offer.OfferType = in.OfferType
	offer.OfferAmount = in.OfferAmount
	offer.Pincode = in.Pincode
	offer.PromoType = in.PromoType
	offer.StartValidity = in.StartValidity
	offer.EndValidity = in.EndValidity
	offer.Bank = in.Bank
	offer.IsActive = in.IsActive
	offer.MinValue = in.MinValue
	offer.UpdatedAt = time.Now().UTC()
	_ = s.Offers.PutOffer(offer)
	return offer, nil
}

// GetOffers lists the offers a vendor may work with: the ones scoped
// to it plus every store-wide GENERIC offer.
func (s *OfferService) GetOffers(vendorID string) []domain.Offer {
	var current []domain.Offer
	for _, offer := range s.Offers.ListOffers() {
		scoped := false
		for _, vid := range offer.Vandors {
			if vid == vendorID {
				scoped = true
				break
			}
		}
		if scoped || offer.OfferType == domain.OfferGeneric {
			current = append(current, offer)
		}
	}
	return current
}
