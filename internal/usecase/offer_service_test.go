package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"food-order-backend/internal/domain"
	"food-order-backend/internal/infrastructure/repo"
)

func newOfferService() (*OfferService, *repo.MemoryOfferRepo, *repo.MemoryVandorRepo) {
	offers := repo.NewMemoryOfferRepo()
	vandors := repo.NewMemoryVandorRepo()
	return &OfferService{Offers: offers, Vandors: vandors}, offers, vandors
}

func TestVerifyOffer(t *testing.T) {
	svc, offers, _ := newOfferService()
	now := time.Now()

	// inactive is invalid even inside a wide-open validity window
	_ = offers.PutOffer(&domain.Offer{
		ID:            "off-1",
		IsActive:      false,
		StartValidity: now.Add(-24 * time.Hour),
		EndValidity:   now.Add(24 * time.Hour),
	})
	_, err := svc.VerifyOffer("off-1")
	require.Error(t, err)

	// active is valid even outside the window; the dates are stored
	// but not consulted
	_ = offers.PutOffer(&domain.Offer{
		ID:            "off-2",
		IsActive:      true,
		StartValidity: now.Add(-48 * time.Hour),
		EndValidity:   now.Add(-24 * time.Hour),
	})
	offer, err := svc.VerifyOffer("off-2")
	require.NoError(t, err)
	require.Equal(t, "off-2", offer.ID)

	_, err = svc.VerifyOffer("missing")
	require.Error(t, err)
}

func TestAddAndEditOffer(t *testing.T) {
	svc, _, vandors := newOfferService()
	_ = vandors.PutVandor(&domain.Vandor{ID: "v1"})

	in := OfferInput{
		Title:       "50% off",
		OfferType:   domain.OfferVandor,
		OfferAmount: 50,
		Pincode:     "440001",
		IsActive:    true,
	}
	offer, err := svc.AddOffer("v1", in)
	require.NoError(t, err)
	require.Equal(t, []string{"v1"}, offer.Vandors)

	in.Title = "40% off"
	in.IsActive = false
	edited, err := svc.EditOffer("v1", offer.ID, in)
	require.NoError(t, err)
	require.Equal(t, "40% off", edited.Title)
	require.False(t, edited.IsActive)

	_, err = svc.AddOffer("ghost-vendor", in)
	require.Error(t, err)
}

func TestGetOffersScoping(t *testing.T) {
	svc, offers, vandors := newOfferService()
	_ = vandors.PutVandor(&domain.Vandor{ID: "v1"})
	_ = offers.PutOffer(&domain.Offer{ID: "mine", OfferType: domain.OfferVandor, Vandors: []string{"v1"}})
	_ = offers.PutOffer(&domain.Offer{ID: "other", OfferType: domain.OfferVandor, Vandors: []string{"v2"}})
	_ = offers.PutOffer(&domain.Offer{ID: "store-wide", OfferType: domain.OfferGeneric})

	got := svc.GetOffers("v1")
	ids := map[string]bool{}
	for _, o := range got {
		ids[o.ID] = true
	}
	require.True(t, ids["mine"])
	require.True(t, ids["store-wide"])
	require.False(t, ids["other"])
}
