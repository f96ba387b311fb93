package domain

import "time"

const (
	OfferGeneric = "GENERIC"
	OfferVandor  = "VANDOR"
)

type Offer struct {
	ID            string    `json:"id"`
	OfferType     string    `json:"offerType"`
	Vandors       []string  `json:"vandors"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	MinValue      float64   `json:"minValue"`
	OfferAmount   float64   `json:"offerAmount"`
	StartValidity time.Time `json:"startValidity"`
	EndValidity   time.Time `json:"endValidity"`
	Promocode     string    `json:"promocode"`
	PromoType     string    `json:"promoType"`
	Bank          []string  `json:"bank"`
	Bins          []int     `json:"bins"`
	Pincode       string    `json:"pincode"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
