package domain

import "time"

// Vandor keeps the source system's spelling on the wire; it names a
// restaurant account that owns foods and receives orders.
type Vandor struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	OwnerName        string    `json:"ownerName"`
	FoodType         []string  `json:"foodType"`
	Pincode          string    `json:"pincode"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Password         string    `json:"-"`
	Salt             string    `json:"-"`
	ServiceAvailable bool      `json:"serviceAvailable"`
	CoverImages      []string  `json:"coverImages"`
	Rating           float64   `json:"rating"`
	Foods            []string  `json:"foods"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
