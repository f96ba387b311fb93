package domain

import "time"

type DeliveryUser struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Salt        string    `json:"-"`
	Phone       string    `json:"phone"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Address     string    `json:"address"`
	Pincode     string    `json:"pincode"`
	Verified    bool      `json:"verified"`
	IsAvailable bool      `json:"isAvailable"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
