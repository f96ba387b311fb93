package domain

import "time"

type CartItem struct {
	Food Food `json:"food"`
	Unit int  `json:"unit"`
}

type Customer struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Salt      string     `json:"-"`
	Phone     string     `json:"phone"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Address   string     `json:"address"`
	Verified  bool       `json:"verified"`
	OTP       int        `json:"-"`
	OTPExpiry time.Time  `json:"-"`
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lng"`
	Cart      []CartItem `json:"cart"`
	Orders    []string   `json:"orders"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
