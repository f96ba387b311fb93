package repo

import (
	"sync"

	"food-order-backend/internal/domain"
)

type MemoryCustomerRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.Customer
}

func NewMemoryCustomerRepo() *MemoryCustomerRepo {
	return &MemoryCustomerRepo{m: make(map[string]*domain.Customer)}
}

func (r *MemoryCustomerRepo) PutCustomer(c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[c.ID] = c
	return nil
}

func (r *MemoryCustomerRepo) GetCustomer(id string) (*domain.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.m[id]
	return c, ok
}

func (r *MemoryCustomerRepo) GetCustomerByEmail(email string) (*domain.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.m {
		if c.Email == email {
			return c, true
		}
	}
	return nil, false
}

type MemoryVandorRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.Vandor
}

func NewMemoryVandorRepo() *MemoryVandorRepo {
	return &MemoryVandorRepo{m: make(map[string]*domain.Vandor)}
}

func (r *MemoryVandorRepo) PutVandor(v *domain.Vandor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[v.ID] = v
	return nil
}

func (r *MemoryVandorRepo) GetVandor(id string) (*domain.Vandor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[id]
	return v, ok
}

func (r *MemoryVandorRepo) GetVandorByEmail(email string) (*domain.Vandor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.m {
		if v.Email == email {
			return v, true
		}
	}
	return nil, false
}

func (r *MemoryVandorRepo) ListVandors() []domain.Vandor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Vandor, 0, len(r.m))
	for _, v := range r.m {
		out = append(out, *v)
	}
	return out
}

type MemoryFoodRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.Food
}

func NewMemoryFoodRepo() *MemoryFoodRepo {
	return &MemoryFoodRepo{m: make(map[string]*domain.Food)}
}

func (r *MemoryFoodRepo) PutFood(f *domain.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[f.ID] = f
	return nil
}

func (r *MemoryFoodRepo) GetFood(id string) (*domain.Food, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.m[id]
	return f, ok
}

func (r *MemoryFoodRepo) ListFoodsByVendor(vendorID string) []domain.Food {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Food
	for _, f := range r.m {
		if f.VendorID == vendorID {
			out = append(out, *f)
		}
	}
	return out
}

// ListFoodsByIDs returns each matching food once, no matter how many
// times its id appears in the request.
func (r *MemoryFoodRepo) ListFoodsByIDs(ids []string) []domain.Food {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool, len(ids))
	var out []domain.Food
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if f, ok := r.m[id]; ok {
			out = append(out, *f)
		}
	}
	return out
}

type MemoryOrderRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.Order
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{m: make(map[string]*domain.Order)}
}

func (r *MemoryOrderRepo) PutOrder(o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[o.ID] = o
	return nil
}

func (r *MemoryOrderRepo) GetOrder(id string) (*domain.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.m[id]
	return o, ok
}

func (r *MemoryOrderRepo) ListOrdersByIDs(ids []string) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Order
	for _, id := range ids {
		if o, ok := r.m[id]; ok {
			out = append(out, *o)
		}
	}
	return out
}

func (r *MemoryOrderRepo) ListOrdersByVendor(vendorID string) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Order
	for _, o := range r.m {
		if o.VendorID == vendorID {
			out = append(out, *o)
		}
	}
	return out
}

type MemoryOfferRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.Offer
}

func NewMemoryOfferRepo() *MemoryOfferRepo {
	return &MemoryOfferRepo{m: make(map[string]*domain.Offer)}
}

func (r *MemoryOfferRepo) PutOffer(o *domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[o.ID] = o
	return nil
}

func (r *MemoryOfferRepo) GetOffer(id string) (*domain.Offer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.m[id]
	return o, ok
}

func (r *MemoryOfferRepo) ListOffers() []domain.Offer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Offer, 0, len(r.m))
	for _, o := range r.m {
		out = append(out, *o)
	}
	return out
}

type MemoryTransactionRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.Transaction
}

func NewMemoryTransactionRepo() *MemoryTransactionRepo {
	return &MemoryTransactionRepo{m: make(map[string]*domain.Transaction)}
}

func (r *MemoryTransactionRepo) PutTransaction(t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[t.ID] = t
	return nil
}

func (r *MemoryTransactionRepo) GetTransaction(id string) (*domain.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.m[id]
	return t, ok
}

func (r *MemoryTransactionRepo) ListTransactions() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, 0, len(r.m))
	for _, t := range r.m {
		out = append(out, *t)
	}
	return out
}

type MemoryDeliveryRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.DeliveryUser
}

func NewMemoryDeliveryRepo() *MemoryDeliveryRepo {
	return &MemoryDeliveryRepo{m: make(map[string]*domain.DeliveryUser)}
}

func (r *MemoryDeliveryRepo) PutDeliveryUser(d *domain.DeliveryUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[d.ID] = d
	return nil
}

func (r *MemoryDeliveryRepo) GetDeliveryUser(id string) (*domain.DeliveryUser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.m[id]
	return d, ok
}

func (r *MemoryDeliveryRepo) GetDeliveryUserByEmail(email string) (*domain.DeliveryUser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.m {
		if d.Email == email {
			return d, true
		}
	}
	return nil, false
}

func (r *MemoryDeliveryRepo) ListDeliveryUsersByPincode(pincode string) []domain.DeliveryUser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.DeliveryUser
	for _, d := range r.m {
		if d.Pincode == pincode {
			out = append(out, *d)
		}
	}
	return out
}
