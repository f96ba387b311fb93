package repo

import (
	"database/sql"
	"encoding/json"

	_ "github.com/lib/pq"

	"food-order-backend/internal/domain"
)

// PostgresRepo keeps one row per document; nested sequences (cart,
// items, images, references) live in JSON TEXT columns the way the
// source system kept them inside one document.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(dsn string) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	r := &PostgresRepo{db: db}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepo) init() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			email TEXT,
			password TEXT,
			salt TEXT,
			phone TEXT,
			first_name TEXT,
			last_name TEXT,
			address TEXT,
			verified BOOLEAN,
			otp INT,
			otp_expiry TIMESTAMPTZ,
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION,
			cart TEXT,
			orders TEXT,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS vandors (
			id TEXT PRIMARY KEY,
			name TEXT,
			owner_name TEXT,
			food_type TEXT,
			pincode TEXT,
			address TEXT,
			phone TEXT,
			email TEXT,
			password TEXT,
			salt TEXT,
			service_available BOOLEAN,
			cover_images TEXT,
			rating DOUBLE PRECISION,
			foods TEXT,
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS foods (
			id TEXT PRIMARY KEY,
			vendor_id TEXT,
			name TEXT,
			description TEXT,
			category TEXT,
			food_type TEXT,
			ready_time INT,
			price DOUBLE PRECISION,
			rating DOUBLE PRECISION,
			images TEXT,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			order_id TEXT,
			vendor_id TEXT,
			items TEXT,
			total_amount DOUBLE PRECISION,
			paid_amount DOUBLE PRECISION,
			order_date TIMESTAMPTZ,
			order_status TEXT,
			remarks TEXT,
			delivery_id TEXT,
			ready_time INT,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS offers (
			id TEXT PRIMARY KEY,
			offer_type TEXT,
			vandors TEXT,
			title TEXT,
			description TEXT,
			min_value DOUBLE PRECISION,
			offer_amount DOUBLE PRECISION,
			start_validity TIMESTAMPTZ,
			end_validity TIMESTAMPTZ,
			promocode TEXT,
			promo_type TEXT,
			bank TEXT,
			bins TEXT,
			pincode TEXT,
			is_active BOOLEAN,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			customer_id TEXT,
			vendor_id TEXT,
			order_id TEXT,
			order_value DOUBLE PRECISION,
			offer_used TEXT,
			status TEXT,
			payment_mode TEXT,
			payment_response TEXT,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS delivery_users (
			id TEXT PRIMARY KEY,
			email TEXT,
			password TEXT,
			salt TEXT,
			phone TEXT,
			first_name TEXT,
			last_name TEXT,
			address TEXT,
			pincode TEXT,
			verified BOOLEAN,
			is_available BOOLEAN,
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepo) PutCustomer(c *domain.Customer) error {
	cart, _ := json.Marshal(c.Cart)
	orders, _ := json.Marshal(c.Orders)
	_, err := r.db.Exec(`INSERT INTO customers (id,email,password,salt,phone,first_name,last_name,address,verified,otp,otp_expiry,lat,lng,cart,orders,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET email=$2,password=$3,salt=$4,phone=$5,first_name=$6,last_name=$7,address=$8,verified=$9,otp=$10,otp_expiry=$11,lat=$12,lng=$13,cart=$14,orders=$15,updated_at=$17`,
		c.ID, c.Email, c.Password, c.Salt, c.Phone, c.FirstName, c.LastName, c.Address, c.Verified, c.OTP, c.OTPExpiry, c.Lat, c.Lng, string(cart), string(orders), c.CreatedAt, c.UpdatedAt)
	return err
}

func scanCustomer(scan func(dest ...any) error) (*domain.Customer, bool) {
	var c domain.Customer
	var cart, orders string
	err := scan(&c.ID, &c.Email, &c.Password, &c.Salt, &c.Phone, &c.FirstName, &c.LastName, &c.Address, &c.Verified, &c.OTP, &c.OTPExpiry, &c.Lat, &c.Lng, &cart, &orders, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, false
	}
	_ = json.Unmarshal([]byte(cart), &c.Cart)
	_ = json.Unmarshal([]byte(orders), &c.Orders)
	if c.Cart == nil {
		c.Cart = []domain.CartItem{}
	}
	if c.Orders == nil {
		c.Orders = []string{}
	}
	return &c, true
}

const customerCols = `id,email,password,salt,phone,first_name,last_name,address,verified,otp,otp_expiry,lat,lng,cart,orders,created_at,updated_at`

func (r *PostgresRepo) GetCustomer(id string) (*domain.Customer, bool) {
	return scanCustomer(r.db.QueryRow(`SELECT `+customerCols+` FROM customers WHERE id=$1`, id).Scan)
}

func (r *PostgresRepo) GetCustomerByEmail(email string) (*domain.Customer, bool) {
	return scanCustomer(r.db.QueryRow(`SELECT `+customerCols+` FROM customers WHERE email=$1`, email).Scan)
}

func (r *PostgresRepo) PutVandor(v *domain.Vandor) error {
	foodType, _ := json.Marshal(v.FoodType)
	covers, _ := json.Marshal(v.CoverImages)
	foods, _ := json.Marshal(v.Foods)
	_, err := r.db.Exec(`INSERT INTO vandors (id,name,owner_name,food_type,pincode,address,phone,email,password,salt,service_available,cover_images,rating,foods,lat,lng,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		ON CONFLICT (id) DO UPDATE SET name=$2,owner_name=$3,food_type=$4,pincode=$5,address=$6,phone=$7,email=$8,password=$9,salt=$10,service_available=$11,cover_images=$12,rating=$13,foods=$14,lat=$15,lng=$16,updated_at=$18`,
		v.ID, v.Name, v.OwnerName, string(foodType), v.Pincode, v.Address, v.Phone, v.Email, v.Password, v.Salt, v.ServiceAvailable, string(covers), v.Rating, string(foods), v.Lat, v.Lng, v.CreatedAt, v.UpdatedAt)
	return err
}

const vandorCols = `id,name,owner_name,food_type,pincode,address,phone,email,password,salt,service_available,cover_images,rating,foods,lat,lng,created_at,updated_at`

func scanVandor(scan func(dest ...any) error) (*domain.Vandor, bool) {
	var v domain.Vandor
	var foodType, covers, foods string
	err := scan(&v.ID, &v.Name, &v.OwnerName, &foodType, &v.Pincode, &v.Address, &v.Phone, &v.Email, &v.Password, &v.Salt, &v.ServiceAvailable, &covers, &v.Rating, &foods, &v.Lat, &v.Lng, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, false
	}
	_ = json.Unmarshal([]byte(foodType), &v.FoodType)
	_ = json.Unmarshal([]byte(covers), &v.CoverImages)
	_ = json.Unmarshal([]byte(foods), &v.Foods)
	return &v, true
}

func (r *PostgresRepo) GetVandor(id string) (*domain.Vandor, bool) {
	return scanVandor(r.db.QueryRow(`SELECT `+vandorCols+` FROM vandors WHERE id=$1`, id).Scan)
}

func (r *PostgresRepo) GetVandorByEmail(email string) (*domain.Vandor, bool) {
	return scanVandor(r.db.QueryRow(`SELECT `+vandorCols+` FROM vandors WHERE email=$1`, email).Scan)
}

func (r *PostgresRepo) ListVandors() []domain.Vandor {
	rows, err := r.db.Query(`SELECT ` + vandorCols + ` FROM vandors ORDER BY created_at DESC`)
	if err != nil {
		return nil
	}
	defer rows.Close()
	var out []domain.Vandor
	for rows.Next() {
		if v, ok := scanVandor(rows.Scan); ok {
			out = append(out, *v)
		}
	}
	return out
}

func (r *PostgresRepo) PutFood(f *domain.Food) error {
	images, _ := json.Marshal(f.Images)
	_, err := r.db.Exec(`INSERT INTO foods (id,vendor_id,name,description,category,food_type,ready_time,price,rating,images,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET vendor_id=$2,name=$3,description=$4,category=$5,food_type=$6,ready_time=$7,price=$8,rating=$9,images=$10,updated_at=$12`,
		f.ID, f.VendorID, f.Name, f.Description, f.Category, f.FoodType, f.ReadyTime, f.Price, f.Rating, string(images), f.CreatedAt, f.UpdatedAt)
	return err
}

const foodCols = `id,vendor_id,name,description,category,food_type,ready_time,price,rating,images,created_at,updated_at`

func scanFood(scan func(dest ...any) error) (*domain.Food, bool) {
	var f domain.Food
	var images string
	err := scan(&f.ID, &f.VendorID, &f.Name, &f.Description, &f.Category, &f.FoodType, &f.ReadyTime, &f.Price, &f.Rating, &images, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, false
	}
	_ = json.Unmarshal([]byte(images), &f.Images)
	return &f, true
}

func (r *PostgresRepo) GetFood(id string) (*domain.Food, bool) {
	return scanFood(r.db.QueryRow(`SELECT `+foodCols+` FROM foods WHERE id=$1`, id).Scan)
}

func (r *PostgresRepo) ListFoodsByVendor(vendorID string) []domain.Food {
	rows, err := r.db.Query(`SELECT `+foodCols+` FROM foods WHERE vendor_id=$1 ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil
	}
	defer rows.Close()
	var out []domain.Food
	for rows.Next() {
		if f, ok := scanFood(rows.Scan); ok {
			out = append(out, *f)
		}
	}
	return out
}

func (r *PostgresRepo) ListFoodsByIDs(ids []string) []domain.Food {
	seen := make(map[string]bool, len(ids))
	var out []domain.Food
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if f, ok := r.GetFood(id); ok {
			out = append(out, *f)
		}
	}
	return out
}

func (r *PostgresRepo) PutOrder(o *domain.Order) error {
	items, _ := json.Marshal(o.Items)
	_, err := r.db.Exec(`INSERT INTO orders (id,order_id,vendor_id,items,total_amount,paid_amount,order_date,order_status,remarks,delivery_id,ready_time,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (id) DO UPDATE SET order_id=$2,vendor_id=$3,items=$4,total_amount=$5,paid_amount=$6,order_date=$7,order_status=$8,remarks=$9,delivery_id=$10,ready_time=$11,updated_at=$13`,
		o.ID, o.OrderID, o.VendorID, string(items), o.TotalAmount, o.PaidAmount, o.OrderDate, string(o.OrderStatus), o.Remarks, o.DeliveryID, o.ReadyTime, o.CreatedAt, o.UpdatedAt)
	return err
}

const orderCols = `id,order_id,vendor_id,items,total_amount,paid_amount,order_date,order_status,remarks,delivery_id,ready_time,created_at,updated_at`

func scanOrder(scan func(dest ...any) error) (*domain.Order, bool) {
	var o domain.Order
	var items string
	err := scan(&o.ID, &o.OrderID, &o.VendorID, &items, &o.TotalAmount, &o.PaidAmount, &o.OrderDate, (*string)(&o.OrderStatus), &o.Remarks, &o.DeliveryID, &o.ReadyTime, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, false
	}
	_ = json.Unmarshal([]byte(items), &o.Items)
	return &o, true
}

func (r *PostgresRepo) GetOrder(id string) (*domain.Order, bool) {
	return scanOrder(r.db.QueryRow(`SELECT `+orderCols+` FROM orders WHERE id=$1`, id).Scan)
}

func (r *PostgresRepo) ListOrdersByIDs(ids []string) []domain.Order {
	var out []domain.Order
	for _, id := range ids {
		if o, ok := r.GetOrder(id); ok {
			out = append(out, *o)
		}
	}
	return out
}

func (r *PostgresRepo) ListOrdersByVendor(vendorID string) []domain.Order {
	rows, err := r.db.Query(`SELECT `+orderCols+` FROM orders WHERE vendor_id=$1 ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil
	}
	defer rows.Close()
	var out []domain.Order
	for rows.Next() {
		if o, ok := scanOrder(rows.Scan); ok {
			out = append(out, *o)
		}
	}
	return out
}

func (r *PostgresRepo) PutOffer(o *domain.Offer) error {
	vandors, _ := json.Marshal(o.Vandors)
	bank, _ := json.Marshal(o.Bank)
	bins, _ := json.Marshal(o.Bins)
	_, err := r.db.Exec(`INSERT INTO offers (id,offer_type,vandors,title,description,min_value,offer_amount,start_validity,end_validity,promocode,promo_type,bank,bins,pincode,is_active,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET offer_type=$2,vandors=$3,title=$4,description=$5,min_value=$6,offer_amount=$7,start_validity=$8,end_validity=$9,promocode=$10,promo_type=$11,bank=$12,bins=$13,pincode=$14,is_active=$15,updated_at=$17`,
		o.ID, o.OfferType, string(vandors), o.Title, o.Description, o.MinValue, o.OfferAmount, o.StartValidity, o.EndValidity, o.Promocode, o.PromoType, string(bank), string(bins), o.Pincode, o.IsActive, o.CreatedAt, o.UpdatedAt)
	return err
}

const offerCols = `id,offer_type,vandors,title,description,min_value,offer_amount,start_validity,end_validity,promocode,promo_type,bank,bins,pincode,is_active,created_at,updated_at`

func scanOffer(scan func(dest ...any) error) (*domain.Offer, bool) {
	var o domain.Offer
	var vandors, bank, bins string
	err := scan(&o.ID, &o.OfferType, &vandors, &o.Title, &o.Description, &o.MinValue, &o.OfferAmount, &o.StartValidity, &o.EndValidity, &o.Promocode, &o.PromoType, &bank, &bins, &o.Pincode, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, false
	}
	_ = json.Unmarshal([]byte(vandors), &o.Vandors)
	_ = json.Unmarshal([]byte(bank), &o.Bank)
	_ = json.Unmarshal([]byte(bins), &o.Bins)
	return &o, true
}

func (r *PostgresRepo) GetOffer(id string) (*domain.Offer, bool) {
	return scanOffer(r.db.QueryRow(`SELECT `+offerCols+` FROM offers WHERE id=$1`, id).Scan)
}

func (r *PostgresRepo) ListOffers() []domain.Offer {
	rows, err := r.db.Query(`SELECT ` + offerCols + ` FROM offers ORDER BY created_at DESC`)
	if err != nil {
		return nil
	}
	defer rows.Close()
	var out []domain.Offer
	for rows.Next() {
		if o, ok := scanOffer(rows.Scan); ok {
			out = append(out, *o)
		}
	}
	return out
}

func (r *PostgresRepo) PutTransaction(t *domain.Transaction) error {
	_, err := r.db.Exec(`INSERT INTO transactions (id,customer_id,vendor_id,order_id,order_value,offer_used,status,payment_mode,payment_response,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET customer_id=$2,vendor_id=$3,order_id=$4,order_value=$5,offer_used=$6,status=$7,payment_mode=$8,payment_response=$9,updated_at=$11`,
		t.ID, t.CustomerID, t.VendorID, t.OrderID, t.OrderValue, t.OfferUsed, string(t.Status), t.PaymentMode, t.PaymentResponse, t.CreatedAt, t.UpdatedAt)
	return err
}

const txnCols = `id,customer_id,vendor_id,order_id,order_value,offer_used,status,payment_mode,payment_response,created_at,updated_at`

func scanTransaction(scan func(dest ...any) error) (*domain.Transaction, bool) {
	var t domain.Transaction
	err := scan(&t.ID, &t.CustomerID, &t.VendorID, &t.OrderID, &t.OrderValue, &t.OfferUsed, (*string)(&t.Status), &t.PaymentMode, &t.PaymentResponse, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, false
	}
	return &t, true
}

func (r *PostgresRepo) GetTransaction(id string) (*domain.Transaction, bool) {
	return scanTransaction(r.db.QueryRow(`SELECT `+txnCols+` FROM transactions WHERE id=$1`, id).Scan)
}

func (r *PostgresRepo) ListTransactions() []domain.Transaction {
	rows, err := r.db.Query(`SELECT ` + txnCols + ` FROM transactions ORDER BY created_at DESC`)
	if err != nil {
		return nil
	}
	defer rows.Close()
	var out []domain.Transaction
	for rows.Next() {
		if t, ok := scanTransaction(rows.Scan); ok {
			out = append(out, *t)
		}
	}
	return out
}

func (r *PostgresRepo) PutDeliveryUser(d *domain.DeliveryUser) error {
	_, err := r.db.Exec(`INSERT INTO delivery_users (id,email,password,salt,phone,first_name,last_name,address,pincode,verified,is_available,lat,lng,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET email=$2,password=$3,salt=$4,phone=$5,first_name=$6,last_name=$7,address=$8,pincode=$9,verified=$10,is_available=$11,lat=$12,lng=$13,updated_at=$15`,
		d.ID, d.Email, d.Password, d.Salt, d.Phone, d.FirstName, d.LastName, d.Address, d.Pincode, d.Verified, d.IsAvailable, d.Lat, d.Lng, d.CreatedAt, d.UpdatedAt)
	return err
}

const deliveryCols = `id,email,password,salt,phone,first_name,last_name,address,pincode,verified,is_available,lat,lng,created_at,updated_at`

func scanDeliveryUser(scan func(dest ...any) error) (*domain.DeliveryUser, bool) {
	var d domain.DeliveryUser
	err := scan(&d.ID, &d.Email, &d.Password, &d.Salt, &d.Phone, &d.FirstName, &d.LastName, &d.Address, &d.Pincode, &d.Verified, &d.IsAvailable, &d.Lat, &d.Lng, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, false
	}
	return &d, true
}

func (r *PostgresRepo) GetDeliveryUser(id string) (*domain.DeliveryUser, bool) {
	return scanDeliveryUser(r.db.QueryRow(`SELECT `+deliveryCols+` FROM delivery_users WHERE id=$1`, id).Scan)
}

func (r *PostgresRepo) GetDeliveryUserByEmail(email string) (*domain.DeliveryUser, bool) {
	return scanDeliveryUser(r.db.QueryRow(`SELECT `+deliveryCols+` FROM delivery_users WHERE email=$1`, email).Scan)
}

func (r *PostgresRepo) ListDeliveryUsersByPincode(pincode string) []domain.DeliveryUser {
	rows, err := r.db.Query(`SELECT `+deliveryCols+` FROM delivery_users WHERE pincode=$1`, pincode)
	if err != nil {
		return nil
	}
	defer rows.Close()
	var out []domain.DeliveryUser
	for rows.Next() {
		if d, ok := scanDeliveryUser(rows.Scan); ok {
			out = append(out, *d)
		}
	}
	return out
}
