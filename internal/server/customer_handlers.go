package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"food-order-backend/internal/domain"
	"food-order-backend/internal/usecase"
	"food-order-backend/internal/validation"
)

// currentUser fetches the authenticated identity the middleware
// attached. Handlers pass it on explicitly; nothing reads it from a
// mutable request global.
func currentUser(c *gin.Context) (domain.AuthPayload, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return domain.AuthPayload{}, false
	}
	p, ok := v.(domain.AuthPayload)
	return p, ok
}

type createCustomerReq struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=12"`
	Password string `json:"password" validate:"required,min=6,max=12"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=12"`
}

type editProfileReq struct {
	FirstName string `json:"firstName" validate:"required,min=3,max=16"`
	LastName  string `json:"lastName" validate:"required,min=3,max=16"`
	Address   string `json:"address" validate:"required,max=60"`
}

func (s *Server) customerSignUp(c *gin.Context) {
	var req createCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	token, cust, err := s.customers.SignUp(req.Email, req.Phone, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"signature": token, "verified": cust.Verified, "email": cust.Email})
}

func (s *Server) customerLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	token, cust, err := s.customers.Login(req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"signature": token, "verified": cust.Verified, "email": cust.Email})
}

type verifyReq struct {
	OTP string `json:"otp" validate:"required"`
}

func (s *Server) customerVerify(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	otp, err := strconv.Atoi(req.OTP)
	if err != nil {
		s.fail(c, usecase.ErrBadRequest("unable to verify customer"))
		return
	}
	token, cust, err := s.customers.VerifyOTP(user.ID, otp)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"signature": token, "verified": cust.Verified, "email": cust.Email})
}

func (s *Server) requestOTP(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	if err := s.customers.RequestOTP(user.ID); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your registered mobile number"})
}

func (s *Server) customerProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	profile, err := s.customers.Profile(user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) editCustomerProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var req editProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	profile, err := s.customers.EditProfile(user.ID, req.FirstName, req.LastName, req.Address)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type cartItemReq struct {
	ID   string `json:"_id" validate:"required"`
	Unit int    `json:"unit"`
}

func (s *Server) addToCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var req cartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	cart, err := s.customers.AddToCart(user.ID, req.ID, req.Unit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) getCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	cart, err := s.customers.GetCart(user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) deleteCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	profile, err := s.customers.DeleteCart(user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type createOrderReq struct {
	TxnID  string                 `json:"txnId" validate:"required"`
	Amount float64                `json:"amount"`
	Items  []usecase.OrderItemRef `json:"items"`
}

func (s *Server) createOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	order, err := s.orders.CreateOrder(user.ID, req.TxnID, req.Amount, req.Items)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) customerOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	orders, err := s.orders.GetOrders(user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) customerOrderByID(c *gin.Context) {
	order, err := s.orders.GetOrderByID(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) verifyOffer(c *gin.Context) {
	offer, err := s.offers.VerifyOffer(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "offer is valid", "offer": offer})
}

type createPaymentReq struct {
	Amount      float64 `json:"amount" validate:"gte=0"`
	PaymentMode string  `json:"paymentMode" validate:"required"`
	OfferID     string  `json:"offerId"`
}

func (s *Server) createPayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var req createPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	txn, err := s.payments.CreatePayment(user.ID, req.Amount, req.PaymentMode, req.OfferID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}
