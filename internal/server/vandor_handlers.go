package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-order-backend/internal/domain"
	"food-order-backend/internal/usecase"
	"food-order-backend/internal/validation"
)

func (s *Server) vandorLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	token, _, err := s.catalog.Login(req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"signature": token})
}

func (s *Server) vandorProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	v, err := s.catalog.GetVandor(user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type editVandorReq struct {
	Name     string   `json:"name" validate:"required"`
	Phone    string   `json:"phone" validate:"required"`
	Address  string   `json:"address"`
	FoodType []string `json:"foodType"`
}

func (s *Server) editVandorProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var req editVandorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	v, err := s.catalog.UpdateProfile(user.ID, req.Name, req.Phone, req.Address, req.FoodType)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type latLngReq struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (s *Server) vandorService(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var req latLngReq
	_ = c.ShouldBindJSON(&req)
	v, err := s.catalog.ToggleService(user.ID, req.Lat, req.Lng)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) vandorCoverImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid multipart form"))
		return
	}
	names, err := s.saveUploads(form.File["images"])
	if err != nil {
		s.fail(c, usecase.ErrBadRequest("unable to store images"))
		return
	}
	v, err := s.catalog.AddCoverImages(user.ID, names)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) addFood(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid multipart form"))
		return
	}
	var in usecase.CreateFoodInput
	if err := c.ShouldBind(&in); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid form"))
		return
	}
	if errs := validation.Check(in); errs != nil {
		s.failValidation(c, errs)
		return
	}
	names, err := s.saveUploads(form.File["images"])
	if err != nil {
		s.fail(c, usecase.ErrBadRequest("unable to store images"))
		return
	}
	v, err := s.catalog.AddFood(user.ID, in, names)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) vandorFoods(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	c.JSON(http.StatusOK, s.catalog.GetFoods(user.ID))
}

func (s *Server) vandorOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	c.JSON(http.StatusOK, s.orders.VendorOrders(user.ID))
}

func (s *Server) vandorOrderByID(c *gin.Context) {
	order, err := s.orders.GetOrderByID(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type processOrderReq struct {
	Status  string `json:"status" validate:"required"`
	Remarks string `json:"remarks"`
	Time    int    `json:"time"`
}

func (s *Server) processOrder(c *gin.Context) {
	var req processOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	order, err := s.orders.ProcessOrder(c.Param("id"), domain.OrderStatus(req.Status), req.Remarks, req.Time)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) addOffer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var in usecase.OfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(in); errs != nil {
		s.failValidation(c, errs)
		return
	}
	offer, err := s.offers.AddOffer(user.ID, in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (s *Server) vandorOffers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	c.JSON(http.StatusOK, s.offers.GetOffers(user.ID))
}

func (s *Server) editOffer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var in usecase.OfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(in); errs != nil {
		s.failValidation(c, errs)
		return
	}
	offer, err := s.offers.EditOffer(user.ID, c.Param("id"), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}
