package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-order-backend/internal/usecase"
	"food-order-backend/internal/validation"
)

func (s *Server) deliverySignUp(c *gin.Context) {
	var in usecase.CreateDeliveryUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(in); errs != nil {
		s.failValidation(c, errs)
		return
	}
	token, d, err := s.delivery.SignUp(in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"signature": token, "verified": d.Verified, "email": d.Email})
}

func (s *Server) deliveryLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(req); errs != nil {
		s.failValidation(c, errs)
		return
	}
	token, d, err := s.delivery.Login(req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"signature": token, "verified": d.Verified, "email": d.Email})
}

func (s *Server) deliveryProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	d, err := s.delivery.Profile(user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) editDeliveryProfile(c *gin.Context) {
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
	d, err := s.delivery.EditProfile(user.ID, req.FirstName, req.LastName, req.Address)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) deliveryChangeStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.fail(c, usecase.ErrUnauthorized("user not authorized"))
		return
	}
	var req latLngReq
	_ = c.ShouldBindJSON(&req)
	d, err := s.delivery.ChangeStatus(user.ID, req.Lat, req.Lng)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
