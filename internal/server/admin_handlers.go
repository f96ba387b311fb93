package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-order-backend/internal/usecase"
	"food-order-backend/internal/validation"
)

func (s *Server) createVandor(c *gin.Context) {
	var in usecase.CreateVandorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, usecase.ErrBadRequest("invalid json"))
		return
	}
	if errs := validation.Check(in); errs != nil {
		s.failValidation(c, errs)
		return
	}
	v, err := s.catalog.CreateVandor(in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (s *Server) listVandors(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.ListVandors())
}

func (s *Server) getVandor(c *gin.Context) {
	v, err := s.catalog.GetVandor(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) listTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, s.payments.ListTransactions())
}

func (s *Server) getTransaction(c *gin.Context) {
	txn, err := s.payments.GetTransaction(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}
