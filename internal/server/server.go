package server

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"food-order-backend/internal/config"
	"food-order-backend/internal/usecase"
	"food-order-backend/internal/validation"
)

const ctxUserKey = "authUser"

// ImageWriter persists uploaded images and returns their public path.
type ImageWriter interface {
	Write(filename string, data []byte) (string, error)
}

type Server struct {
	cfg       config.Config
	log       *slog.Logger
	auth      *usecase.AuthService
	customers *usecase.CustomerService
	orders    *usecase.OrderService
	catalog   *usecase.CatalogService
	offers    *usecase.OfferService
	payments  *usecase.PaymentService
	delivery  *usecase.DeliveryService
	images    ImageWriter
	engine    *gin.Engine
}

type Services struct {
	Auth      *usecase.AuthService
	Customers *usecase.CustomerService
	Orders    *usecase.OrderService
	Catalog   *usecase.CatalogService
	Offers    *usecase.OfferService
	Payments  *usecase.PaymentService
	Delivery  *usecase.DeliveryService
}

func New(cfg config.Config, log *slog.Logger, svc Services, images ImageWriter) *Server {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		cfg:       cfg,
		log:       log,
		auth:      svc.Auth,
		customers: svc.Customers,
		orders:    svc.Orders,
		catalog:   svc.Catalog,
		offers:    svc.Offers,
		payments:  svc.Payments,
		delivery:  svc.Delivery,
		images:    images,
		engine:    gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.requestLog())
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) Run() error {
	return s.engine.Run(fmt.Sprintf(":%d", s.cfg.Port))
}

func (s *Server) routes() {
	s.engine.Static("/images", s.cfg.ImagesDir)

	admin := s.engine.Group("/admin")
	{
		admin.POST("/vandor", s.createVandor)
		admin.GET("/vandors", s.listVandors)
		admin.GET("/vandor/:id", s.getVandor)
		admin.GET("/transactions", s.listTransactions)
		admin.GET("/transaction/:id", s.getTransaction)
	}

	customer := s.engine.Group("/customer")
	{
		customer.POST("/signup", s.customerSignUp)
		customer.POST("/login", s.customerLogin)

		authed := customer.Group("", s.authenticate())
		authed.PATCH("/verify", s.customerVerify)
		authed.GET("/otp", s.requestOTP)
		authed.GET("/profile", s.customerProfile)
		authed.PATCH("/profile", s.editCustomerProfile)
		authed.POST("/create-order", s.createOrder)
		authed.GET("/orders", s.customerOrders)
		authed.GET("/order/:id", s.customerOrderByID)
		authed.POST("/cart", s.addToCart)
		authed.GET("/cart", s.getCart)
		authed.DELETE("/cart", s.deleteCart)
		authed.GET("/offer/verify/:id", s.verifyOffer)
		authed.POST("/create-payment", s.createPayment)
	}

	vandor := s.engine.Group("/vandor")
	{
		vandor.POST("/login", s.vandorLogin)

		authed := vandor.Group("", s.authenticate())
		authed.GET("/profile", s.vandorProfile)
		authed.PATCH("/profile", s.editVandorProfile)
		authed.PATCH("/service", s.vandorService)
		authed.PATCH("/coverimage", s.vandorCoverImage)
		authed.POST("/food", s.addFood)
		authed.GET("/food", s.vandorFoods)
		authed.GET("/orders", s.vandorOrders)
		authed.PUT("/order/:id/process", s.processOrder)
		authed.GET("/order/:id", s.vandorOrderByID)
		authed.POST("/offer", s.addOffer)
		authed.GET("/offers", s.vandorOffers)
		authed.PUT("/offer/:id", s.editOffer)
	}

	delivery := s.engine.Group("/delivery")
	{
		delivery.POST("/signup", s.deliverySignUp)
		delivery.POST("/login", s.deliveryLogin)

		authed := delivery.Group("", s.authenticate())
		authed.GET("/profile", s.deliveryProfile)
		authed.PATCH("/profile", s.editDeliveryProfile)
		authed.PUT("/change-status", s.deliveryChangeStatus)
	}
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}

// authenticate verifies the bearer token and stores the decoded
// payload in the request context under one typed key. Any failure is
// a generic 401; the token layer does not say why.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not authorized"})
			return
		}
		payload, ok := s.auth.Verify(parts[1])
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not authorized"})
			return
		}
		c.Set(ctxUserKey, payload)
		c.Next()
	}
}

// fail maps service errors onto the uniform {"message": ...} failure
// body with a real status code.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch err.(type) {
	case usecase.ErrNotFound:
		status = http.StatusNotFound
	case usecase.ErrConflict:
		status = http.StatusConflict
	case usecase.ErrUnauthorized:
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

func (s *Server) failValidation(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
}

// saveUploads writes each multipart file under a fresh name and
// returns the stored names.
func (s *Server) saveUploads(files []*multipart.FileHeader) ([]string, error) {
	var names []string
	for _, hdr := range files {
		f, err := hdr.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		name := uuid.NewString() + "_" + hdr.Filename
		if _, err := s.images.Write(name, data); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
