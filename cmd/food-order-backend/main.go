package main

import (
	"flag"
	"log/slog"
	"os"

	"food-order-backend/internal/config"
	"food-order-backend/internal/env"
	"food-order-backend/internal/infrastructure/asset"
	"food-order-backend/internal/infrastructure/payment"
	"food-order-backend/internal/infrastructure/repo"
	"food-order-backend/internal/infrastructure/sms"
	"food-order-backend/internal/logger"
	"food-order-backend/internal/server"
	"food-order-backend/internal/usecase"
)

type repos struct {
	customers    usecase.CustomerRepo
	vandors      usecase.VandorRepo
	foods        usecase.FoodRepo
	orders       usecase.OrderRepo
	offers       usecase.OfferRepo
	transactions usecase.TransactionRepo
	deliveries   usecase.DeliveryRepo
}

func main() {
	env.Load(".env", ".env.local")
	envDefaults := config.EnvDefaults()

	envName := flag.String("env", envDefaults.Env, "")
	port := flag.Int("port", envDefaults.Port, "")
	dsn := flag.String("postgres-dsn", envDefaults.PostgresDSN, "")
	jwtSecret := flag.String("jwt-secret", envDefaults.JWTSecret, "")
	images := flag.String("images", envDefaults.ImagesDir, "")
	logJSON := flag.Bool("log-json", envDefaults.LogJSON, "")
	flag.Parse()

	cfg := envDefaults
	cfg.Env = *envName
	cfg.Port = *port
	cfg.PostgresDSN = *dsn
	cfg.JWTSecret = *jwtSecret
	cfg.ImagesDir = *images
	cfg.LogJSON = *logJSON

	log := logger.New("food-order-backend", cfg.LogJSON)

	ensureDir(cfg.ImagesDir)

	r, err := buildRepos(cfg)
	if err != nil {
		log.Error("repository init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	auth := &usecase.AuthService{JWTSecret: cfg.JWTSecret}
	smsClient := &sms.Client{
		AccountSID: cfg.SMSAccountSID,
		AuthToken:  cfg.SMSAuthToken,
		From:       cfg.SMSFrom,
		BaseURL:    cfg.SMSGatewayURL,
	}
	gateway := &payment.Client{GatewayURL: cfg.PaymentURL}

	svc := server.Services{
		Auth: auth,
		Customers: &usecase.CustomerService{
			Customers: r.customers,
			Foods:     r.foods,
			Auth:      auth,
			SMS:       smsClient,
		},
		Orders: &usecase.OrderService{
			Customers:      r.customers,
			Foods:          r.foods,
			Orders:         r.orders,
			Transactions:   r.transactions,
			Vandors:        r.vandors,
			Deliveries:     r.deliveries,
			IDMode:         cfg.OrderIDMode,
			ItemsSource:    cfg.OrderItemsSource,
			AssignDelivery: cfg.AssignDelivery,
		},
		Catalog: &usecase.CatalogService{
			Vandors: r.vandors,
			Foods:   r.foods,
			Auth:    auth,
		},
		Offers: &usecase.OfferService{
			Offers:  r.offers,
			Vandors: r.vandors,
		},
		Payments: &usecase.PaymentService{
			Offers:       r.offers,
			Transactions: r.transactions,
			Gateway:      gateway,
		},
		Delivery: &usecase.DeliveryService{
			Deliveries: r.deliveries,
			Auth:       auth,
		},
	}

	srv := server.New(cfg, log, svc, asset.NewFSWriter(cfg.ImagesDir, ""))
	log.Info("listening", slog.Int("port", cfg.Port), slog.String("env", cfg.Env))
	if err := srv.Run(); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func buildRepos(cfg config.Config) (repos, error) {
	if cfg.PostgresDSN != "" {
		pg, err := repo.NewPostgresRepo(cfg.PostgresDSN)
		if err != nil {
			return repos{}, err
		}
		return repos{
			customers:    pg,
			vandors:      pg,
			foods:        pg,
			orders:       pg,
			offers:       pg,
			transactions: pg,
			deliveries:   pg,
		}, nil
	}
	return repos{
		customers:    repo.NewMemoryCustomerRepo(),
		vandors:      repo.NewMemoryVandorRepo(),
		foods:        repo.NewMemoryFoodRepo(),
		orders:       repo.NewMemoryOrderRepo(),
		offers:       repo.NewMemoryOfferRepo(),
		transactions: repo.NewMemoryTransactionRepo(),
		deliveries:   repo.NewMemoryDeliveryRepo(),
	}, nil
}

func ensureDir(p string) {
	if p == "" {
		return
	}
	if _, err := os.Stat(p); os.IsNotExist(err) {
		_ = os.MkdirAll(p, 0o755)
	}
}
