package config

import (
	"os"
	"strconv"
)

// OrderItemsSource selects which revision of order construction is
// active: items taken from the request body or from the stored cart.
const (
	ItemsFromRequest = "request"
	ItemsFromCart    = "cart"
)

// OrderIDMode selects the order-number generator.
const (
	OrderIDUUID   = "uuid"
	OrderIDLegacy = "legacy"
)

type Config struct {
	Env              string
	Port             int
	PostgresDSN      string
	JWTSecret        string
	ImagesDir        string
	LogJSON          bool
	SMSAccountSID    string
	SMSAuthToken     string
	SMSFrom          string
	SMSGatewayURL    string
	PaymentURL       string
	OrderIDMode      string
	OrderItemsSource string
	AssignDelivery   bool
}

func Default() Config {
	return Config{
		Env:              "dev",
		Port:             8000,
		PostgresDSN:      "",
		JWTSecret:        "",
		ImagesDir:        "./images",
		LogJSON:          true,
		SMSAccountSID:    "mock_dev",
		SMSAuthToken:     "",
		SMSFrom:          "",
		SMSGatewayURL:    "https://api.twilio.com",
		PaymentURL:       "",
		OrderIDMode:      OrderIDUUID,
		OrderItemsSource: ItemsFromRequest,
		AssignDelivery:   false,
	}
}

func EnvDefaults() Config {
	return fromEnv(Default())
}

func fromEnv(c Config) Config {
	if v := os.Getenv("FOOD_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("FOOD_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	if v := os.Getenv("FOOD_POSTGRES_DSN"); v != "" {
		c.PostgresDSN = v
	}
	if v := os.Getenv("FOOD_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("FOOD_IMAGES_DIR"); v != "" {
		c.ImagesDir = v
	}
	if v := os.Getenv("FOOD_LOG_JSON"); v != "" {
		c.LogJSON = parseBool(v, c.LogJSON)
	}
	if v := os.Getenv("FOOD_SMS_ACCOUNT_SID"); v != "" {
		c.SMSAccountSID = v
	}
	if v := os.Getenv("FOOD_SMS_AUTH_TOKEN"); v != "" {
		c.SMSAuthToken = v
	}
	if v := os.Getenv("FOOD_SMS_FROM"); v != "" {
		c.SMSFrom = v
	}
	if v := os.Getenv("FOOD_SMS_GATEWAY_URL"); v != "" {
		c.SMSGatewayURL = v
	}
	if v := os.Getenv("FOOD_PAYMENT_URL"); v != "" {
		c.PaymentURL = v
	}
	if v := os.Getenv("FOOD_ORDER_ID_MODE"); v != "" {
		c.OrderIDMode = v
	}
	if v := os.Getenv("FOOD_ORDER_ITEMS_SOURCE"); v != "" {
		c.OrderItemsSource = v
	}
	if v := os.Getenv("FOOD_ASSIGN_DELIVERY"); v != "" {
		c.AssignDelivery = parseBool(v, c.AssignDelivery)
	}
	return c
}

func parseBool(v string, fallback bool) bool {
	switch v {
	case "1", "true", "TRUE":
		return true
	case "0", "false", "FALSE":
		return false
	}
	return fallback
}
