package config

import "testing"

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOOD_PORT", "9100")
	t.Setenv("FOOD_JWT_SECRET", "s3cret")
	t.Setenv("FOOD_ORDER_ID_MODE", OrderIDLegacy)
	t.Setenv("FOOD_ORDER_ITEMS_SOURCE", ItemsFromCart)
	t.Setenv("FOOD_ASSIGN_DELIVERY", "true")
	t.Setenv("FOOD_LOG_JSON", "0")

	c := EnvDefaults()
	if c.Port != 9100 {
		t.Fatalf("port = %d", c.Port)
	}
	if c.JWTSecret != "s3cret" {
		t.Fatalf("jwt secret = %q", c.JWTSecret)
	}
	if c.OrderIDMode != OrderIDLegacy || c.OrderItemsSource != ItemsFromCart {
		t.Fatalf("order knobs = %q %q", c.OrderIDMode, c.OrderItemsSource)
	}
	if !c.AssignDelivery {
		t.Fatal("assign delivery not enabled")
	}
	if c.LogJSON {
		t.Fatal("log json not disabled")
	}
}

func TestBadPortKeepsDefault(t *testing.T) {
	t.Setenv("FOOD_PORT", "not-a-number")
	if c := EnvDefaults(); c.Port != Default().Port {
		t.Fatalf("port = %d", c.Port)
	}
}
