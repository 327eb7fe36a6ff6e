// Package config builds the process configuration once at startup.
// Components receive the parts they need by reference instead of reading
// environment variables on their own.
package config

import (
	"os"
	"strings"
)

// Payment holds everything needed to talk to the hosted checkout gateway.
type Payment struct {
	// APIURL is the base URL of the gateway API, e.g.
	// "https://api.konnect.network/api/v1".
	APIURL string

	// APIKey is sent as a Bearer token on every gateway call.
	APIKey string

	// ReceiverWalletID identifies the merchant wallet credited on payment.
	ReceiverWalletID string

	// Currency for all checkout sessions, e.g. "TND".
	Currency string

	// Methods lists the payment methods offered on the hosted page.
	Methods []string

	// SuccessURL and FailURL are the redirect targets the gateway sends the
	// payer back to.
	SuccessURL string
	FailURL    string
}

// Config is the full service configuration.
type Config struct {
	HTTPAddr string

	MongoURI      string
	MongoDatabase string

	RedisAddr string

	// CheckoutLogPath is the SQLite file holding the checkout saga log.
	CheckoutLogPath string

	ServiceName  string
	Environment  string
	OTLPEndpoint string

	Payment Payment
}

// Load reads the environment and returns a fully populated Config.
// Every value has a local-development default.
func Load() *Config {
	return &Config{
		HTTPAddr:        ":" + getEnv("PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "steelisiaDB"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		CheckoutLogPath: getEnv("CHECKOUT_LOG_PATH", "./data/checkout.db"),
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "commerce-backend"),
		Environment:     getEnv("OTEL_RESOURCE_ATTRIBUTES_ENV", "local"),
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Payment: Payment{
			APIURL:           getEnv("PAYMENT_API_URL", "https://api.konnect.network/api/v1"),
			APIKey:           getEnv("PAYMENT_API_KEY", ""),
			ReceiverWalletID: getEnv("PAYMENT_WALLET_ID", ""),
			Currency:         getEnv("PAYMENT_CURRENCY", "TND"),
			Methods:          splitList(getEnv("PAYMENT_METHODS", "wallet,bank_card,e-DINAR")),
			SuccessURL:       getEnv("PAYMENT_SUCCESS_URL", "http://localhost:8080/payment/success"),
			FailURL:          getEnv("PAYMENT_FAIL_URL", "http://localhost:8080/payment/fail"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
