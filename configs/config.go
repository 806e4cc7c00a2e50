package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	StripeSecretKey    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
	Currency           string
}

func LoadConfig() *Config {
	// .env is optional outside dev
	_ = godotenv.Load()

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "brestau.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/success"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/checkout/cancel"),
		Currency:           getEnv("CURRENCY", "eur"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
