package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	ShopAPI ShopAPIConfig
	Store   StoreConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type SessionConfig struct {
	Secret string
}

// ShopAPIConfig configures the client for the remote shop API that owns
// the catalog, reviews, discounts and orders. An empty BaseURL switches
// the application into demo mode backed by canned data.
type ShopAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StoreConfig holds the physical store details shown on the home and
// contacts pages. Display only, not part of any wire contract.
type StoreConfig struct {
	Name       string
	City       string
	Address    string
	Phone      string
	PhoneLink  string
	Email      string
	Hours      string
	MapURL     string
	ReviewsURL string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		ShopAPI: ShopAPIConfig{
			BaseURL: getEnv("SHOP_API_BASE_URL", ""),
			Timeout: time.Duration(getEnvAsInt("SHOP_API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Store: StoreConfig{
			Name:       getEnv("STORE_NAME", "AquaApple"),
			City:       getEnv("STORE_CITY", "Вологда"),
			Address:    getEnv("STORE_ADDRESS", "г. Вологда, ул. Каменный Мост, д. 6"),
			Phone:      getEnv("STORE_PHONE", "+7 921 139-69-43"),
			PhoneLink:  getEnv("STORE_PHONE_LINK", "tel:+79211396943"),
			Email:      getEnv("STORE_EMAIL", "info@aquaapple.ru"),
			Hours:      getEnv("STORE_HOURS", "Пн-Вс: 10:00 - 20:00"),
			MapURL:     getEnv("STORE_MAP_URL", "https://yandex.ru/maps/?text=Вологда,%20ул.%20Каменный%20Мост,%20д.%206"),
			ReviewsURL: getEnv("STORE_REVIEWS_URL", "https://yandex.ru/maps/org/aquaapple/search"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
