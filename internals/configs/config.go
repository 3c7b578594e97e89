package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system ENV")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// AppEnv reports the running mode (development, test, production).
func AppEnv() string {
	return GetEnv("APP_ENV", "development")
}

// Port picks PORT_TEST over PORT when running in test mode.
func Port() string {
	if AppEnv() == "test" {
		if p := GetEnv("PORT_TEST"); p != "" {
			return p
		}
	}
	return GetEnv("PORT", "3000")
}
