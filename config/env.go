package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultPort = "8080"

// LoadEnv reads a local .env file when one exists. Deployed environments
// provide real env vars, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		GetLogger().Debug("no .env file found, using process environment")
	}
}

func GetPort() string {
	port := os.Getenv("API_PORT")
	if port == "" {
		// Cloud Run standard env var.
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}
	return port
}

func IsProduction() bool {
	return os.Getenv("GO_ENV") == "production"
}
