package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config carries everything the process reads from the environment.
type Config struct {
	DBDSN              string
	OpenAIKey          string
	OpenAIModel        string
	SecretKey          string
	AuthProjectID      string
	UploadDir          string
	Port               string
	StrictUploadErrors bool
}

// Load reads .env if present and validates the required variables.
func Load() Config {
	_ = godotenv.Load()

	required := []string{"DB_DSN", "OPENAI_API_KEY", "SECRET_KEY", "AUTH_PROJECT_ID"}
	for _, name := range required {
		if os.Getenv(name) == "" {
			log.Fatalf("environment variable %s is not set", name)
		}
	}

	return Config{
		DBDSN:              os.Getenv("DB_DSN"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getenv("OPENAI_MODEL", "gpt-3.5-turbo"),
		SecretKey:          os.Getenv("SECRET_KEY"),
		AuthProjectID:      os.Getenv("AUTH_PROJECT_ID"),
		UploadDir:          getenv("UPLOAD_DIR", "uploads"),
		Port:               getenv("PORT", "8080"),
		StrictUploadErrors: os.Getenv("STRICT_UPLOAD_ERRORS") == "true",
	}
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
