package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv pulls a local .env file into the environment. Deployments set real
// environment variables instead, so a missing file is fine.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is.")
	}
}
