package env

import (
	"github.com/joho/godotenv"
	"idguard.io/infrastructure/logger"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		logger.Info("error loading env variables")
	}
}

func LoadEnv() {
}
