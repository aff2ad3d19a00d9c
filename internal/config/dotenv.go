package config

import "github.com/joho/godotenv"

// LoadDotEnv loads .env files for local development. .env.local wins over
// .env; neither overrides variables already set in the environment except
// through .env.local.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}
