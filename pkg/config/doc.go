// Package config loads typed configuration structs from environment
// variables (github.com/caarlos0/env/v11), optionally seeded from .env files
// (github.com/joho/godotenv).
//
//	cfg, err := config.Load[httpserver.Config]()
package config
