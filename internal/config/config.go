package config

import (
	"os"
)

type Config struct {
	Addr        string
	DatabaseURL string
	SiteURL     string
	Env         string
}

func Load() Config {
	addr := envString("ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}

	return Config{
		Addr:        addr,
		DatabaseURL: envString("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=newsdesk port=5432 sslmode=disable"),
		SiteURL:     envString("SITE_URL", "http://localhost:8080"),
		Env:         envString("ENV", "development"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
