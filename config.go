package main

import (
	"os"
	"strings"
)

// serverConfig holds the HTTP server settings read from the environment.
type serverConfig struct {
	Addr           string
	AllowedOrigins []string
	// APITokenHash is a bcrypt hash; when set, /api/meal-plan requires the
	// matching bearer token.
	APITokenHash string
}

func loadServerConfig() serverConfig {
	cfg := serverConfig{
		Addr:           ":3000",
		AllowedOrigins: []string{"*"},
		APITokenHash:   os.Getenv("MACROMATE_API_TOKEN_HASH"),
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if v := os.Getenv("MACROMATE_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}
