package config

import (
	"os"
	"strconv"
	"strings"

	"rescue-animals/internal/platform/logger"
)

// Config reúne la configuración del proceso.
type Config struct {
	AppName   string
	LogLevel  logger.Level
	LogFormat logger.Format

	// Exigir visto bueno veterinario para pasar de intake a Phase I.
	RequireVetClearance bool
	SeedDemoData        bool
	MaxLoginAttempts    int

	AdminPassword    string
	CustomerPassword string
}

const (
	defaultAppName          = "rescue-animals"
	defaultMaxLoginAttempts = 3

	// Solo para desarrollo; sobreescribir por env.
	defaultAdminPassword    = "AdminPass"
	defaultCustomerPassword = "CustomerPass"
)

// FromEnv arma la config desde variables de entorno; valores inválidos caen al default.
func FromEnv() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := Config{
		AppName:             get("APP_NAME"),
		LogLevel:            logger.ParseLevel(get("LOG_LEVEL")),
		LogFormat:           logger.ParseFormat(get("LOG_FORMAT")),
		RequireVetClearance: parseBool(get("RESCUE_REQUIRE_VET_CLEARANCE"), true),
		SeedDemoData:        parseBool(get("RESCUE_SEED"), true),
		MaxLoginAttempts:    defaultMaxLoginAttempts,
		AdminPassword:       get("RESCUE_ADMIN_PASSWORD"),
		CustomerPassword:    get("RESCUE_CUSTOMER_PASSWORD"),
	}

	if cfg.AppName == "" {
		cfg.AppName = defaultAppName
	}
	if n, err := strconv.Atoi(get("RESCUE_MAX_LOGIN_ATTEMPTS")); err == nil && n > 0 {
		cfg.MaxLoginAttempts = n
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = defaultAdminPassword
	}
	if cfg.CustomerPassword == "" {
		cfg.CustomerPassword = defaultCustomerPassword
	}
	return cfg
}

func parseBool(v string, def bool) bool {
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
