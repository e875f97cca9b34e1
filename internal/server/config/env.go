package config

import (
	"fmt"
	"strconv"
	"time"
)

const envPrefix = "RELOCATE_"

// loadEnv перекрывает значения переменными окружения RELOCATE_*
func (c *Config) loadEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}

	get := func(name string) (string, bool) {
		v := getenv(envPrefix + name)
		return v, v != ""
	}

	for name, dst := range map[string]*string{
		"ADDR":          &c.Addr,
		"DB_DRIVER":     &c.DBDriver,
		"DATABASE_DSN":  &c.DatabaseDSN,
		"JWT_SECRET":    &c.JWTSecret,
		"LOG_LEVEL":     &c.LogLevel,
		"SEED_USERNAME": &c.SeedUsername,
		"SEED_EMAIL":    &c.SeedEmail,
		"SEED_PASSWORD": &c.SeedPassword,
	} {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	if v, ok := get("CORS_ORIGINS"); ok {
		c.CORSOrigins = splitList(v)
	}

	if v, ok := get("TRUSTED_PROXIES"); ok {
		c.TrustedProxies = splitList(v)
	}

	for name, dst := range map[string]*time.Duration{
		"ACCESS_TOKEN_TTL": &c.AccessTokenTTL,
		"RESET_CODE_TTL":   &c.ResetCodeTTL,
		"SHUTDOWN_TIMEOUT": &c.ShutdownTimeout,
	} {
		if v, ok := get(name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
			}
			*dst = d
		}
	}

	if v, ok := get("LOGIN_RATE_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sLOGIN_RATE_LIMIT: %w", envPrefix, err)
		}
		c.LoginRateLimit = n
	}

	for name, dst := range map[string]*bool{
		"STRICT_STEPS":      &c.StrictSteps,
		"RANDOM_RESET_CODE": &c.RandomResetCode,
	} {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
			}
			*dst = b
		}
	}

	return nil
}
