package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Duration принимает в JSON строку ("30m") или число наносекунд
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// JSONConfig - DTO для чтения JSON файла конфигурации.
// Отсутствующие поля не меняют текущих значений.
type JSONConfig struct {
	Addr            *string   `json:"addr"`
	DBDriver        *string   `json:"db_driver"`
	DatabaseDSN     *string   `json:"database_dsn"`
	JWTSecret       *string   `json:"jwt_secret"`
	LogLevel        *string   `json:"log_level"`
	SeedUsername    *string   `json:"seed_username"`
	SeedEmail       *string   `json:"seed_email"`
	SeedPassword    *string   `json:"seed_password"`
	CORSOrigins     []string  `json:"cors_origins"`
	TrustedProxies  []string  `json:"trusted_proxies"`
	AccessTokenTTL  *Duration `json:"access_token_ttl"`
	ResetCodeTTL    *Duration `json:"reset_code_ttl"`
	ShutdownTimeout *Duration `json:"shutdown_timeout"`
	LoginRateLimit  *int      `json:"login_rate_limit"`
	StrictSteps     *bool     `json:"strict_steps"`
	RandomResetCode *bool     `json:"random_reset_code"`
}

// configFilePath ищет -c/-config среди аргументов
func configFilePath(args []string) string {
	for i, arg := range args {
		for _, name := range []string{"-c", "--c", "-config", "--config"} {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(arg, name+"="); ok {
				return v
			}
		}
	}
	return ""
}

func (c *Config) loadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.applyJSON(&jc)
	return nil
}

func (c *Config) applyJSON(jc *JSONConfig) {
	setIf(&c.Addr, jc.Addr)
	setIf(&c.DBDriver, jc.DBDriver)
	setIf(&c.DatabaseDSN, jc.DatabaseDSN)
	setIf(&c.JWTSecret, jc.JWTSecret)
	setIf(&c.LogLevel, jc.LogLevel)
	setIf(&c.SeedUsername, jc.SeedUsername)
	setIf(&c.SeedEmail, jc.SeedEmail)
	setIf(&c.SeedPassword, jc.SeedPassword)
	setIf(&c.LoginRateLimit, jc.LoginRateLimit)
	setIf(&c.StrictSteps, jc.StrictSteps)
	setIf(&c.RandomResetCode, jc.RandomResetCode)
	if jc.CORSOrigins != nil {
		c.CORSOrigins = jc.CORSOrigins
	}
	if jc.TrustedProxies != nil {
		c.TrustedProxies = jc.TrustedProxies
	}
	if jc.AccessTokenTTL != nil {
		c.AccessTokenTTL = jc.AccessTokenTTL.Duration
	}
	if jc.ResetCodeTTL != nil {
		c.ResetCodeTTL = jc.ResetCodeTTL.Duration
	}
	if jc.ShutdownTimeout != nil {
		c.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
