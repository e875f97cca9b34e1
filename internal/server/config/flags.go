package config

import (
	"flag"
	"io"
)

// parseFlags применяет флаги командной строки поверх текущих значений.
//
//	-a string          listen address (":8080")
//	-db-driver string  sqlite | postgres
//	-d string          database DSN
//	-s string          JWT HMAC secret
//	-l string          log level (debug|info|warn|error)
//	-access-ttl dur    access token lifetime ("30m")
//	-reset-ttl dur     reset code lifetime ("1h")
//	-cors string       comma separated allowed origins
//	-trusted-proxies   comma separated proxy IPs/CIDRs allowed to set X-Forwarded-For
//	-login-rate int    login attempts per minute per IP
//	-strict-steps      reject step ids outside the catalog
//	-random-reset      issue random 6-digit reset codes
//	-shutdown dur      graceful shutdown timeout
//	-c, -config        JSON config file (read before env and flags)
//	-version           print version and exit
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("relocate-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&c.Addr, "a", c.Addr, "address and port to run server")
	fs.StringVar(&c.DBDriver, "db-driver", c.DBDriver, "database driver: sqlite or postgres")
	fs.StringVar(&c.DatabaseDSN, "d", c.DatabaseDSN, "database DSN")
	fs.StringVar(&c.JWTSecret, "s", c.JWTSecret, "JWT secret key")
	fs.StringVar(&c.LogLevel, "l", c.LogLevel, "log level")
	fs.DurationVar(&c.AccessTokenTTL, "access-ttl", c.AccessTokenTTL, "access token lifetime")
	fs.DurationVar(&c.ResetCodeTTL, "reset-ttl", c.ResetCodeTTL, "password reset code lifetime")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown", c.ShutdownTimeout, "graceful shutdown timeout")
	fs.IntVar(&c.LoginRateLimit, "login-rate", c.LoginRateLimit, "login attempts per minute per IP")
	fs.BoolVar(&c.StrictSteps, "strict-steps", c.StrictSteps, "reject unknown step ids")
	fs.BoolVar(&c.RandomResetCode, "random-reset", c.RandomResetCode, "issue random reset codes")
	fs.BoolVar(&c.ShowVersion, "version", false, "show version information")
	fs.Func("cors", "comma separated allowed CORS origins", func(v string) error {
		c.CORSOrigins = splitList(v)
		return nil
	})
	fs.Func("trusted-proxies", "comma separated trusted proxy IPs or CIDRs", func(v string) error {
		c.TrustedProxies = splitList(v)
		return nil
	})

	// -c/-config уже прочитан в configFilePath
	var configFile string
	fs.StringVar(&configFile, "c", "", "JSON config file")
	fs.StringVar(&configFile, "config", "", "JSON config file")

	return fs.Parse(args)
}
