package config

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
)

type Config struct {
	RunAddr            string        `env:"RUN_ADDRESS"          envDefault:"localhost:5000"`
	DatabaseURI        string        `env:"DATABASE_URI"         envDefault:""`
	SecretKey          string        `env:"SECRET_KEY"           envDefault:""`
	LogLevel           string        `env:"LOG_LEVEL"            envDefault:"info"`
	APIPrefix          string        `env:"API_PREFIX"           envDefault:"/api"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	TokenTTL           time.Duration `env:"TOKEN_TTL"            envDefault:"1h"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"30s"`
	BcryptCost         int           `env:"BCRYPT_COST"          envDefault:"10"`
	PasswordMinEntropy float64       `env:"PASSWORD_MIN_ENTROPY" envDefault:"0"`
	BcryptConcurrency  uint64        `env:"BCRYPT_CONCURRENCY"   envDefault:"8"`
}

type Builder struct {
	cfg *Config
	log *slog.Logger
	err error
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{},
		log: log,
	}
}

// FromDotEnv loads variables from the given files (".env" when none are
// passed) into the process environment. Missing files are not an error.
func (b *Builder) FromDotEnv(files ...string) *Builder {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			b.log.LogAttrs(context.Background(),
				slog.LevelError, "failed to load dotenv file",
				slog.String("file", f),
				slog.Any(model.KeyLoggerError, err))
			b.err = errors.Join(b.err, fmt.Errorf("load %s: %w", f, err))
		}
	}
	return b
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "failed to parse config", slog.Any(model.KeyLoggerError, err))
		b.err = errors.Join(b.err, fmt.Errorf("parse env: %w", err))
	}
	return b
}

// FromFlags overrides values with command line flags. Flags win over
// the environment.
func (b *Builder) FromFlags(args []string) *Builder {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var origins string
	fs.StringVar(&b.cfg.RunAddr, "a", b.cfg.RunAddr, "Run address")
	fs.StringVar(&b.cfg.DatabaseURI, "d", b.cfg.DatabaseURI, "Database URI")
	fs.StringVar(&b.cfg.SecretKey, "k", b.cfg.SecretKey, "Secret key")
	fs.StringVar(&b.cfg.LogLevel, "l", b.cfg.LogLevel, "Log level")
	fs.StringVar(&b.cfg.APIPrefix, "p", b.cfg.APIPrefix, "API route prefix")
	fs.StringVar(&origins, "o", strings.Join(b.cfg.CORSAllowedOrigins, ","),
		"Comma separated CORS allowed origins")
	fs.DurationVar(&b.cfg.TokenTTL, "t", b.cfg.TokenTTL, "Token TTL")
	fs.DurationVar(&b.cfg.ShutdownTimeout, "s", b.cfg.ShutdownTimeout, "Shutdown timeout")
	fs.IntVar(&b.cfg.BcryptCost, "c", b.cfg.BcryptCost, "bcrypt cost")
	fs.Float64Var(&b.cfg.PasswordMinEntropy, "e", b.cfg.PasswordMinEntropy,
		"Minimum password entropy, 0 disables the check")
	fs.Uint64Var(&b.cfg.BcryptConcurrency, "b", b.cfg.BcryptConcurrency,
		"Maximum concurrent bcrypt operations, 0 means unbounded")

	if err := fs.Parse(args); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("parse flags: %w", err))
		return b
	}
	b.cfg.CORSAllowedOrigins = splitOrigins(origins)
	return b
}

func (b *Builder) GetConfig() *Config {
	return b.cfg
}

// Build returns the assembled config or the first problem found while
// loading or validating it.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURI == "" {
		errs = append(errs, errors.New("DATABASE_URI is required"))
	}
	if c.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.PasswordMinEntropy < 0 {
		errs = append(errs, errors.New("PASSWORD_MIN_ENTROPY must not be negative"))
	}
	if c.APIPrefix != "" && !strings.HasPrefix(c.APIPrefix, "/") {
		errs = append(errs, errors.New("API_PREFIX must start with '/'"))
	}
	return errors.Join(errs...)
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
