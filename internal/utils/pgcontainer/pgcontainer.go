package pgcontainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
)

const (
	pgPort     = "5432/tcp"
	defaultTag = "16-alpine"

	dbName       = "test"
	userName     = "test"
	userPassword = "test"
)

// ErrDockerUnavailable means no Docker daemon answered; integration
// tests should be skipped.
var ErrDockerUnavailable = errors.New("docker is unavailable")

// PGContainer runs a throwaway PostgreSQL container for integration tests.
type PGContainer struct {
	log       *slog.Logger
	pool      *dockertest.Pool
	container *dockertest.Resource
	dsn       string
}

func New(log *slog.Logger) *PGContainer {
	return &PGContainer{log: log}
}

// RunContainer starts postgres and waits until it accepts connections.
// The image tag comes from POSTGRES_TAG.
func (c *PGContainer) RunContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDockerUnavailable, err)
	}
	if err = pool.Client.Ping(); err != nil {
		return fmt.Errorf("%w: %w", ErrDockerUnavailable, err)
	}
	c.pool = pool

	tag := os.Getenv("POSTGRES_TAG")
	if tag == "" {
		tag = defaultTag
	}

	container, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        tag,
			Env: []string{
				"POSTGRES_USER=" + userName,
				"POSTGRES_PASSWORD=" + userPassword,
				"POSTGRES_DB=" + dbName,
			},
			ExposedPorts: []string{pgPort},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return fmt.Errorf("failed to run postgres container: %w", err)
	}
	c.container = container
	if err = container.Expire(120); err != nil {
		c.log.LogAttrs(context.TODO(), slog.LevelWarn,
			"failed to set container expiry", slog.Any(model.KeyLoggerError, err))
	}

	c.dsn = fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		userName,
		userPassword,
		container.GetHostPort(pgPort),
		dbName,
	)

	pool.MaxWait = 30 * time.Second
	if err = pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		conn, err := pgx.Connect(ctx, c.dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to the DB: %w", err)
		}
		return conn.Close(ctx)
	}); err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}

	return nil
}

func (c *PGContainer) GetDSN() string {
	return c.dsn
}

func (c *PGContainer) Close() {
	if c.pool == nil || c.container == nil {
		return
	}
	if err := c.pool.Purge(c.container); err != nil {
		c.log.LogAttrs(context.TODO(), slog.LevelError,
			"failed to purge the postgres container",
			slog.Any(model.KeyLoggerError, err))
	}
}
