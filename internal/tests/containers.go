package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-agent/internal"
	"github.com/lk16/othello-agent/internal/config"
	"github.com/lk16/othello-agent/internal/services"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresUser     = "pg-test-user"
	postgresPassword = "pg-test-password"
	postgresDB       = "pg-test-db"
)

// TestContainers runs the Postgres and Redis servers used by integration tests.
type TestContainers struct {
	Postgres testcontainers.Container
	Redis    testcontainers.Container
}

func (tc *TestContainers) Start(ctx context.Context) error {
	// Start PostgreSQL container
	postgresReq := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDB,
		},
		// The server restarts once after running the init scripts.
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	var err error
	tc.Postgres, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: postgresReq,
		Started:          true,
	})
	if err != nil {
		return err
	}

	// Start Redis container
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	tc.Redis, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: redisReq,
		Started:          true,
	})
	if err != nil {
		return err
	}

	return nil
}

func (tc *TestContainers) Stop(ctx context.Context) error {
	if tc.Postgres != nil {
		if err := tc.Postgres.Terminate(ctx); err != nil {
			return err
		}
	}
	if tc.Redis != nil {
		if err := tc.Redis.Terminate(ctx); err != nil {
			return err
		}
	}
	return nil
}

// PostgresURL returns the connection URL of the Postgres container.
func (tc *TestContainers) PostgresURL(ctx context.Context) (string, error) {
	address, err := tc.Postgres.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", postgresUser, postgresPassword, address, postgresDB), nil
}

// RedisURL returns the connection URL of the Redis container.
func (tc *TestContainers) RedisURL(ctx context.Context) (string, error) {
	address, err := tc.Redis.PortEndpoint(ctx, "6379/tcp", "")
	if err != nil {
		return "", err
	}

	return "redis://" + address, nil
}

// StartContainers starts the containers and stops them when the test ends. The test is
// skipped in short mode and when Docker is not available.
func StartContainers(t *testing.T) *TestContainers {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	containers := &TestContainers{}

	t.Cleanup(func() {
		if err := containers.Stop(ctx); err != nil {
			t.Logf("failed to stop containers: %v", err)
		}
	})

	require.NoError(t, containers.Start(ctx))
	return containers
}

// NewServices starts the containers and connects to them like the server does.
func NewServices(t *testing.T) (*config.Config, *services.Services) {
	t.Helper()

	containers := StartContainers(t)
	ctx := context.Background()

	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.PostgresURL, err = containers.PostgresURL(ctx)
	require.NoError(t, err)

	cfg.RedisURL, err = containers.RedisURL(ctx)
	require.NoError(t, err)

	services, err := services.InitServices(cfg)
	require.NoError(t, err)
	t.Cleanup(services.Close)

	require.NoError(t, internal.InitStorage(ctx, services))
	return cfg, services
}

// NewAppWithServices creates an app backed by Postgres and Redis containers.
func NewAppWithServices(t *testing.T) (*fiber.App, *services.Services) {
	t.Helper()

	cfg, services := NewServices(t)
	return internal.SetupApp(cfg, services), services
}
