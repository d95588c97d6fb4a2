//go:build e2e

package e2etest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"salon-backend/cmd/bootstrap"
	"salon-backend/cmd/bootstrap/components"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/testutil/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const migrationFile = "migrations/001_initial_schema.sql"

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// SharedSuite boots one application per suite against its own database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	info := startPostgres(t)
	pool, dbCfg := prepareDatabase(t, info)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	router, app := buildApp(t, cfg)

	s.DB = pool
	s.Router = router
	s.Config = cfg

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop e2e application", "error", err)
		}
	})
}

// SetupSubTest starts every s.Run case from empty tables.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}

func startPostgres(t *testing.T) ContainerInfo {
	t.Helper()

	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		postgresContainer, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
						testUser, testPassword, host, port.Port())
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
	})
	require.NoError(t, postgresErr, "failed to start postgres container")

	ctx := context.Background()
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	return ContainerInfo{Host: host, Port: port}
}

func prepareDatabase(t *testing.T, info ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to connect as admin")
	defer admin.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(min(time.Duration(500+attempt*500)*time.Millisecond, 3*time.Second))
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", createErr)
	}
	require.NoError(t, createErr, "failed to create test database")

	dbCfg := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	pool, err := pgxpool.New(ctx, fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port(), dbName))
	require.NoError(t, err, "failed to connect to test database")

	require.NoError(t, applyMigrations(ctx, pool), "failed to apply migrations")

	t.Cleanup(func() {
		pool.Close()
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		cleanup, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for cleanup", "database", dbName, "error", err)
			return
		}
		defer cleanup.Close()
		if _, err := cleanup.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err)
		}
	})

	return pool, dbCfg
}

// applyMigrations looks for the schema relative to the package directory go test runs in.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	var (
		content []byte
		err     error
	)
	for _, dir := range []string{".", "..", "../..", "../../..", "../../../.."} {
		content, err = os.ReadFile(filepath.Join(dir, migrationFile))
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", migrationFile, err)
	}
	if _, err := pool.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute %s: %w", migrationFile, err)
	}
	return nil
}

func buildApp(t *testing.T, cfg config.Config) (*gin.Engine, *fx.App) {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Provide(
			func() config.Config { return cfg },
			clock.NewRealClock,
			bootstrap.NewAppLocation,
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		bootstrap.TelemetryModule,
		components.PersistenceModule,
		components.IntegrationModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start e2e application")
	require.NotNil(t, router)
	return router, app
}
