//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"fitcoach-booking/cmd/bootstrap"
	"fitcoach-booking/cmd/bootstrap/components"
	"fitcoach-booking/internal/infra/db"
	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/usecase/commands"
	"fitcoach-booking/tests/common/dbtest"

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

const (
	pgUser     = "fitcoach"
	pgPassword = "fitcoach"
	pgPort     = nat.Port("5432/tcp")
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
)

// SharedSuite boots one database per test binary and the HTTP stack without the cron worker.
// Suites drive the outbox through Dispatcher instead.
type SharedSuite struct {
	suite.Suite
	Router     *gin.Engine
	DB         *pgxpool.Pool
	Config     config.Config
	Dispatcher commands.NotificationDispatcher
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := postgresAddr(t)
	dbCfg := createDatabase(t, host, port)
	pool, _, err := db.Connect(dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)
	require.NoError(t, applyMigrations(pool), "マイグレーションに失敗")

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	s.DB = pool
	s.Config = cfg

	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.LiveModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&s.Router, &s.Dispatcher),
		fx.NopLogger,
	)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")
	t.Cleanup(func() {
		stopCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "データのリセットに失敗")
}

// postgresAddr starts the shared container on first use and returns its mapped address.
func postgresAddr(t *testing.T) (string, string) {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		pgContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
					"TZ":                "Asia/Seoul",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "max_connections=200"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "fitcoach-e2e"},
			},
			Started: true,
		})
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
	})
	require.NotNil(t, pgContainer, "PostgreSQLコンテナがありません")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	return host, port.Port()
}

// createDatabase gives each test binary its own database so packages can run in parallel.
func createDatabase(t *testing.T, host, port string) config.DBConfig {
	name := "fitcoach_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		pool, err := pgxpool.New(dropCtx, adminDSN)
		if err != nil {
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Seoul",
		MaxConns: 20,
	}
}

// applyMigrations runs migrations/*.sql in file order, the same files atlas applies in cmd/migrate.
func applyMigrations(pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// migrationsDir walks up from the package directory to the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above working directory")
		}
		dir = parent
	}
}
