//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestBreezeWithMySQL tests the breeze CLI with a MySQL backend.
func TestBreezeWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "breeze",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/breeze?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("BREEZE_CACHE_BACKEND", "mysql")
	_ = os.Setenv("BREEZE_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("BREEZE_HISTORY_BACKEND", "mysql")
	_ = os.Setenv("BREEZE_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("BREEZE_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("BREEZE_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("BREEZE_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("BREEZE_HISTORY_DB_CONNECT") }()

	runBackendWorkflow(t)
}

// TestBreezeWithPostgres tests the breeze CLI with a PostgreSQL backend.
func TestBreezeWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("BREEZE_CACHE_BACKEND", "postgresql")
	_ = os.Setenv("BREEZE_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("BREEZE_HISTORY_BACKEND", "postgresql")
	_ = os.Setenv("BREEZE_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("BREEZE_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("BREEZE_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("BREEZE_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("BREEZE_HISTORY_DB_CONNECT") }()

	runBackendWorkflow(t)
}

// runBackendWorkflow exercises the analyze and persistence commands against
// whichever backend the environment selects.
func runBackendWorkflow(t *testing.T) {
	bundle := writeSampleBundle(t)

	// Run breeze cache clear
	err := runBreezeCommand(t, "cache", "clear")
	require.NoError(t, err)

	// Run breeze history clear
	err = runBreezeCommand(t, "history", "clear")
	require.NoError(t, err)

	// Run breeze analyze (populates cache and history)
	err = runBreezeCommand(t, "analyze", bundle)
	require.NoError(t, err)

	// Run breeze analyze again (cache hit path)
	err = runBreezeCommand(t, "analyze", bundle)
	require.NoError(t, err)

	// Run breeze cache status
	err = runBreezeCommand(t, "cache", "status")
	require.NoError(t, err)

	// Run breeze history status
	err = runBreezeCommand(t, "history", "status")
	require.NoError(t, err)
}
