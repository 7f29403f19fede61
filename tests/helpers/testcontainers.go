// testcontainers.go
//
// Container plumbing for integration testing and local development: a
// MySQL container configured from the environment, ready when the server
// both listens and answers a ping.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DatabaseContainer is a running MySQL test container with its mapped
// host endpoint.
type DatabaseContainer struct {
	Container testcontainers.Container
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// StartDatabaseContainer launches a MySQL container and waits until it
// accepts connections.
func StartDatabaseContainer(ctx context.Context) (*DatabaseContainer, error) {
	dbc := &DatabaseContainer{
		Database: envOr("DB_DATABASE", "salon_test"),
		User:     envOr("DB_USER", "salon"),
		Password: envOr("DB_PASSWORD", "salon_secret"),
	}

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("DB_IMAGE", "mysql:8.4"),
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": dbc.Password,
				"MYSQL_DATABASE":      dbc.Database,
				"MYSQL_USER":          dbc.User,
				"MYSQL_PASSWORD":      dbc.Password,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start database container: %w", err)
	}
	dbc.Container = container

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	dbc.Host = host
	dbc.Port = mapped.Port()

	if err := dbc.awaitReady(ctx); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return dbc, nil
}

// awaitReady pings until MySQL finishes its init phase. The listening
// port comes up before the server accepts credentials.
func (dbc *DatabaseContainer) awaitReady(ctx context.Context) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbc.User, dbc.Password, dbc.Host, dbc.Port, dbc.Database)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err := sql.Open("mysql", dsn)
		if err == nil {
			err = db.PingContext(ctx)
			_ = db.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("database never became ready: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}

// Terminate stops the container, logging rather than failing on error.
func (dbc *DatabaseContainer) Terminate(t *testing.T) {
	if dbc == nil || dbc.Container == nil {
		return
	}
	if err := dbc.Container.Terminate(context.Background()); err != nil {
		if t != nil {
			t.Logf("Failed to terminate database container: %v", err)
		}
	}
}
