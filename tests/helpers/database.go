// Package helpers provides the shared infrastructure used by Marquee's
// integration tests.
package helpers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/hbomb79/Marquee/internal/database"
	"github.com/labstack/gommon/random"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	SQLDialect          = "postgres"
	SQLConnectionString = "host=%s user=%s password=%s dbname=%s port=%s sslmode=disable"
	User                = "postgres"
	Password            = "postgres"
	MasterDBName        = "MARQUEE_DB"
)

var dbManager = newDatabaseManager(MasterDBName)

// databaseManager is an internal test helper which facilitates
// the templating of a single 'master' database in a shared postgresql
// docker instance. This allows tests to use individual databases without
// needing to create multiple instances of docker. This manager will:
//   - automatically spawn the container,
//   - migrate the master database,
//   - mark the master database as a template, and,
//   - facilitate provisioning of new databases based off that master database.
type databaseManager struct {
	*sync.Mutex
	masterDatabaseName string
	pgContainer        *postgres.PostgresContainer
	host               string
	port               string
	connection         *sql.DB
}

func newDatabaseManager(databaseName string) *databaseManager {
	return &databaseManager{
		Mutex:              &sync.Mutex{},
		masterDatabaseName: databaseName,
	}
}

// NewDatabase provisions a fresh, fully migrated database for the test
// and returns a database manager connected to it. The connection is closed
// when the test completes. Tests using this are skipped when -short is given.
func NewDatabase(t *testing.T) database.Manager {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	name := "test_" + random.String(16, random.Lowercase)
	dbManager.provisionDB(t, name)

	db, err := sql.Open(SQLDialect, dbManager.dsn(name))
	if err != nil {
		t.Fatalf("failed to open connection to provisioned database '%s': %s", name, err)
	}

	manager := database.NewFromDB(db)
	t.Cleanup(func() { _ = manager.Close() })
	return manager
}

// Teardown stops the shared postgres container, if one was started. It
// should be called from TestMain once all tests have run.
func Teardown() {
	dbManager.disconnect()
}

func (manager *databaseManager) provisionDB(t *testing.T, databaseName string) {
	manager.Lock()
	defer manager.Unlock()

	if manager.connection == nil {
		t.Log("Database provisioning request received but manager not started yet. Initializing database management...")
		manager.connect(t)
		manager.markMasterDB(t)
		t.Log("Database management initialised!")
	}

	_, err := manager.connection.Exec(fmt.Sprintf(`CREATE DATABASE "%s" TEMPLATE "%s"`, databaseName, manager.masterDatabaseName))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			t.Logf("Database '%s' already provisioned. Reusing database", databaseName)
			return
		}

		t.Fatalf("failed to provision database '%s' based on template database '%s': (%T) %s", databaseName, manager.masterDatabaseName, err, err)
	}
}

func (manager *databaseManager) dsn(databaseName string) string {
	return fmt.Sprintf(SQLConnectionString, manager.host, User, Password, databaseName, manager.port)
}

func (manager *databaseManager) connect(t *testing.T) {
	if manager.pgContainer == nil {
		manager.spawnPostgres(t)
	}

	// Connect to the 'postgres' maintenance database so that the master
	// database has no open connections when it is used as a template.
	db, err := sql.Open(SQLDialect, manager.dsn("postgres"))
	if err != nil {
		t.Fatalf("failed to open postgres connection: %s", err)
	}

	for attempt := 1; ; attempt++ {
		if err := db.Ping(); err == nil {
			break
		} else if attempt >= 3 {
			t.Fatalf("all database connection attempts FAILED: %s", err)
		}

		t.Logf("DB connection attempt (%v/3) failed... Retrying in 3s", attempt)
		time.Sleep(3 * time.Second)
	}

	t.Log("Database connection established!")
	manager.connection = db
}

func (manager *databaseManager) markMasterDB(t *testing.T) {
	t.Log("Migrating master database...")
	master, err := sql.Open(SQLDialect, manager.dsn(manager.masterDatabaseName))
	if err != nil {
		t.Fatalf("failed to open master database: %s", err)
	}

	migrator := database.NewFromDB(master)
	if err := migrator.ExecuteMigrations(); err != nil {
		t.Fatalf("failed to migrate master database: %s", err)
	}
	_ = migrator.Close()

	t.Log("Master DB migrated, marking master database as template...")
	if _, err := manager.connection.Exec(fmt.Sprintf(`ALTER DATABASE "%s" WITH is_template TRUE`, manager.masterDatabaseName)); err != nil {
		t.Fatalf("failed to mark master database (%s) as template: %s", manager.masterDatabaseName, err)
	}
}

func (manager *databaseManager) spawnPostgres(t *testing.T) {
	ctx := context.Background()
	postgresC, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:16-alpine"),
		postgres.WithDatabase(manager.masterDatabaseName),
		postgres.WithUsername(User),
		postgres.WithPassword(Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
		testcontainers.WithHostConfigModifier(func(hostConfig *container.HostConfig) {
			hostConfig.Tmpfs = map[string]string{"/var/lib/postgresql/data": "rw"}
		}),
	)
	if err != nil {
		t.Fatalf("failed to start container: %s", err)
	}

	host, err := postgresC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to resolve postgres container host: %s", err)
	}

	port, err := postgresC.MappedPort(ctx, nat.Port("5432/tcp"))
	if err != nil {
		t.Fatalf("failed to resolve postgres container port: %s", err)
	}

	manager.pgContainer = postgresC
	manager.host = strings.TrimSpace(host)
	manager.port = port.Port()
}

func (manager *databaseManager) disconnect() {
	manager.Lock()
	defer manager.Unlock()

	if manager.connection != nil {
		_ = manager.connection.Close()
		manager.connection = nil
	}

	if manager.pgContainer != nil {
		timeout := 5 * time.Second
		if err := manager.pgContainer.Stop(context.Background(), &timeout); err != nil {
			fmt.Printf("WARNING: failed to stop Postgres container: %s\n", err)
		}
		manager.pgContainer = nil
	}
}
