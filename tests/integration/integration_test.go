package integration_test

import (
	"context"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lorekeep/lorekeep/internal/config"
	"github.com/lorekeep/lorekeep/internal/database"
	"github.com/lorekeep/lorekeep/internal/handlers"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/services"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/tests/helpers"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestWithMariaDB tests the record store against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("RecordLifecycle", func(t *testing.T) {
		testRecordLifecycle(t, db)
	})

	t.Run("CreatorQuery", func(t *testing.T) {
		testCreatorQuery(t, db)
	})

	t.Run("BlueprintCascadeDelete", func(t *testing.T) {
		testBlueprintCascadeDelete(t, db)
	})

	t.Run("HandlerOwnership", func(t *testing.T) {
		testHandlerOwnership(t, db)
	})
}

// TestWithPostgreSQL tests the record store against a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("POSTGRES_IMAGE"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	// Get container host and port
	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("RecordLifecycle", func(t *testing.T) {
		testRecordLifecycle(t, db)
	})

	t.Run("CreatorQuery", func(t *testing.T) {
		testCreatorQuery(t, db)
	})

	t.Run("HandlerOwnership", func(t *testing.T) {
		testHandlerOwnership(t, db)
	})
}

// testRecordLifecycle tests create, merge-update, and delete through the repository
func testRecordLifecycle(t *testing.T, db *gorm.DB) {
	reg := repository.NewRegistry(store.NewGormStore(db))

	// Create
	ctxNote := &models.Context{Name: "The Sunken City", Content: "Drowned long ago."}
	id, ok := reg.Contexts.Add(ctxNote)
	if !ok {
		t.Fatal("Failed to add context")
	}

	// Retrieve
	got, ok := reg.Contexts.Get(id)
	if !ok {
		t.Fatalf("Failed to get context %s", id)
	}
	if got.Name != "The Sunken City" {
		t.Errorf("Expected name 'The Sunken City', got %q", got.Name)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	// Merge update: change content only, name must survive
	got.Content = "Rediscovered by divers."
	if !reg.Contexts.Update(got) {
		t.Fatal("Failed to update context")
	}
	updated, ok := reg.Contexts.Get(id)
	if !ok {
		t.Fatal("Failed to get updated context")
	}
	if updated.Name != "The Sunken City" {
		t.Errorf("Merge update lost name, got %q", updated.Name)
	}
	if updated.Content != "Rediscovered by divers." {
		t.Errorf("Expected updated content, got %q", updated.Content)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("Expected updated_at to be set after update")
	}

	// Delete
	if !reg.Contexts.Delete(id) {
		t.Fatal("Failed to delete context")
	}
	if _, ok := reg.Contexts.Get(id); ok {
		t.Error("Expected context to be gone after delete")
	}
}

// testCreatorQuery tests the JSON equality filter against a real driver
func testCreatorQuery(t *testing.T, db *gorm.DB) {
	reg := repository.NewRegistry(store.NewGormStore(db))

	aliceID := helpers.CreateTestUser(t, db, "alice-cq", "alice-cq@example.test")
	bobID := helpers.CreateTestUser(t, db, "bob-cq", "bob-cq@example.test")

	helpers.CreateTestWorld(t, db, aliceID, "Alicia Prime", true)
	helpers.CreateTestWorld(t, db, aliceID, "Alicia Secunda", false)
	helpers.CreateTestWorld(t, db, bobID, "Bobtopia", true)

	worlds := reg.Worlds.Query([]store.Filter{
		{Field: "creator_id", Op: store.OpEqual, Value: aliceID},
	}, 0)
	if len(worlds) != 2 {
		t.Fatalf("Expected 2 worlds for creator, got %d", len(worlds))
	}
	for _, w := range worlds {
		if w.CreatorID != aliceID {
			t.Errorf("Query returned world for wrong creator: %s", w.CreatorID)
		}
		if !strings.HasPrefix(w.Name, "Alicia") {
			t.Errorf("Unexpected world in result: %q", w.Name)
		}
	}
}

// testBlueprintCascadeDelete drives the delete route against a real database
func testBlueprintCascadeDelete(t *testing.T, db *gorm.DB) {
	reg := repository.NewRegistry(store.NewGormStore(db))

	ownerID := helpers.CreateTestUser(t, db, "carol-bcd", "carol-bcd@example.test")
	owner, ok := reg.Users.Get(ownerID)
	if !ok {
		t.Fatal("Failed to load seeded owner")
	}

	blueprint := &models.Blueprint{Name: "Doomed Blueprint", CreatorID: ownerID}
	bpID, ok := reg.Blueprints.Add(blueprint)
	if !ok {
		t.Fatal("Failed to add blueprint")
	}

	world := &models.World{Name: "Cascade World", CreatorID: ownerID, BlueprintIDs: []string{bpID}}
	worldID, ok := reg.Worlds.Add(world)
	if !ok {
		t.Fatal("Failed to add world")
	}

	object := &models.Object{Name: "Doomed Object", CreatorID: ownerID, BlueprintID: bpID}
	objectID, ok := reg.Objects.Add(object)
	if !ok {
		t.Fatal("Failed to add object")
	}

	app := newTestApp(reg, owner)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/blueprint/"+bpID+"/delete", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 204)
	helpers.AssertNoContent(t, resp)

	if _, ok := reg.Blueprints.Get(bpID); ok {
		t.Error("Expected blueprint to be deleted")
	}
	if _, ok := reg.Objects.Get(objectID); ok {
		t.Error("Expected instantiated object to be deleted")
	}
	detached, ok := reg.Worlds.Get(worldID)
	if !ok {
		t.Fatal("Expected world to survive the cascade")
	}
	for _, id := range detached.BlueprintIDs {
		if id == bpID {
			t.Error("Expected blueprint id to be detached from world")
		}
	}
}

// testHandlerOwnership tests the private-record gate end to end
func testHandlerOwnership(t *testing.T, db *gorm.DB) {
	reg := repository.NewRegistry(store.NewGormStore(db))

	ownerID := helpers.CreateTestUser(t, db, "dave-ho", "dave-ho@example.test")
	strangerID := helpers.CreateTestUser(t, db, "erin-ho", "erin-ho@example.test")
	stranger, ok := reg.Users.Get(strangerID)
	if !ok {
		t.Fatal("Failed to load seeded stranger")
	}

	privateID := helpers.CreateTestWorld(t, db, ownerID, "Private Realm", false)
	publicID := helpers.CreateTestWorld(t, db, ownerID, "Public Realm", true)

	app := newTestApp(reg, stranger)

	// Private world of another user -> 403
	resp, err := app.Test(httptest.NewRequest("GET", "/api/world/"+privateID, nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 403)

	var body map[string]interface{}
	helpers.ParseJSON(t, resp, &body)
	if body["ok"] != false {
		t.Errorf("Expected ok=false in error envelope, got %v", body["ok"])
	}

	// Public world of another user -> 200
	resp, err = app.Test(httptest.NewRequest("GET", "/api/world/"+publicID, nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var world map[string]interface{}
	helpers.ParseJSON(t, resp, &world)
	if world["name"] != "Public Realm" {
		t.Errorf("Expected public world payload, got %v", world["name"])
	}
}

// newTestApp builds a fiber app with the entity routes and a fixed user,
// sidestepping the authorizer for direct handler tests.
func newTestApp(reg *repository.Registry, user *models.User) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", user)
		return c.Next()
	})

	worldHandler := &handlers.WorldHandler{Reg: reg}
	blueprintHandler := &handlers.BlueprintHandler{Reg: reg}

	api := app.Group("/api")
	api.Get("/world/:id", worldHandler.GetWorld)
	api.Get("/blueprint/:id/delete", blueprintHandler.DeleteBlueprint)
	api.Get("/blueprint/:id", blueprintHandler.GetBlueprint)

	return app
}

// TestHealthCheck tests the health check functionality
func TestHealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:     "mysql",
		DBHost:     host,
		DBPort:     port.Port(),
		DBDatabase: "testdb",
		DBUser:     "testuser",
		DBPassword: "testpass",
		AuthzURL:   "http://localhost:9999", // Non-existent service
	}

	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run health check
	result := services.HealthCheck(cfg, db)

	// Database should be healthy
	if result.Database != "ok" {
		t.Errorf("Expected database to be ok, got: %s", result.Database)
	}

	// Authorizer should be unreachable
	if result.Authorizer != "unreachable" {
		t.Errorf("Expected authorizer to be unreachable, got: %s", result.Authorizer)
	}

	// Overall status should be unhealthy
	if result.Status != "unhealthy" {
		t.Errorf("Expected status to be unhealthy, got: %s", result.Status)
	}
}
