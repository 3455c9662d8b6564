package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	projectID  = flag.String("project", envOr("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", envOr("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", envOr("SPANNER_DATABASE_ID", "catalog-lifecycle-db"), "Spanner database ID")
	migrateDir = flag.String("migrations", "migrations", "Directory containing migration SQL files")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Printf("Using Spanner emulator at %s", host)
	}

	if err := run(ctx); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}

func run(ctx context.Context) error {
	if err := ensureInstance(ctx); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := ensureDatabase(ctx); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := applyMigrations(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func ensureInstance(ctx context.Context) error {
	admin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer admin.Close()

	name := fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID)
	if _, err := admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: name}); err == nil {
		return nil
	} else if status.Code(err) != codes.NotFound {
		log.Printf("Warning: unexpected error checking instance: %v", err)
		return nil
	}

	log.Printf("Creating instance %s...", *instanceID)
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     fmt.Sprintf("projects/%s", *projectID),
		InstanceId: *instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", *projectID),
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		// The emulator can complete the operation before Wait observes it.
		log.Printf("Warning during instance creation: %v", err)
	}
	return nil
}

func ensureDatabase(ctx context.Context) error {
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database admin client: %w", err)
	}
	defer admin.Close()

	name := dbPath()
	if _, err := admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: name}); err == nil {
		return nil
	} else if status.Code(err) != codes.NotFound {
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			log.Printf("Proceeding with database (emulator mode): %v", err)
			return nil
		}
		return fmt.Errorf("failed to check database: %w", err)
	}

	log.Printf("Creating database %s...", *databaseID)
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

func applyMigrations(ctx context.Context) error {
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database admin client: %w", err)
	}
	defer admin.Close()

	files, err := filepath.Glob(filepath.Join(*migrateDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migration files: %w", err)
	}
	if len(files) == 0 {
		log.Println("No migration files found")
		return nil
	}

	for _, file := range files {
		log.Printf("Applying %s...", filepath.Base(file))

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   dbPath(),
			Statements: splitDDLStatements(string(content)),
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", file, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", file, err)
		}
	}
	return nil
}

// splitDDLStatements strips SQL comments and splits on semicolons; the
// admin API takes one DDL statement per entry.
func splitDDLStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func dbPath() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
