package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-lifecycle/internal/models/m_outbox"
)

// Retention job for processed outbox events. Completed and failed events
// older than their retention windows are removed; pending and processing
// events are never touched.
type Config struct {
	SpannerDB              string
	CompletedRetentionDays int
	FailedRetentionDays    int
	DryRun                 bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.CompletedRetentionDays, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&config.FailedRetentionDays, "failed-retention", 90, "Retention days for failed events")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if config.SpannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}

	ctx := context.Background()
	if err := cleanupOutbox(ctx, config); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}
	log.Println("Cleanup completed successfully")
}

const cutoffFilter = `(status = '` + m_outbox.StatusCompleted + `' AND processed_at < @completedCutoff)
   OR (status = '` + m_outbox.StatusFailed + `' AND processed_at < @failedCutoff)`

func cleanupOutbox(ctx context.Context, config Config) error {
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	params := map[string]interface{}{
		"completedCutoff": now.AddDate(0, 0, -config.CompletedRetentionDays),
		"failedCutoff":    now.AddDate(0, 0, -config.FailedRetentionDays),
	}

	log.Printf("Starting outbox cleanup (completed retention: %dd, failed retention: %dd, dry run: %v)",
		config.CompletedRetentionDays, config.FailedRetentionDays, config.DryRun)

	if config.DryRun {
		return reportCandidates(ctx, client, params)
	}

	_, err = client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		deleted, err := txn.Update(ctx, spanner.Statement{
			SQL:    "DELETE FROM outbox_events WHERE " + cutoffFilter,
			Params: params,
		})
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		log.Printf("Deleted %d events", deleted)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}
	return nil
}

func reportCandidates(ctx context.Context, client *spanner.Client, params map[string]interface{}) error {
	stmt := spanner.Statement{
		SQL:    "SELECT status, COUNT(*) FROM outbox_events WHERE " + cutoffFilter + " GROUP BY status",
		Params: params,
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	total := int64(0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to query events: %w", err)
		}

		var status string
		var count int64
		if err := row.Columns(&status, &count); err != nil {
			return fmt.Errorf("failed to parse row: %w", err)
		}
		log.Printf("  Would delete %d %s events", count, status)
		total += count
	}

	log.Printf("DRY RUN: would delete %d total events; run without -dry-run to delete", total)
	return nil
}
