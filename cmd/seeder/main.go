// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ammerola/fifo-ledger/internal/bootstrap"
	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/pkg/config"
	"github.com/ammerola/fifo-ledger/internal/pkg/logger"
)

func main() {
	var (
		reset    = flag.Bool("reset", false, "Delete all products, batches and sales before seeding")
		scenario = flag.Bool("scenario", false, "Apply the two-product demo scenario")
		products = flag.Int("products", 0, "Generate a random history for this many products")
		events   = flag.Int("events", 12, "Events per generated product")
		seed     = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed for generated products")
		migrate  = flag.Bool("migrate", false, "Apply schema migrations first")
		rollback = flag.Bool("rollback", false, "Revert the most recent schema migration and exit")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Print the generated events without touching the database")
	)
	flag.Parse()

	slogger := logger.NewLogger(&logger.LogConfig{
		Level:       *logLevel,
		Format:      "text",
		ServiceName: "fifo-ledger-seeder",
	})
	slog.SetDefault(slogger)

	if !*reset && !*scenario && !*rollback && *products <= 0 {
		fmt.Fprintln(os.Stderr, "nothing to do: pass -reset, -scenario, -rollback and/or -products N")
		flag.Usage()
		os.Exit(2)
	}

	generated := generateEvents(GeneratorConfig{
		Products:         *products,
		EventsPerProduct: *events,
		Seed:             *seed,
	}, time.Now())

	if *dryRun {
		for _, raw := range generated {
			price := ""
			if raw.UnitPrice != nil {
				price = raw.UnitPrice.StringFixed(2)
			}
			fmt.Printf("%s %-8s %-9s %6s %8s\n", raw.Timestamp, raw.ProductID, raw.EventType, raw.Quantity, price)
		}
		fmt.Println("\n[DRY RUN] No changes were made to the database")
		return
	}

	ctx := context.Background()

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sm, err := config.NewSecretsManager(ctx, cfg, slogger)
	if err == nil {
		err = config.ResolveSecrets(ctx, cfg, sm)
	}
	if err != nil {
		slogger.Error("failed to resolve secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *rollback {
		version, err := bootstrap.RollbackMigration(ctx, cfg, slogger)
		if err != nil {
			slogger.Error("failed to roll back migration", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("ROLLBACK: schema now at version %d\n", version)
		return
	}

	if *migrate {
		cfg.Database.RunMigrations = true
		if err := bootstrap.Migrate(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	database, err := bootstrap.OpenDatabase(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	// Events are applied inline; the seeder never goes through the queue.
	core, err := bootstrap.NewCore(database, cfg, bootstrap.Options{}, slogger)
	if err != nil {
		slogger.Error("failed to assemble ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *reset {
		result, err := core.Reset.ResetAll(ctx)
		if err != nil {
			slogger.Error("reset failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, tc := range result.Tables {
			fmt.Printf("RESET: %-26s %d rows\n", tc.Table, tc.Deleted)
		}
	}

	if *scenario {
		report, err := core.Gateway.SimulateScenario(ctx)
		if err != nil {
			slogger.Error("demo scenario interrupted", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, r := range report.Results {
			if !r.Success {
				fmt.Printf("ERROR: scenario event %d (%s %s) - %s\n", r.Index, r.EventType, r.ProductID, r.Error)
			}
		}
		fmt.Printf("SCENARIO: %d events, %d applied, %d failed\n", report.Total, report.Successful, report.Failed)
		if report.Failed > 0 {
			os.Exit(1)
		}
	}

	applied, failed := 0, 0
	for i, raw := range generated {
		if _, err := core.Gateway.Process(ctx, raw); err != nil {
			failed++
			fmt.Printf("ERROR: event %d (%s %s) - %v\n", i+1, raw.EventType, raw.ProductID, err)
			continue
		}
		applied++
		if applied%100 == 0 {
			fmt.Printf("PROGRESS: %d/%d events applied\n", applied, len(generated))
		}
	}

	statuses, err := core.Inventory.GetAllInventoryStatus(ctx)
	if err != nil {
		slogger.Error("failed to load inventory status", slog.String("error", err.Error()))
		os.Exit(1)
	}
	printSummary(statuses, applied, failed)

	slogger.Info("seed operation completed",
		slog.Int("events_applied", applied),
		slog.Int("events_failed", failed),
		slog.Int("products", len(statuses)))

	if failed > 0 {
		os.Exit(1)
	}
}

func printSummary(statuses []domain.InventoryStatus, applied, failed int) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING OPERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Generated events applied: %d\n", applied)
	if failed > 0 {
		fmt.Printf("Generated events failed:  %d\n", failed)
	}
	fmt.Printf("\n%-10s %10s %14s %12s %8s\n", "PRODUCT", "ON HAND", "VALUE", "AVG COST", "BATCHES")
	for _, s := range statuses {
		fmt.Printf("%-10s %10d %14s %12s %8d\n",
			s.ProductID, s.TotalQuantity, s.TotalCost.StringFixed(2), s.AverageCost.StringFixed(4), len(s.Batches))
	}
}
