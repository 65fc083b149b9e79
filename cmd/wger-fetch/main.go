package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/claude/wgerfetch/internal/config"
	"github.com/claude/wgerfetch/internal/importer"
	"github.com/claude/wgerfetch/internal/storage"
	"github.com/claude/wgerfetch/internal/taxonomy"
	"github.com/claude/wgerfetch/internal/wger"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	outPath := flag.String("out", "", "output JSON path (overrides config)")
	migrationsPath := flag.String("migrations", "migrations", "path to Postgres migrations")
	dryRun := flag.Bool("dry-run", false, "convert and report without writing any output")
	audit := flag.Bool("audit", false, "report wger vocabulary missing from the mapping tables and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("wger-fetch", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	opts := options{
		configPath:     *configPath,
		outPath:        *outPath,
		migrationsPath: *migrationsPath,
		dryRun:         *dryRun,
		audit:          *audit,
	}
	if err := run(opts, log); err != nil {
		log.Error("wger-fetch failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	configPath     string
	outPath        string
	migrationsPath string
	dryRun         bool
	audit          bool
}

// run does the work of main so deferred closes happen before the process exits.
func run(opts options, log *slog.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.outPath != "" {
		cfg.Output.Path = opts.outPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := wger.NewClient(cfg.API.BaseURL, cfg.API.UserAgent, cfg.API.Timeout)

	if opts.audit {
		return runAudit(ctx, client)
	}

	sinks := []storage.Sink{&storage.JSONFile{Path: cfg.Output.Path}}
	if !opts.dryRun {
		if cfg.Output.SQLite != "" {
			sqlite, err := storage.OpenSQLite(cfg.Output.SQLite)
			if err != nil {
				return fmt.Errorf("opening sqlite export: %w", err)
			}
			defer sqlite.Close()
			sinks = append(sinks, sqlite)
		}

		if cfg.Database.Enabled() {
			dsn := cfg.Database.DSN()
			if err := storage.RunMigrations(dsn, opts.migrationsPath); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			db, err := storage.New(ctx, dsn)
			if err != nil {
				return fmt.Errorf("connecting database: %w", err)
			}
			defer db.Close()
			log.Info("database connected")
			sinks = append(sinks, db)
		}
	} else {
		log.Info("DRY RUN mode - nothing will be written")
	}

	imp := importer.New(client, sinks, cfg.API.Language, opts.dryRun, log)
	stats, err := imp.Run(ctx)
	printStats(stats)
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}
	return nil
}

func printStats(stats *importer.Stats) {
	fmt.Println()
	fmt.Println("=== Stats ===")
	fmt.Printf("  Records fetched:  %d\n", stats.RecordsFetched)
	fmt.Printf("  Transformed:      %d\n", stats.Converted)
	fmt.Printf("  No English text:  %d\n", stats.Skipped)
	fmt.Printf("  Errored:          %d\n", stats.Errored)
	fmt.Printf("  Categories:       [%s]\n", strings.Join(stats.Categories, ", "))
	fmt.Printf("  Equipment types:  [%s]\n", strings.Join(stats.Equipment, ", "))
	fmt.Println()
}

// runAudit lists source terms that only map through the lower-casing fallback.
func runAudit(ctx context.Context, client *wger.Client) error {
	listings := []struct {
		kind taxonomy.Kind
		path string
	}{
		{taxonomy.KindCategory, wger.ExerciseCategoryPath},
		{taxonomy.KindMuscle, wger.MusclePath},
		{taxonomy.KindEquipment, wger.EquipmentPath},
	}

	for _, l := range listings {
		names, err := client.FetchNames(ctx, l.path)
		if err != nil {
			return fmt.Errorf("fetching %s list: %w", l.kind, err)
		}
		unmapped, err := taxonomy.Audit(l.kind, names)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d terms, %d unmapped\n", l.kind, len(names), len(unmapped))
		for _, u := range unmapped {
			fmt.Printf("  - %s\n", u)
		}
	}
	return nil
}
