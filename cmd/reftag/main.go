package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/reftag/reftag/autotag"
	"github.com/reftag/reftag/config"
	"github.com/reftag/reftag/library"
	"github.com/reftag/reftag/llm"
	reftaglogger "github.com/reftag/reftag/logger"
	"github.com/reftag/reftag/migrations"
	"github.com/reftag/reftag/notify"
	"github.com/reftag/reftag/ui/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: reftag [flags] <command> [args]

Commands:
  tag [flags] KEY...   suggest and apply tags for the named library records
  settings             open the interactive settings form

Flags:
`)
	flag.PrintDefaults()
}

func run() error {
	var (
		configPath = flag.String("config", config.GetConfigPath(), "Path to the config file")
		logFile    = flag.String("logfile", "", "Path to log file. If not set, logs to stderr")
	)
	flag.Usage = usage
	flag.Parse()

	logger, err := reftaglogger.InitWithOptions(*logFile, *logFile == "")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "tag":
		return runTag(logger, *configPath, args[1:])
	case "settings":
		return tui.RunSettings(*configPath, logger)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runTag(logger zerolog.Logger, configPath string, argv []string) error {
	fs := flag.NewFlagSet("tag", flag.ExitOnError)
	var (
		untagged = fs.Bool("untagged", false, "Tag every record in the library that has no tags yet")
		desktop  = fs.Bool("notify", false, "Also deliver the run summary as a desktop notification")
		dbPath   = fs.String("db", "", "Path to the library database (overrides config)")
	)
	if err := fs.Parse(argv); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	llmCfg := cfg.LLM()
	provider := llm.ForName(cfg.Provider, llmCfg)

	path := cfg.Library.Path
	if *dbPath != "" {
		path = *dbPath
	}
	path = config.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open library database: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db, logger); err != nil {
		return err
	}
	store := library.NewStore(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := fs.Args()
	if *untagged {
		if len(keys) > 0 {
			return fmt.Errorf("--untagged cannot be combined with explicit keys")
		}
		keys, err = store.UntaggedKeys(ctx)
		if err != nil {
			return fmt.Errorf("failed to list untagged records: %w", err)
		}
	}
	keys = lo.Uniq(keys)
	if len(keys) == 0 {
		return fmt.Errorf("no records selected; pass record keys or --untagged")
	}

	// Snapshot the batch once; the run tags by these keys even if the
	// library changes while the preview is open.
	recs, err := store.Metadata(ctx, keys)
	if err != nil {
		return fmt.Errorf("failed to read record metadata: %w", err)
	}
	if len(recs) == 0 {
		return fmt.Errorf("none of the selected keys exist in the library")
	}

	records := lo.Map(recs, func(r library.Record, _ int) autotag.RecordMetadata {
		return autotag.RecordMetadata{
			Key:         r.Key,
			ItemType:    r.ItemType,
			Title:       r.Title,
			Creators:    r.Creators,
			Publication: r.Publication,
			Date:        r.Date,
			Tags:        r.Tags,
			Abstract:    r.Abstract,
		}
	})

	var editor autotag.Editor
	if autotag.StdinIsTerminal() {
		editor = autotag.NewTerminalEditor()
	}

	pipeline := &autotag.Pipeline{
		Provider:     provider,
		Model:        llmCfg.ModelFor(provider.Name()),
		Template:     cfg.Prompt,
		SeedKeywords: cfg.SeedKeywords,
		Store:        store,
		Editor:       editor,
		Logger:       logger,
	}

	result, err := pipeline.Run(ctx, records)
	if err != nil {
		return err
	}

	fmt.Println(result.Summary())
	if *desktop {
		notify.NewDesktop(logger).Notify("reftag", result.Summary())
	}
	return nil
}
