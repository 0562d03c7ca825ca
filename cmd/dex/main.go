package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mmcdole/dex/internal/adapter"
	"github.com/mmcdole/dex/internal/adapter/source"
	"github.com/mmcdole/dex/internal/catalog"
	"github.com/mmcdole/dex/internal/detail"
	"github.com/mmcdole/dex/internal/domain"
	"github.com/mmcdole/dex/internal/store"
	"github.com/mmcdole/dex/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	flags := pflag.NewFlagSet("dex", pflag.ContinueOnError)
	configFile := flags.StringP("config", "c", "", "path to config file")
	showVersion := flags.BoolP("version", "v", false, "print version")
	writeConfig := flags.Bool("write-config", false, "write the effective config to the default location and exit")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("base-url", "", "catalog API base URL")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *showVersion {
		fmt.Printf("dex %s\n", Version)
		return
	}

	// Only flags given on the command line override file and env values
	v := viper.New()
	for flag, key := range map[string]string{
		"log-level": "logging.level",
		"base-url":  "server.base_url",
	} {
		if f := flags.Lookup(flag); f.Changed {
			_ = v.BindPFlag(key, f)
		}
	}

	if err := run(v, *configFile, *writeConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(v *viper.Viper, configFile string, writeConfig bool) error {
	cfg, err := adapter.LoadConfig(v, configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if writeConfig {
		if err := adapter.SaveConfig(v, cfg); err != nil {
			return err
		}
		fmt.Println("✓ Configuration saved!")
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("dex needs an interactive terminal")
	}

	logger, logCloser, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer logCloser.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting dex", "version", Version, "base_url", cfg.Server.BaseURL)

	client, err := source.NewClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	cache, err := store.NewDetailStore(cfg.Cache.SpillDir)
	if err != nil {
		return fmt.Errorf("failed to open detail cache: %w", err)
	}
	defer cache.Close()

	presenter := tui.NewPresenter()
	catalogStore := catalog.NewStore(client, cfg.Catalog.EntryLimit, logger)
	resolver := catalog.NewResolver(client, cfg.Catalog.CategoryLimit, logger)
	browser := catalog.NewBrowser(catalogStore, resolver, domain.Generations, presenter, logger)
	details := detail.NewService(client, cache, logger)

	model := tui.NewModel(browser, resolver, details, presenter, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
