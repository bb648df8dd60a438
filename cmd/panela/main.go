// Panela — a terminal recipe browser for Brazilian home cooking.
//
// Usage:
//
//	panela [-config path] [-verbose] [-quiet] [-ephemeral]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/joho/godotenv"

	"github.com/hammamikhairi/panela/internal/account"
	"github.com/hammamikhairi/panela/internal/app"
	"github.com/hammamikhairi/panela/internal/catalog"
	"github.com/hammamikhairi/panela/internal/config"
	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/favorites"
	"github.com/hammamikhairi/panela/internal/logger"
	"github.com/hammamikhairi/panela/internal/prefs"
	"github.com/hammamikhairi/panela/internal/storage"
	"github.com/hammamikhairi/panela/internal/ui"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", config.DefaultPath(), "path to the TOML config file")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", "", "file to write logs to (overrides the config; use \"stderr\" to log to console)")
	ephemeral := flag.Bool("ephemeral", false, "keep favorites, accounts and preferences in memory only")
	writeConfig := flag.Bool("write-config", false, "write the annotated sample config and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.WriteSample(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote", *configPath)
		return
	}

	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "error: panela needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Configure logger. Flags win over the config file.
	logLevel := logger.ParseLevel(cfg.Logging.Level)
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the alt screen stays clean.
	logPath := cfg.Paths.LogFile
	if *logFile != "" {
		logPath = *logFile
	}
	var logOut io.Writer = os.Stderr
	if logPath != "" && logPath != "stderr" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", logPath, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by third-party libs) to the
	// same output so it doesn't corrupt the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Wire the key-value store.
	var store domain.KeyValueStore
	if *ephemeral {
		store = storage.NewMemory(log)
		log.Info("running ephemeral: nothing will be persisted")
	} else {
		db, err := storage.Open(cfg.DatabasePath(), log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: opening store: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
		store = db
	}

	// Wire services.
	recipes := catalog.New(log)
	favs := favorites.New(store, log)
	accounts := account.New(store, log)
	display := prefs.New(store, cfg.UI.DarkMode, log)

	// Restore persisted state before the first frame.
	ctx := context.Background()
	display.Load(ctx)
	if session := accounts.LoadSession(ctx); session != nil {
		log.Info("session restored for %s", session.Email)
	}

	state := app.New(recipes, favs, accounts, display, cfg.LoadingDelay(), log)

	if err := ui.Run(state); err != nil {
		log.Error("ui: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
