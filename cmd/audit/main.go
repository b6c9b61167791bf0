package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/api"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/cli"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/config"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/store"
)

func main() {
	// Load configuration from defaults and environment
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	// Create repository based on environment
	factory := NewRepositoryFactory(GetEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating storage: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// All core operations run to completion within this timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	// Load (and if necessary repair) the persisted document
	storeManager := store.New(repo, cfg, logger)
	if err := storeManager.Load(ctx); err != nil {
		// A read failure still leaves a usable default document; warn and continue
		fmt.Fprintf(os.Stderr, "Warning: could not read saved audit data: %v\n", err)
	}

	apiInstance := api.New(storeManager, cfg)
	app := cli.NewApp(apiInstance, cfg)
	root := cli.NewRootCommand(app)

	if err := root.Command().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the application logger. Verbose mode switches to the
// human-readable development config.
func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.Application.Verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
