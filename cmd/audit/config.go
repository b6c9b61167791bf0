package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/config"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/repository/sqlitekv"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from AUDIT_ENV
func GetEnvironment() Environment {
	switch os.Getenv("AUDIT_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
	cfg *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, cfg: cfg}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlitekv.Repository, error) {
	switch rf.env {
	case Development:
		// A local database file in the working directory
		return sqlitekv.New("audit.db")
	case Testing:
		// An in-memory database
		return sqlitekv.New(":memory:")
	default:
		return rf.createProductionRepository()
	}
}

// createProductionRepository creates the repository at the configured
// storage location, creating the directory if needed.
func (rf *RepositoryFactory) createProductionRepository() (sqlitekv.Repository, error) {
	dir := rf.cfg.Storage.Dir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	repo, err := sqlitekv.New(filepath.Join(dir, rf.cfg.Storage.Filename))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return repo, nil
}
