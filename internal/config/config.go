package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration options for the workflow audit application
type Config struct {
	Storage     StorageConfig
	Audit       AuditConfig
	Validation  ValidationConfig
	TimePicker  TimePickerConfig
	Application ApplicationConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Dir              string `env:"AUDIT_DB_DIR"`
	Filename         string `env:"AUDIT_DB_FILENAME" env-default:"audit.db"`
	MaxDocumentBytes int    `env:"AUDIT_STORAGE_MAX_BYTES" env-default:"4718592"`
}

// AuditConfig holds the audit-period thresholds and targets
type AuditConfig struct {
	TargetHours         float64 `env:"AUDIT_TARGET_HOURS" env-default:"80"`
	MinEntriesForReview int     `env:"AUDIT_MIN_ENTRIES_FOR_REVIEW" env-default:"5"`
	MinHoursForInsights float64 `env:"AUDIT_MIN_HOURS_FOR_INSIGHTS" env-default:"20"`
	TrapThreshold       int     `env:"AUDIT_TRAP_THRESHOLD" env-default:"40"`
	HealthyHighValue    int     `env:"AUDIT_HEALTHY_HIGH_VALUE" env-default:"30"`
	HealthyAutomatable  int     `env:"AUDIT_HEALTHY_AUTOMATABLE" env-default:"30"`
}

// ValidationConfig holds entry validation bounds
type ValidationConfig struct {
	MaxDaysBack       int `env:"AUDIT_MAX_DAYS_BACK" env-default:"14"`
	MaxActivityLength int `env:"AUDIT_MAX_ACTIVITY_LENGTH" env-default:"500"`
	MaxNotesLength    int `env:"AUDIT_MAX_NOTES_LENGTH" env-default:"1000"`
}

// TimePickerConfig holds the bounds and step for selectable start/end times
type TimePickerConfig struct {
	StartHour        int `env:"AUDIT_PICKER_START_HOUR" env-default:"6"`
	EndHour          int `env:"AUDIT_PICKER_END_HOUR" env-default:"22"`
	IncrementMinutes int `env:"AUDIT_PICKER_INCREMENT_MINUTES" env-default:"15"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"AUDIT_APP_TIMEOUT" env-default:"30s"`
	Verbose bool          `env:"AUDIT_VERBOSE" env-default:"false"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Dir:              filepath.Join(homeDir, ".caio-audit"),
			Filename:         "audit.db",
			MaxDocumentBytes: 4718592, // ~4.5MB, safety margin below a typical 5MB quota
		},
		Audit: AuditConfig{
			TargetHours:         80,
			MinEntriesForReview: 5,
			MinHoursForInsights: 20,
			TrapThreshold:       40,
			HealthyHighValue:    30,
			HealthyAutomatable:  30,
		},
		Validation: ValidationConfig{
			MaxDaysBack:       14,
			MaxActivityLength: 500,
			MaxNotesLength:    1000,
		},
		TimePicker: TimePickerConfig{
			StartHour:        6,
			EndHour:          22,
			IncrementMinutes: 15,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// TimeOptions returns the selectable HH:MM values within the configured
// picker bounds, stepping by the configured increment. The end hour itself
// is included as the final option.
func (c *Config) TimeOptions() []string {
	var options []string
	for hour := c.TimePicker.StartHour; hour <= c.TimePicker.EndHour; hour++ {
		for minute := 0; minute < 60; minute += c.TimePicker.IncrementMinutes {
			if hour == c.TimePicker.EndHour && minute > 0 {
				break
			}
			options = append(options, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return options
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.MaxDocumentBytes <= 0 {
		return &ConfigError{Field: "storage.max_document_bytes", Message: "document size limit must be positive"}
	}

	if c.Audit.TargetHours <= 0 {
		return &ConfigError{Field: "audit.target_hours", Message: "target hours must be positive"}
	}
	if c.Audit.MinEntriesForReview < 0 {
		return &ConfigError{Field: "audit.min_entries_for_review", Message: "minimum entries for review cannot be negative"}
	}
	if c.Audit.TrapThreshold < 0 || c.Audit.TrapThreshold > 100 {
		return &ConfigError{Field: "audit.trap_threshold", Message: "trap threshold must be a percentage between 0 and 100"}
	}
	if c.Audit.HealthyHighValue < 0 || c.Audit.HealthyHighValue > 100 {
		return &ConfigError{Field: "audit.healthy_high_value", Message: "healthy high-value threshold must be a percentage between 0 and 100"}
	}
	if c.Audit.HealthyAutomatable < 0 || c.Audit.HealthyAutomatable > 100 {
		return &ConfigError{Field: "audit.healthy_automatable", Message: "healthy automatable threshold must be a percentage between 0 and 100"}
	}

	if c.Validation.MaxDaysBack < 1 {
		return &ConfigError{Field: "validation.max_days_back", Message: "max days back must be at least 1"}
	}
	if c.Validation.MaxActivityLength < 1 {
		return &ConfigError{Field: "validation.max_activity_length", Message: "max activity length must be at least 1"}
	}
	if c.Validation.MaxNotesLength < 1 {
		return &ConfigError{Field: "validation.max_notes_length", Message: "max notes length must be at least 1"}
	}

	if c.TimePicker.StartHour < 0 || c.TimePicker.StartHour > 23 {
		return &ConfigError{Field: "time_picker.start_hour", Message: "start hour must be between 0 and 23"}
	}
	if c.TimePicker.EndHour <= c.TimePicker.StartHour || c.TimePicker.EndHour > 23 {
		return &ConfigError{Field: "time_picker.end_hour", Message: "end hour must be after start hour and at most 23"}
	}
	if c.TimePicker.IncrementMinutes < 1 || c.TimePicker.IncrementMinutes > 60 {
		return &ConfigError{Field: "time_picker.increment_minutes", Message: "increment must be between 1 and 60 minutes"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
