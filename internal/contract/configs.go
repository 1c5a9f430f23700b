package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// Default values for configuration.
const (
	DefaultPrecision     = 2
	DefaultResultLimit   = 25
	MaxResultLimit       = 1000
	DefaultWatchInterval = 60 * time.Second
	DefaultMinDataPoints = 5
)

// Config holds the runtime configuration for the CLI.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile     string          // Optional JSON records file; overrides the store as input
	Period        schema.Period   // Bucketing period for reports and bucket listings
	MinDataPoints int             // Minimum records before derivations fire
	ResultLimit   int             // Maximum table rows to print
	Precision     int             // Decimal precision for numeric columns (1 or 2)
	Output        schema.OutputMode
	OutputFile    string
	Width         int  // Terminal width override (0 = auto-detect)
	UseColors     bool // Enable colored labels in table output

	EnableTrends      bool
	EnableInsights    bool
	EnablePredictions bool

	WatchInterval time.Duration // Auto-refresh interval for watch mode

	StoreBackend schema.DatabaseBackend
	StoreConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	InputFile     string `mapstructure:"input-file"`
	Period        string `mapstructure:"period"`
	MinDataPoints int    `mapstructure:"min-points"`
	Limit         int    `mapstructure:"limit"`
	Precision     int    `mapstructure:"precision"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	Width         int    `mapstructure:"width"`
	Color         string `mapstructure:"color"`
	Trends        bool   `mapstructure:"trends"`
	Insights      bool   `mapstructure:"insights"`
	Predictions   bool   `mapstructure:"predictions"`
	StoreBackend  string `mapstructure:"store-backend"`
	StoreConnect  string `mapstructure:"store-connect"`

	// --- Fields from watchCmd.Flags() ---
	Interval string `mapstructure:"interval"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateStoreConfig(cfg, input); err != nil {
		return err
	}
	return processWatchInterval(cfg, input)
}

// validateSimpleInputs processes and validates all non-store fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = input.InputFile
	cfg.OutputFile = input.OutputFile
	cfg.EnableTrends = input.Trends
	cfg.EnableInsights = input.Insights
	cfg.EnablePredictions = input.Predictions
	cfg.Width = input.Width

	cfg.Period = schema.Period(strings.ToLower(input.Period))
	if _, ok := schema.ValidPeriods[cfg.Period]; !ok {
		return fmt.Errorf("invalid period '%s'. must be hour, day, week, month", input.Period)
	}

	cfg.MinDataPoints = input.MinDataPoints
	if cfg.MinDataPoints < 1 {
		return fmt.Errorf("min-points must be at least 1, got %d", input.MinDataPoints)
	}

	cfg.ResultLimit = input.Limit
	if cfg.ResultLimit < 1 || cfg.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 2 {
		cfg.Precision = 2
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output '%s'. must be text, csv, json, parquet", input.Output)
	}

	cfg.UseColors = parseBoolish(input.Color, true)
	return nil
}

// validateStoreConfig validates the storage backend configuration.
func validateStoreConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreConnect = input.StoreConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreConnect)
}

// processWatchInterval parses the watch interval duration.
func processWatchInterval(cfg *Config, input *ConfigRawInput) error {
	if input.Interval == "" {
		cfg.WatchInterval = DefaultWatchInterval
		return nil
	}
	d, err := time.ParseDuration(input.Interval)
	if err != nil {
		return fmt.Errorf("invalid interval '%s': %w", input.Interval, err)
	}
	if d < time.Second {
		return fmt.Errorf("interval must be at least 1s, got %s", d)
	}
	cfg.WatchInterval = d
	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// parseBoolish interprets yes/no style flag values, falling back to the
// given default for unrecognized input.
func parseBoolish(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}
