package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/internal/recstore"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// recordsSetup loads minimal configuration needed for record store operations.
// This is used by commands that need store access without full shared setup.
func recordsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-connect")

	// Handle empty backend as the default SQLite store
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := recstore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize record store: %w", err)
	}
	if storeManager == nil {
		storeManager = recstore.Manager
	}

	cfg.StoreBackend = backend
	cfg.StoreConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// recordsSetupWrapper wraps recordsSetup to provide PreRunE for records commands.
func recordsSetupWrapper(_ *cobra.Command, _ []string) error {
	return recordsSetup()
}

// recordsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func recordsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = recstore.GetDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreConnect = connStr

	return nil
}

// recordsMigrateSetupWrapper wraps recordsMigrateSetup to provide PreRunE for the migrate command.
func recordsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return recordsMigrateSetup()
}

// recordsCmd focused on record store management.
//
// Note: Records subcommands use minimal initialization (recordsSetup) instead
// of the full sharedSetup used by analysis commands. This avoids config
// processing that only matters for analysis output.
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage the durable record store",
	Long: `Manage the stored cipher operation records that feed the analysis.

The store keeps every imported metric record plus a log of analysis runs,
enabling longitudinal analysis across CLI invocations.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  import  - Load records from a JSON export into the store
  status  - Show record counts and connection details
  clear   - Remove all stored records
  export  - Export records and stats to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Import a website export
  ciphermetrics records import metrics.json

  # Check store status
  ciphermetrics records status`,
}

// recordsImportCmd loads records from a JSON file into the store.
var recordsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import metric records from a JSON export",
	Long: `Load metric records from a JSON file into the record store.

The file may hold a bare array of records or an object with a "metrics"
key, which is the shape the cipher website exports. Imported records are
appended; run 'records clear' first for a clean slate.

Examples:
  # Import an export file
  ciphermetrics records import metrics.json

  # Import into a shared MySQL store
  ciphermetrics records import metrics.json --store-backend mysql --store-connect "user:pass@tcp(host:3306)/ciphermetrics"`,
	Args:    cobra.ExactArgs(1),
	PreRunE: recordsSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		records, err := recstore.LoadRecordsFile(args[0])
		if err != nil {
			contract.LogFatal("Failed to read records file", err)
		}
		if err := storeManager.GetRecordStore().SaveRecords(rootCtx, records); err != nil {
			contract.LogFatal("Failed to import records", err)
		}
		fmt.Printf("Imported %d records from %s\n", len(records), args[0])
	},
}

// recordsStatusCmd shows record store status.
var recordsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display record store statistics and connection details",
	Long: `Show detailed information about the record store.

Displays:
- Backend type and connection status
- Total number of stored records

Use this to:
- Verify the store is reachable and populated
- Monitor data accumulation over time

Examples:
  # Check store status
  ciphermetrics records status`,
	PreRunE: recordsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		count, err := storeManager.GetRecordStore().CountRecords(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get record store status", err)
		}
		fmt.Printf("Backend: %s\n", cfg.StoreBackend)
		fmt.Printf("Records: %d\n", count)
	},
}

// recordsClearCmd clears the stored records.
var recordsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored metric records",
	Long: `Delete every metric record from the store.

Analysis run history is kept; only the metric records themselves are
removed. This cannot be undone.

Examples:
  # Clear the default SQLite store
  ciphermetrics records clear`,
	PreRunE: recordsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := storeManager.GetRecordStore().ClearRecords(rootCtx); err != nil {
			contract.LogFatal("Failed to clear records", err)
		}
		fmt.Println("Records cleared successfully.")
	},
}

// recordsExportCmd exports records and stats to Parquet files.
var recordsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records and stats to Parquet for BI tools and analytics",
	Long: `Export the stored records and their per-algorithm stats to Parquet.

Exports two datasets:
- Metric records - one row per cipher operation with a parsed numeric time
- Algorithm stats - aggregated statistics at export time

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter (used as the path prefix)

Examples:
  # Export all data
  ciphermetrics records export --output-file cipher-data

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('cipher-data.records.parquet') LIMIT 10"`,
	PreRunE: recordsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRecordsExport(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Failed to export records", err)
		}
	},
}

// recordsMigrateCmd runs database migrations for the record store.
var recordsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the record store.

Migrations allow:
- Upgrading to new schema versions when ciphermetrics is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  ciphermetrics records migrate

  # Migrate to specific version
  ciphermetrics records migrate --target-version 1

  # Rollback to initial state
  ciphermetrics records migrate --target-version 0`,
	PreRunE: recordsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := recstore.Migrate(cfg.StoreBackend, cfg.StoreConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
