package recstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// Table names for record storage and run tracking.
const (
	recordsTable = "cipher_metrics"
	runsTable    = "cipher_analysis_runs"
)

// idCounter disambiguates IDs generated within the same nanosecond.
var idCounter atomic.Int64

// RecordStoreImpl handles durable record storage using various database
// backends.
type RecordStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.RecordStore = &RecordStoreImpl{} // Compile-time check

// NewRecordStore initializes and returns a new RecordStore based on the
// backend type. The schema is managed by Migrate; NewRecordStore runs a
// migration to the latest version on open.
func NewRecordStore(backend schema.DatabaseBackend, connStr string) (contract.RecordStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for disabled persistence
		return &RecordStoreImpl{db: nil, backend: backend}, nil
	}

	db, driverName, err := openDatabase(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if err := migrateDB(db, backend, -1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate %s schema: %w", backend, err)
	}

	return &RecordStoreImpl{db: db, backend: backend, driverName: driverName}, nil
}

// openDatabase opens the sql.DB for a backend without pinging it.
func openDatabase(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	switch backend {
	case schema.SQLiteBackend:
		driverName := "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, "", fmt.Errorf("failed to create data directory for %q: %w", dbPath, err)
		}
		db, err := sql.Open(driverName, dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, driverName, nil

	case schema.MySQLBackend:
		// connStr should be: user:password@tcp(host:port)/dbname
		driverName := "mysql"
		db, err := sql.Open(driverName, connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}
		return db, driverName, nil

	case schema.PostgreSQLBackend:
		// connStr should be: host=localhost port=5432 user=postgres dbname=mydb
		driverName := "pgx"
		db, err := sql.Open(driverName, connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}
		return db, driverName, nil

	default:
		return nil, "", fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

// GetDBFilePath returns the default SQLite database path.
func GetDBFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".ciphermetrics", "metrics.db")
}

// bind rewrites '?' placeholders for backends that use positional parameters.
func (s *RecordStoreImpl) bind(query string) string {
	if s.backend != schema.PostgreSQLBackend {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// nextID generates a unique int64 ID. Auto-increment syntax differs across
// the supported backends, so IDs are assigned here instead of by the schema.
func nextID() int64 {
	return time.Now().UnixNano() + idCounter.Add(1)
}

// LoadRecords returns all stored records ordered newest-first.
func (s *RecordStoreImpl) LoadRecords(ctx context.Context) ([]schema.MetricRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	query := s.bind(fmt.Sprintf(
		`SELECT algorithm, recorded_at, execution_time, input_size, output_size, throughput, efficiency
		 FROM %s ORDER BY recorded_at DESC, id DESC`, recordsTable))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.MetricRecord
	for rows.Next() {
		var r schema.MetricRecord
		if err := rows.Scan(&r.Algorithm, &r.Timestamp, &r.ExecutionTime, &r.InputSize, &r.OutputSize, &r.Throughput, &r.Efficiency); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveRecords appends records to the store.
func (s *RecordStoreImpl) SaveRecords(ctx context.Context, records []schema.MetricRecord) error {
	if s.db == nil || len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := s.bind(fmt.Sprintf(
		`INSERT INTO %s (id, algorithm, recorded_at, execution_time, input_size, output_size, throughput, efficiency)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, recordsTable))
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, nextID(), r.Algorithm, r.Timestamp, r.ExecutionTime, r.InputSize, r.OutputSize, r.Throughput, r.Efficiency); err != nil {
			return fmt.Errorf("failed to insert record for %s: %w", r.Algorithm, err)
		}
	}
	return tx.Commit()
}

// CountRecords returns the number of stored records.
func (s *RecordStoreImpl) CountRecords(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, nil
	}
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, recordsTable)
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// ClearRecords removes all stored records.
func (s *RecordStoreImpl) ClearRecords(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, recordsTable)); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

// BeginRun records the start of an analysis run.
func (s *RecordStoreImpl) BeginRun(start time.Time, params map[string]any) (int64, error) {
	if s.db == nil {
		return 0, nil
	}
	var paramsJSON any
	if params != nil {
		encoded, err := json.Marshal(params)
		if err != nil {
			return 0, fmt.Errorf("failed to encode run params: %w", err)
		}
		paramsJSON = string(encoded)
	}

	id := nextID()
	query := s.bind(fmt.Sprintf(
		`INSERT INTO %s (id, start_time, records_analyzed, config_params) VALUES (?, ?, ?, ?)`, runsTable))
	if _, err := s.db.Exec(query, id, start.UTC().Format(time.RFC3339Nano), 0, paramsJSON); err != nil {
		return 0, fmt.Errorf("failed to begin run: %w", err)
	}
	return id, nil
}

// EndRun finalizes an analysis run.
func (s *RecordStoreImpl) EndRun(id int64, end time.Time, records int) error {
	if s.db == nil || id == 0 {
		return nil
	}
	query := s.bind(fmt.Sprintf(
		`UPDATE %s SET end_time = ?, records_analyzed = ? WHERE id = ?`, runsTable))
	if _, err := s.db.Exec(query, end.UTC().Format(time.RFC3339Nano), records, id); err != nil {
		return fmt.Errorf("failed to end run %d: %w", id, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *RecordStoreImpl) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
