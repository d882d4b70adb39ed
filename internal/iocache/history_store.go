package iocache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/schema"
)

// historyRunsTable is the name of the table for analysis run history.
const historyRunsTable = "breeze_analysis_runs"

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db       *sql.DB
	backend  schema.DatabaseBackend
	location string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	location := connStr

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetHistoryDBFilePath()
		}
		location = dbPath
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{
			db:      nil,
			backend: backend,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported history backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}

	if _, err := db.Exec(getCreateRunsTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", historyRunsTable, err)
	}

	return &HistoryStoreImpl{
		db:       db,
		backend:  backend,
		location: location,
	}, nil
}

// getCreateRunsTableQuery returns the CREATE TABLE query for breeze_analysis_runs.
func getCreateRunsTableQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(historyRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				run_at DATETIME(6) NOT NULL,
				input_path VARCHAR(512) NOT NULL,
				locale VARCHAR(16) NOT NULL,
				score INT NOT NULL,
				label VARCHAR(50) NOT NULL,
				capped BOOLEAN NOT NULL,
				has_window BOOLEAN NOT NULL,
				headache VARCHAR(50) NOT NULL,
				check_count INT NOT NULL,
				alert_count INT NOT NULL,
				duration_ms BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				run_at TIMESTAMPTZ NOT NULL,
				input_path TEXT NOT NULL,
				locale TEXT NOT NULL,
				score INT NOT NULL,
				label TEXT NOT NULL,
				capped BOOLEAN NOT NULL,
				has_window BOOLEAN NOT NULL,
				headache TEXT NOT NULL,
				check_count INT NOT NULL,
				alert_count INT NOT NULL,
				duration_ms BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_at TEXT NOT NULL,
				input_path TEXT NOT NULL,
				locale TEXT NOT NULL,
				score INTEGER NOT NULL,
				label TEXT NOT NULL,
				capped INTEGER NOT NULL,
				has_window INTEGER NOT NULL,
				headache TEXT NOT NULL,
				check_count INTEGER NOT NULL,
				alert_count INTEGER NOT NULL,
				duration_ms INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// formatTime converts a time.Time to the appropriate storage value for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return t
	}
}

// RecordRun persists one completed analysis run and returns its ID.
func (hs *HistoryStoreImpl) RecordRun(run schema.AnalysisRun) (int64, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	quotedTableName := quoteTableName(historyRunsTable, hs.backend)

	var runID int64
	var err error
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s
			(run_at, input_path, locale, score, label, capped, has_window, headache, check_count, alert_count, duration_ms)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING run_id`, quotedTableName)
		err = hs.db.QueryRow(query, run.RunAt, run.InputPath, run.Locale, run.Score, run.Label,
			run.Capped, run.HasWindow, run.Headache, run.CheckCount, run.AlertCount, run.DurationMS).Scan(&runID)

	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s
			(run_at, input_path, locale, score, label, capped, has_window, headache, check_count, alert_count, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, quotedTableName)
		var result sql.Result
		result, err = hs.db.Exec(query, formatTime(run.RunAt, hs.backend), run.InputPath, run.Locale,
			run.Score, run.Label, run.Capped, run.HasWindow, run.Headache,
			run.CheckCount, run.AlertCount, run.DurationMS)
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (hs *HistoryStoreImpl) ListRuns(limit int) ([]schema.AnalysisRun, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 1
	}

	quotedTableName := quoteTableName(historyRunsTable, hs.backend)
	query := fmt.Sprintf(`SELECT run_id, run_at, input_path, locale, score, label, capped, has_window, headache, check_count, alert_count, duration_ms
		FROM %s ORDER BY run_id DESC LIMIT %s`, quotedTableName, placeholder(hs.backend))

	rows, err := hs.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []schema.AnalysisRun
	for rows.Next() {
		var run schema.AnalysisRun

		if hs.backend == schema.SQLiteBackend {
			var runAtStr string
			if err := rows.Scan(&run.ID, &runAtStr, &run.InputPath, &run.Locale, &run.Score, &run.Label,
				&run.Capped, &run.HasWindow, &run.Headache, &run.CheckCount, &run.AlertCount, &run.DurationMS); err != nil {
				return nil, fmt.Errorf("failed to scan analysis run: %w", err)
			}
			run.RunAt, err = time.Parse(time.RFC3339Nano, runAtStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse run time %q: %w", runAtStr, err)
			}
		} else {
			if err := rows.Scan(&run.ID, &run.RunAt, &run.InputPath, &run.Locale, &run.Score, &run.Label,
				&run.Capped, &run.HasWindow, &run.Headache, &run.CheckCount, &run.AlertCount, &run.DurationMS); err != nil {
				return nil, fmt.Errorf("failed to scan analysis run: %w", err)
			}
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analysis runs: %w", err)
	}
	return runs, nil
}

// Clear removes all recorded runs.
func (hs *HistoryStoreImpl) Clear() error {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}
	quotedTableName := quoteTableName(historyRunsTable, hs.backend)
	_, err := hs.db.Exec(fmt.Sprintf("DELETE FROM %s", quotedTableName))
	return err
}

// Close closes the underlying DB connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:  hs.backend,
		Location: hs.location,
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(historyRunsTable, hs.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := hs.db.QueryRow(countQuery).Scan(&status.RunCount); err != nil {
		return status, fmt.Errorf("failed to get run count: %w", err)
	}

	if status.RunCount == 0 {
		return status, nil
	}

	firstQuery := fmt.Sprintf("SELECT run_at FROM %s ORDER BY run_id ASC LIMIT 1", quotedTableName)
	lastQuery := fmt.Sprintf("SELECT run_at FROM %s ORDER BY run_id DESC LIMIT 1", quotedTableName)

	var err error
	if status.FirstRun, err = hs.scanRunTime(firstQuery); err != nil {
		return status, fmt.Errorf("failed to get first run time: %w", err)
	}
	if status.LastRun, err = hs.scanRunTime(lastQuery); err != nil {
		return status, fmt.Errorf("failed to get last run time: %w", err)
	}

	return status, nil
}

// scanRunTime reads a single run_at value, handling the SQLite text format.
func (hs *HistoryStoreImpl) scanRunTime(query string) (time.Time, error) {
	row := hs.db.QueryRow(query)
	if hs.backend == schema.SQLiteBackend {
		var ts string
		if err := row.Scan(&ts); err != nil {
			return time.Time{}, err
		}
		return time.Parse(time.RFC3339Nano, ts)
	}
	var t time.Time
	if err := row.Scan(&t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}
