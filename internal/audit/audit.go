// Package audit provides the SQLite-backed operations log stored in
// employees.db. Every data-layer operation run through the menu or the MCP
// server is recorded as the SQL statement it corresponds to, tagged with the
// session that produced it.
package audit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	_ "modernc.org/sqlite"
)

// Log manages the employees.db SQLite database holding recorded operations.
// It is an observer: recording failures are logged and swallowed so the host
// operation never fails because of its audit trail.
type Log struct {
	db        *sql.DB
	dbPath    string
	sessionID string
	log       zerolog.Logger
}

// Operation is one row of the sql_operations table.
type Operation struct {
	ID         int64
	SessionID  string
	RecordedAt time.Time
	Op         string
	Statement  string
	Detail     string
}

// Open opens or creates the operations database at path and applies the
// schema. Each opened Log gets a fresh session id stamped on its entries.
func Open(path string, logger zerolog.Logger) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	l := &Log{
		db:        db,
		dbPath:    path,
		sessionID: uuid.NewString(),
		log:       logger,
	}

	if err := l.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return l, nil
}

// Close closes the database connection.
func (l *Log) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

// Path returns the database file path.
func (l *Log) Path() string {
	return l.dbPath
}

// DB returns the underlying database connection for advanced queries.
func (l *Log) DB() *sql.DB {
	return l.db
}

// SessionID returns the id stamped on entries recorded by this Log.
func (l *Log) SessionID() string {
	return l.sessionID
}

// Record inserts one operation row. Insert failures never propagate to the
// caller.
func (l *Log) Record(op, statement, detail string) {
	_, err := l.db.Exec(`
		INSERT INTO sql_operations (session_id, recorded_at, operation, statement, detail)
		VALUES (?, ?, ?, ?, ?)`,
		l.sessionID, time.Now().Format(time.RFC3339), op, statement, detail,
	)
	if err != nil {
		l.log.Error().Err(err).Str("operation", op).Msg("audit: record failed")
		return
	}
	l.log.Info().Str("operation", op).Str("statement", statement).Msg("sql operation")
}

// Recent returns the last limit operations in chronological order, oldest
// first.
func (l *Log) Recent(limit int) ([]Operation, error) {
	rows, err := l.db.Query(`
		SELECT id, session_id, recorded_at, operation, statement, detail
		FROM sql_operations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent operations: %w", err)
	}
	defer rows.Close()

	ops, err := scanOperations(rows)
	if err != nil {
		return nil, err
	}

	// The query walks newest-first so LIMIT keeps the tail; flip back for
	// chronological display.
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	return ops, nil
}

// Count returns the number of recorded operations.
func (l *Log) Count() (int, error) {
	var count int
	err := l.db.QueryRow("SELECT COUNT(*) FROM sql_operations").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count operations: %w", err)
	}
	return count, nil
}

// Clear removes all recorded operations.
func (l *Log) Clear() error {
	_, err := l.db.Exec("DELETE FROM sql_operations")
	if err != nil {
		return fmt.Errorf("clear operations: %w", err)
	}
	return nil
}

// scanOperations scans query rows into a slice of Operations.
func scanOperations(rows *sql.Rows) ([]Operation, error) {
	var results []Operation
	for rows.Next() {
		var op Operation
		var recordedAt string
		err := rows.Scan(&op.ID, &op.SessionID, &recordedAt, &op.Op,
			&op.Statement, &op.Detail)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		op.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		results = append(results, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return results, nil
}
