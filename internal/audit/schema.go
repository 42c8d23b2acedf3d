package audit

// schemaSQL defines the SQLite schema for the operations database.
// Tables:
//   - sql_operations: one row per recorded data-layer operation
const schemaSQL = `
CREATE TABLE IF NOT EXISTS sql_operations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    recorded_at TEXT NOT NULL,
    operation TEXT NOT NULL,
    statement TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_sql_operations_session ON sql_operations(session_id);
CREATE INDEX IF NOT EXISTS idx_sql_operations_operation ON sql_operations(operation);
`

// initSchema creates the table and indexes if they don't exist.
func (l *Log) initSchema() error {
	_, err := l.db.Exec(schemaSQL)
	return err
}
