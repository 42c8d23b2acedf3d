package audit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func setupTestLog(t *testing.T) *Log {
	t.Helper()

	l, err := Open(filepath.Join(t.TempDir(), "employees.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open audit log: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestOpenClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "employees.db")

	l, err := Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("open audit log: %v", err)
	}

	if l.Path() != path {
		t.Errorf("path = %q, want %q", l.Path(), path)
	}
	if l.DB() == nil {
		t.Error("DB() returned nil")
	}
	if l.SessionID() == "" {
		t.Error("SessionID() is empty")
	}

	if err := l.Close(); err != nil {
		t.Errorf("close: %v", err)
	}

	// Reopen should work and mint a fresh session.
	l2, err := Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen audit log: %v", err)
	}
	defer l2.Close()

	if l2.SessionID() == l.SessionID() {
		t.Error("reopened log reused the previous session id")
	}
}

func TestRecordAndRecent(t *testing.T) {
	l := setupTestLog(t)

	l.Record(OpInsert, "INSERT INTO employees ...", "Created Employee: EMP001")
	l.Record(OpUpdate, "UPDATE employees ...", "Updated employee: EMP001")
	l.Record(OpSelect, SelectAllStatement, "Retrieved 1 employees")

	ops, err := l.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("recent returned %d operations, want 3", len(ops))
	}

	// Chronological order, oldest first.
	wantOps := []string{OpInsert, OpUpdate, OpSelect}
	for i, want := range wantOps {
		if ops[i].Op != want {
			t.Errorf("ops[%d].Op = %q, want %q", i, ops[i].Op, want)
		}
	}

	first := ops[0]
	if first.Statement != "INSERT INTO employees ..." {
		t.Errorf("Statement = %q", first.Statement)
	}
	if first.Detail != "Created Employee: EMP001" {
		t.Errorf("Detail = %q", first.Detail)
	}
	if first.SessionID != l.SessionID() {
		t.Errorf("SessionID = %q, want %q", first.SessionID, l.SessionID())
	}
	if first.RecordedAt.IsZero() {
		t.Error("RecordedAt is zero")
	}
}

func TestRecentLimit(t *testing.T) {
	l := setupTestLog(t)

	details := []string{"one", "two", "three", "four", "five"}
	for _, d := range details {
		l.Record(OpSelect, SelectAllStatement, d)
	}

	ops, err := l.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("recent returned %d operations, want 2", len(ops))
	}
	if ops[0].Detail != "four" || ops[1].Detail != "five" {
		t.Errorf("recent window = [%s %s], want [four five]", ops[0].Detail, ops[1].Detail)
	}
}

func TestCountAndClear(t *testing.T) {
	l := setupTestLog(t)

	l.Record(OpInsert, "stmt", "")
	l.Record(OpDelete, "stmt", "")

	count, err := l.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	if err := l.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	count, err = l.Count()
	if err != nil {
		t.Fatalf("count after clear: %v", err)
	}
	if count != 0 {
		t.Errorf("count after clear = %d, want 0", count)
	}
}

func TestStatementShapes(t *testing.T) {
	hired := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)

	got := InsertStatement("EMP001", "John Doe", "IT", 55000, hired)
	want := "INSERT INTO employees (id, name, department, salary, hire_date) " +
		"VALUES ('EMP001', 'John Doe', 'IT', 55000, '2024-01-31')"
	if got != want {
		t.Errorf("InsertStatement = %q, want %q", got, want)
	}

	got = UpdateStatement("EMP001", "John Doe", "FIN")
	want = "UPDATE employees SET name = 'John Doe', department = 'FIN' WHERE id = 'EMP001'"
	if got != want {
		t.Errorf("UpdateStatement = %q, want %q", got, want)
	}

	got = DeleteStatement("EMP001")
	want = "DELETE FROM employees WHERE id = 'EMP001'"
	if got != want {
		t.Errorf("DeleteStatement = %q, want %q", got, want)
	}

	got = SearchStatement("department", "IT")
	want = "SELECT * FROM employees WHERE department LIKE '%IT%'"
	if got != want {
		t.Errorf("SearchStatement = %q, want %q", got, want)
	}
}
