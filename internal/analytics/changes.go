package analytics

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/sofisch25/InClassEmpApp/internal/employee"
)

// ChangeOp tags the operation behind a salary change record.
type ChangeOp string

const (
	ChangeCreate ChangeOp = "CREATE"
	ChangeUpdate ChangeOp = "UPDATE"
	ChangeDelete ChangeOp = "DELETE"
)

// ChangeRecord captures one salary-affecting operation.
type ChangeRecord struct {
	Timestamp     time.Time `yaml:"timestamp" json:"timestamp"`
	EmployeeID    string    `yaml:"employee_id" json:"employee_id"`
	EmployeeName  string    `yaml:"employee_name" json:"employee_name"`
	Department    string    `yaml:"department" json:"department"`
	OldSalary     float64   `yaml:"old_salary" json:"old_salary"`
	NewSalary     float64   `yaml:"new_salary" json:"new_salary"`
	ChangeAmount  float64   `yaml:"change_amount" json:"change_amount"`
	ChangePercent float64   `yaml:"change_percentage" json:"change_percentage"`
	Operation     ChangeOp  `yaml:"operation" json:"operation"`
}

// ChangeLog is the append-only, in-memory salary change history. It lives
// for one process run and is not persisted.
type ChangeLog struct {
	log     zerolog.Logger
	history []ChangeRecord
}

// NewChangeLog creates an empty change log writing to the given logger.
func NewChangeLog(log zerolog.Logger) *ChangeLog {
	return &ChangeLog{log: log}
}

// Record appends a change entry for the given record. The percentage
// change is 0 when the old salary was 0.
func (c *ChangeLog) Record(rec employee.Record, oldSalary, newSalary float64, op ChangeOp) {
	var pct float64
	if oldSalary > 0 {
		pct = (newSalary - oldSalary) / oldSalary * 100
	}

	base := rec.Base()
	change := ChangeRecord{
		Timestamp:     time.Now(),
		EmployeeID:    base.ID(),
		EmployeeName:  base.FullName(),
		Department:    base.Department(),
		OldSalary:     oldSalary,
		NewSalary:     newSalary,
		ChangeAmount:  newSalary - oldSalary,
		ChangePercent: pct,
		Operation:     op,
	}
	c.history = append(c.history, change)

	c.log.Info().
		Str("employee_id", change.EmployeeID).
		Float64("old_salary", oldSalary).
		Float64("new_salary", newSalary).
		Str("operation", string(op)).
		Msg("salary change recorded")
}

// Len reports the number of recorded changes.
func (c *ChangeLog) Len() int { return len(c.history) }

// History returns a copy of the full change history, oldest first.
func (c *ChangeLog) History() []ChangeRecord {
	out := make([]ChangeRecord, len(c.history))
	copy(out, c.history)
	return out
}

// Recent returns a copy of the last limit changes in recording order.
func (c *ChangeLog) Recent(limit int) []ChangeRecord {
	if limit <= 0 || len(c.history) == 0 {
		return nil
	}
	if limit > len(c.history) {
		limit = len(c.history)
	}
	out := make([]ChangeRecord, limit)
	copy(out, c.history[len(c.history)-limit:])
	return out
}
