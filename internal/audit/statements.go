package audit

import (
	"fmt"
	"strconv"
	"time"
)

// Operation tags recorded alongside each statement.
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
	OpSelect = "SELECT"
)

// SelectAllStatement is recorded when the full collection is listed.
const SelectAllStatement = "SELECT * FROM employees ORDER BY id"

// SummaryStatement is recorded for the department summary view.
const SummaryStatement = "SELECT department, COUNT(*) as count, " +
	"SUM(CASE WHEN employee_type = 'Manager' THEN 1 ELSE 0 END) as managers " +
	"FROM employees GROUP BY department"

// The builders below render the statement a relational backend would have
// run for the operation. They are log text only and are never executed.

// InsertStatement renders the statement recorded for a created record.
func InsertStatement(id, fullName, department string, salary float64, hireDate time.Time) string {
	return fmt.Sprintf(
		"INSERT INTO employees (id, name, department, salary, hire_date) VALUES ('%s', '%s', '%s', %s, '%s')",
		id, fullName, department,
		strconv.FormatFloat(salary, 'f', -1, 64),
		hireDate.Format("2006-01-02"),
	)
}

// UpdateStatement renders the statement recorded for an edited record.
func UpdateStatement(id, fullName, department string) string {
	return fmt.Sprintf(
		"UPDATE employees SET name = '%s', department = '%s' WHERE id = '%s'",
		fullName, department, id,
	)
}

// DeleteStatement renders the statement recorded for a removed record.
func DeleteStatement(id string) string {
	return fmt.Sprintf("DELETE FROM employees WHERE id = '%s'", id)
}

// SearchStatement renders the statement recorded for a filtered listing.
func SearchStatement(field, value string) string {
	return fmt.Sprintf("SELECT * FROM employees WHERE %s LIKE '%%%s%%'", field, value)
}
