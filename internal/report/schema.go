// Package report assembles the salary analytics report.
//
// The report is a plain data document gathered from the record collection and
// the salary change log. RenderText turns it into the classic fixed-width
// text layout; the structured output formats marshal the document directly.
package report

import (
	"time"

	"github.com/sofisch25/InClassEmpApp/internal/analytics"
)

// SalaryReport is the full analytics report document.
type SalaryReport struct {
	// GeneratedAt is the timestamp when the report was generated.
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`

	// Overall holds the salary statistics across every record.
	Overall analytics.Statistics `yaml:"overall" json:"overall"`

	// Departments holds per-department statistics in first-seen order.
	Departments []analytics.DepartmentStatistics `yaml:"departments" json:"departments"`

	// Types holds the regular-employee and manager breakdowns.
	// Partitions with no members are omitted.
	Types []analytics.TypeStatistics `yaml:"types" json:"types"`

	// Gap compares manager pay to regular-employee pay.
	// Nil when the collection lacks one of the two groups.
	Gap *analytics.GapReport `yaml:"gap,omitempty" json:"gap,omitempty"`

	// TopEarners lists the highest-paid records, at most five.
	TopEarners []EarnerLine `yaml:"top_earners" json:"top_earners"`

	// RecentChanges lists the latest salary changes, at most five,
	// oldest first.
	RecentChanges []analytics.ChangeRecord `yaml:"recent_changes,omitempty" json:"recent_changes,omitempty"`
}

// EarnerLine is one ranked entry in the top-earners list.
type EarnerLine struct {
	// Rank is the 1-based position in the ranking.
	Rank int `yaml:"rank" json:"rank"`

	// Name is the record's full name.
	Name string `yaml:"name" json:"name"`

	// Department is the record's department code.
	Department string `yaml:"department" json:"department"`

	// Salary is the record's current salary.
	Salary float64 `yaml:"salary" json:"salary"`
}
