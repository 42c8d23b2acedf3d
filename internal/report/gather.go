package report

import (
	"time"

	"github.com/sofisch25/InClassEmpApp/internal/analytics"
	"github.com/sofisch25/InClassEmpApp/internal/employee"
)

// Limits for the ranked report sections.
const (
	// TopEarnerLimit bounds the top-earners list.
	TopEarnerLimit = 5

	// RecentChangeLimit bounds the recent-changes list.
	RecentChangeLimit = 5
)

// Gather builds the report document from the current records and the salary
// change log. Ordering is deterministic: departments appear in first-seen
// order, earners in descending salary order, changes oldest first. A nil
// change log simply leaves the changes section empty.
func Gather(recs []employee.Record, changes *analytics.ChangeLog) *SalaryReport {
	rep := &SalaryReport{
		GeneratedAt: time.Now(),
		Overall:     analytics.Stats(recs),
		Departments: analytics.ByDepartment(recs),
		Types:       analytics.ByType(recs),
	}

	if gap, err := analytics.Gap(recs); err == nil {
		rep.Gap = gap
	}

	for i, rec := range analytics.TopEarners(recs, TopEarnerLimit) {
		base := rec.Base()
		rep.TopEarners = append(rep.TopEarners, EarnerLine{
			Rank:       i + 1,
			Name:       base.FullName(),
			Department: base.Department(),
			Salary:     base.Salary(),
		})
	}

	if changes != nil {
		rep.RecentChanges = changes.Recent(RecentChangeLimit)
	}

	return rep
}
