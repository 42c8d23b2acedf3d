// Package analytics computes salary statistics, groupings, and rankings
// over personnel records, and keeps the in-memory salary change history.
package analytics

import (
	"errors"
	"sort"
	"strings"

	"github.com/sofisch25/InClassEmpApp/internal/employee"
)

// Partition labels used by ByType.
const (
	LabelRegular  = "Regular Employees"
	LabelManagers = "Managers"
)

// ErrInsufficientData is returned by Gap when the collection lacks either
// a manager or a regular employee.
var ErrInsufficientData = errors.New("need both regular employees and managers for gap analysis")

// Statistics summarizes the salary distribution of a set of records.
type Statistics struct {
	Count   int     `yaml:"count" json:"count"`
	Average float64 `yaml:"average" json:"average"`
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Total   float64 `yaml:"total" json:"total"`
	Median  float64 `yaml:"median" json:"median"` // ascending-sorted element at index n/2
}

// DepartmentStatistics pairs a department code with its salary statistics.
type DepartmentStatistics struct {
	Department string `yaml:"department" json:"department"`
	Statistics `yaml:",inline"`
}

// TypeStatistics pairs a record-type partition with its salary statistics.
type TypeStatistics struct {
	Label      string `yaml:"type" json:"type"`
	Statistics `yaml:",inline"`
}

// GapReport compares manager and regular-employee salaries.
type GapReport struct {
	RegularAverage float64 `yaml:"regular_employee_average" json:"regular_employee_average"`
	ManagerAverage float64 `yaml:"manager_average" json:"manager_average"`
	AbsoluteGap    float64 `yaml:"absolute_gap" json:"absolute_gap"`
	PercentageGap  float64 `yaml:"percentage_gap" json:"percentage_gap"`
	RegularCount   int     `yaml:"regular_count" json:"regular_count"`
	ManagerCount   int     `yaml:"manager_count" json:"manager_count"`
}

// AverageSalary returns the arithmetic mean salary, 0 for an empty set.
func AverageSalary(recs []employee.Record) float64 {
	if len(recs) == 0 {
		return 0
	}
	var total float64
	for _, r := range recs {
		total += r.Base().Salary()
	}
	return total / float64(len(recs))
}

// DepartmentAverage returns the mean salary of one department, matched
// case-insensitively. It returns 0 when the department has no members.
func DepartmentAverage(recs []employee.Record, department string) float64 {
	dept := strings.ToUpper(strings.TrimSpace(department))
	var matched []employee.Record
	for _, r := range recs {
		if r.Base().Department() == dept {
			matched = append(matched, r)
		}
	}
	return AverageSalary(matched)
}

// Stats computes count, average, min, max, total, and median. The median
// is the ascending-sorted salary at index n/2, the upper middle for even
// counts; callers depend on that exact tie-break.
func Stats(recs []employee.Record) Statistics {
	if len(recs) == 0 {
		return Statistics{}
	}

	salaries := make([]float64, len(recs))
	var total float64
	for i, r := range recs {
		salaries[i] = r.Base().Salary()
		total += salaries[i]
	}
	sort.Float64s(salaries)

	return Statistics{
		Count:   len(salaries),
		Average: total / float64(len(salaries)),
		Min:     salaries[0],
		Max:     salaries[len(salaries)-1],
		Total:   total,
		Median:  salaries[len(salaries)/2],
	}
}

// ByType partitions the records into regular employees and managers and
// computes statistics per partition. Empty partitions are omitted; the
// regular partition always precedes the manager partition.
func ByType(recs []employee.Record) []TypeStatistics {
	regular, managers := partition(recs)

	var out []TypeStatistics
	if len(regular) > 0 {
		out = append(out, TypeStatistics{Label: LabelRegular, Statistics: Stats(regular)})
	}
	if len(managers) > 0 {
		out = append(out, TypeStatistics{Label: LabelManagers, Statistics: Stats(managers)})
	}
	return out
}

// ByDepartment computes statistics per department in first-seen order.
func ByDepartment(recs []employee.Record) []DepartmentStatistics {
	groups := make(map[string][]employee.Record)
	var order []string
	for _, r := range recs {
		dept := r.Base().Department()
		if _, seen := groups[dept]; !seen {
			order = append(order, dept)
		}
		groups[dept] = append(groups[dept], r)
	}

	out := make([]DepartmentStatistics, 0, len(order))
	for _, dept := range order {
		out = append(out, DepartmentStatistics{Department: dept, Statistics: Stats(groups[dept])})
	}
	return out
}

// TopEarners returns up to limit records sorted by salary descending.
// The sort is stable: ties keep their original relative order.
func TopEarners(recs []employee.Record, limit int) []employee.Record {
	sorted := make([]employee.Record, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Base().Salary() > sorted[j].Base().Salary()
	})
	return clamp(sorted, limit)
}

// LowestEarners returns up to limit records sorted by salary ascending,
// stable like TopEarners.
func LowestEarners(recs []employee.Record, limit int) []employee.Record {
	sorted := make([]employee.Record, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Base().Salary() < sorted[j].Base().Salary()
	})
	return clamp(sorted, limit)
}

// Gap compares average manager pay against average regular pay. It
// returns ErrInsufficientData unless both partitions are non-empty. The
// percentage gap is 0 when the regular average is 0.
func Gap(recs []employee.Record) (*GapReport, error) {
	regular, managers := partition(recs)
	if len(regular) == 0 || len(managers) == 0 {
		return nil, ErrInsufficientData
	}

	regularAvg := AverageSalary(regular)
	managerAvg := AverageSalary(managers)

	rep := &GapReport{
		RegularAverage: regularAvg,
		ManagerAverage: managerAvg,
		AbsoluteGap:    managerAvg - regularAvg,
		RegularCount:   len(regular),
		ManagerCount:   len(managers),
	}
	if regularAvg > 0 {
		rep.PercentageGap = (managerAvg - regularAvg) / regularAvg * 100
	}
	return rep, nil
}

// partition splits records by structural subtype.
func partition(recs []employee.Record) (regular, managers []employee.Record) {
	for _, r := range recs {
		if _, ok := r.(*employee.Manager); ok {
			managers = append(managers, r)
		} else {
			regular = append(regular, r)
		}
	}
	return regular, managers
}

func clamp(recs []employee.Record, limit int) []employee.Record {
	if limit < 0 {
		limit = 0
	}
	if limit > len(recs) {
		limit = len(recs)
	}
	return recs[:limit]
}
