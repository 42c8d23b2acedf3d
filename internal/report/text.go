package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

const ruleWidth = 60

// RenderText renders the report in its fixed-width text layout. The gap
// section is dropped when Gap is nil and the changes section when no changes
// have been recorded; everything else always prints, even for an empty
// collection.
func RenderText(rep *SalaryReport) string {
	rule := strings.Repeat("=", ruleWidth)

	var lines []string
	lines = append(lines, rule)
	lines = append(lines, "EMPLOYEE SALARY ANALYTICS REPORT")
	lines = append(lines, rule)
	lines = append(lines, "Generated: "+rep.GeneratedAt.Format("2006-01-02 15:04:05"))
	lines = append(lines, "")

	lines = append(lines, "OVERALL SALARY STATISTICS:")
	lines = append(lines, fmt.Sprintf("  Total Employees: %d", rep.Overall.Count))
	lines = append(lines, "  Average Salary: $"+money(rep.Overall.Average))
	lines = append(lines, "  Minimum Salary: $"+money(rep.Overall.Min))
	lines = append(lines, "  Maximum Salary: $"+money(rep.Overall.Max))
	lines = append(lines, "  Median Salary: $"+money(rep.Overall.Median))
	lines = append(lines, "  Total Payroll: $"+money(rep.Overall.Total))
	lines = append(lines, "")

	lines = append(lines, "SALARY BY DEPARTMENT:")
	for _, dept := range rep.Departments {
		lines = append(lines, "  "+dept.Department+":")
		lines = append(lines, fmt.Sprintf("    Count: %d", dept.Count))
		lines = append(lines, "    Average: $"+money(dept.Average))
		lines = append(lines, fmt.Sprintf("    Range: $%s - $%s", money(dept.Min), money(dept.Max)))
	}
	lines = append(lines, "")

	lines = append(lines, "SALARY BY EMPLOYEE TYPE:")
	for _, ts := range rep.Types {
		lines = append(lines, "  "+ts.Label+":")
		lines = append(lines, fmt.Sprintf("    Count: %d", ts.Count))
		lines = append(lines, "    Average: $"+money(ts.Average))
		lines = append(lines, fmt.Sprintf("    Range: $%s - $%s", money(ts.Min), money(ts.Max)))
	}
	lines = append(lines, "")

	if rep.Gap != nil {
		lines = append(lines, "SALARY GAP ANALYSIS:")
		lines = append(lines, "  Regular Employee Average: $"+money(rep.Gap.RegularAverage))
		lines = append(lines, "  Manager Average: $"+money(rep.Gap.ManagerAverage))
		lines = append(lines, "  Absolute Gap: $"+money(rep.Gap.AbsoluteGap))
		lines = append(lines, fmt.Sprintf("  Percentage Gap: %.1f%%", rep.Gap.PercentageGap))
		lines = append(lines, "")
	}

	lines = append(lines, "TOP 5 EARNERS:")
	for _, e := range rep.TopEarners {
		lines = append(lines, fmt.Sprintf("  %d. %s (%s) - $%s", e.Rank, e.Name, e.Department, money(e.Salary)))
	}
	lines = append(lines, "")

	if len(rep.RecentChanges) > 0 {
		lines = append(lines, "RECENT SALARY CHANGES:")
		for _, ch := range rep.RecentChanges {
			lines = append(lines, fmt.Sprintf("  %s: $%s → $%s (%s)",
				ch.EmployeeName, money(ch.OldSalary), money(ch.NewSalary), ch.Operation))
		}
	}

	lines = append(lines, rule)

	return strings.Join(lines, "\n")
}

// money renders an amount with thousands separators and two decimals.
func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
