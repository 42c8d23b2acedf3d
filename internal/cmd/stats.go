package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/analytics"
	"github.com/sofisch25/InClassEmpApp/internal/employee"
	"github.com/sofisch25/InClassEmpApp/internal/output"
	"github.com/sofisch25/InClassEmpApp/internal/report"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [section] [n]",
	Short: "Show salary statistics",
	Long: `Show salary statistics over the employee collection.

Sections:
  overall      count, average, min, max, median, total payroll (default)
  departments  per-department statistics in first-seen order
  types        regular employees vs managers
  top [n]      highest earners, 5 unless n is given
  bottom [n]   lowest earners, 5 unless n is given
  gap          manager vs regular-employee pay gap

Examples:
  empapp stats                   # Overall statistics
  empapp stats departments       # Per-department breakdown
  empapp stats top 10            # Ten highest earners
  empapp stats gap --format json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	section := "overall"
	if len(args) > 0 {
		section = strings.ToLower(args[0])
	}

	limit := report.TopEarnerLimit
	if len(args) > 1 {
		if section != "top" && section != "bottom" {
			return fmt.Errorf("a count applies only to the top and bottom sections")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid count %q", args[1])
		}
		limit = n
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	recs, err := env.store.Load()
	if err != nil {
		return err
	}

	format, err := resolveFormat(env.cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var doc interface{}
	switch section {
	case "overall":
		stats := analytics.Stats(recs)
		if format == output.FormatTable {
			renderOverallStats(out, stats)
			return nil
		}
		doc = stats
	case "departments":
		groups := analytics.ByDepartment(recs)
		if format == output.FormatTable {
			renderDepartmentStats(out, groups)
			return nil
		}
		doc = groups
	case "types":
		groups := analytics.ByType(recs)
		if format == output.FormatTable {
			renderTypeStats(out, groups)
			return nil
		}
		doc = groups
	case "top":
		earners := analytics.TopEarners(recs, limit)
		if format == output.FormatTable {
			renderEarners(out, fmt.Sprintf("TOP %d EARNERS", limit), earners)
			return nil
		}
		doc = earnerLines(earners)
	case "bottom":
		earners := analytics.LowestEarners(recs, limit)
		if format == output.FormatTable {
			renderEarners(out, fmt.Sprintf("LOWEST %d EARNERS", limit), earners)
			return nil
		}
		doc = earnerLines(earners)
	case "gap":
		gap, err := analytics.Gap(recs)
		if err != nil {
			return err
		}
		if format == output.FormatTable {
			renderGapReport(out, gap)
			return nil
		}
		doc = gap
	default:
		return fmt.Errorf("unknown section %q (expected overall, departments, types, top, bottom, or gap)", section)
	}

	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.FormatToWriter(out, doc)
}

// earnerLines converts ranked records into the report's earner shape for
// structured output.
func earnerLines(recs []employee.Record) []report.EarnerLine {
	lines := make([]report.EarnerLine, len(recs))
	for i, rec := range recs {
		base := rec.Base()
		lines[i] = report.EarnerLine{
			Rank:       i + 1,
			Name:       base.FullName(),
			Department: base.Department(),
			Salary:     base.Salary(),
		}
	}
	return lines
}

// The render helpers below are shared by the stats command and the
// interactive analytics screens.

func renderOverallStats(w io.Writer, stats analytics.Statistics) {
	fmt.Fprintln(w, "\nOVERALL SALARY STATISTICS:")
	fmt.Fprintf(w, "  Total Employees: %d\n", stats.Count)
	fmt.Fprintf(w, "  Average Salary: %s\n", formatMoney(stats.Average))
	fmt.Fprintf(w, "  Minimum Salary: %s\n", formatMoney(stats.Min))
	fmt.Fprintf(w, "  Maximum Salary: %s\n", formatMoney(stats.Max))
	fmt.Fprintf(w, "  Median Salary: %s\n", formatMoney(stats.Median))
	fmt.Fprintf(w, "  Total Payroll: %s\n", formatMoney(stats.Total))
}

func renderDepartmentStats(w io.Writer, groups []analytics.DepartmentStatistics) {
	fmt.Fprintln(w, "\nSALARY BY DEPARTMENT:")
	for _, g := range groups {
		renderStatsBlock(w, g.Department, g.Statistics)
	}
}

func renderTypeStats(w io.Writer, groups []analytics.TypeStatistics) {
	fmt.Fprintln(w, "\nSALARY BY EMPLOYEE TYPE:")
	for _, g := range groups {
		renderStatsBlock(w, g.Label, g.Statistics)
	}
}

func renderStatsBlock(w io.Writer, label string, s analytics.Statistics) {
	fmt.Fprintf(w, "  %s:\n", label)
	fmt.Fprintf(w, "    Count: %d\n", s.Count)
	fmt.Fprintf(w, "    Average: %s\n", formatMoney(s.Average))
	fmt.Fprintf(w, "    Range: %s - %s\n", formatMoney(s.Min), formatMoney(s.Max))
}

func renderEarners(w io.Writer, heading string, recs []employee.Record) {
	fmt.Fprintf(w, "\n%s:\n", heading)
	for i, rec := range recs {
		base := rec.Base()
		fmt.Fprintf(w, "  %d. %s (%s) - %s\n",
			i+1, base.FullName(), base.Department(), formatMoney(base.Salary()))
	}
}

func renderGapReport(w io.Writer, gap *analytics.GapReport) {
	fmt.Fprintln(w, "\nSALARY GAP ANALYSIS:")
	fmt.Fprintf(w, "  Regular Employee Average: %s\n", formatMoney(gap.RegularAverage))
	fmt.Fprintf(w, "  Manager Average: %s\n", formatMoney(gap.ManagerAverage))
	fmt.Fprintf(w, "  Absolute Gap: %s\n", formatMoney(gap.AbsoluteGap))
	fmt.Fprintf(w, "  Percentage Gap: %.1f%%\n", gap.PercentageGap)
	fmt.Fprintf(w, "  Regular Count: %d\n", gap.RegularCount)
	fmt.Fprintf(w, "  Manager Count: %d\n", gap.ManagerCount)
}
