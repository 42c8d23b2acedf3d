package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/audit"
	"github.com/sofisch25/InClassEmpApp/internal/employee"
	"github.com/sofisch25/InClassEmpApp/internal/output"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the department summary",
	Long: `Show a per-department rollup of the employee collection.

For each department the summary lists the headcount, how many of those
records are managers, and the average team size across the department's
managers (0.0 when the department has none). Departments appear in the
order they first occur in the data file.

Examples:
  empapp summary
  empapp summary --format yaml`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// departmentRollup is one department's line in the summary.
type departmentRollup struct {
	Department  string  `yaml:"department" json:"department"`
	Count       int     `yaml:"employees" json:"employees"`
	Managers    int     `yaml:"managers" json:"managers"`
	Regular     int     `yaml:"regular" json:"regular"`
	AvgTeamSize float64 `yaml:"average_team_size" json:"average_team_size"`
}

// computeDepartmentSummary rolls the records up per department in
// first-seen order. The average team size covers managers only.
func computeDepartmentSummary(recs []employee.Record) []departmentRollup {
	index := make(map[string]int)
	var out []departmentRollup

	for _, rec := range recs {
		dept := rec.Base().Department()
		i, seen := index[dept]
		if !seen {
			i = len(out)
			index[dept] = i
			out = append(out, departmentRollup{Department: dept})
		}

		out[i].Count++
		if mgr, ok := rec.(*employee.Manager); ok {
			out[i].Managers++
			out[i].AvgTeamSize += float64(mgr.TeamSize())
		} else {
			out[i].Regular++
		}
	}

	for i := range out {
		if out[i].Managers > 0 {
			out[i].AvgTeamSize /= float64(out[i].Managers)
		}
	}
	return out
}

// renderDepartmentSummary writes the rollup in the menu's text layout.
func renderDepartmentSummary(w io.Writer, sums []departmentRollup) {
	fmt.Fprintln(w, "\nDEPARTMENT SUMMARY:")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, s := range sums {
		fmt.Fprintf(w, "%s:\n", s.Department)
		fmt.Fprintf(w, "  Employees: %d\n", s.Count)
		fmt.Fprintf(w, "  Managers: %d\n", s.Managers)
		fmt.Fprintf(w, "  Regular: %d\n", s.Regular)
		fmt.Fprintf(w, "  Average Team Size: %.1f\n", s.AvgTeamSize)
		fmt.Fprintln(w)
	}
}

func runSummary(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	recs, err := env.store.Load()
	if err != nil {
		return err
	}
	sums := computeDepartmentSummary(recs)

	env.audit.Record(audit.OpSelect, audit.SummaryStatement,
		fmt.Sprintf("Department summary for %d departments", len(sums)))

	format, err := resolveFormat(env.cfg)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		renderDepartmentSummary(cmd.OutOrStdout(), sums)
		return nil
	}

	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.FormatToWriter(cmd.OutOrStdout(), sums)
}
