package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/payroll"
)

// payrollCmd represents the payroll command
var payrollCmd = &cobra.Command{
	Use:   "payroll <roster.yaml>",
	Short: "Compute project-based compensation from a roster file",
	Long: `Compute compensation for a project roster.

The roster file lists projects with their revenue and members with a
role tag. Compensation depends on the role:
  general_manager  3% of the revenue of every assigned project
  project_manager  5% of its project's revenue
  programmer       annual salary + 1% of its project's revenue
  staff            annual salary + $100 per year of service

Examples:
  empapp payroll roster.yaml
  empapp payroll roster.yaml --year 2030`,
	Args: cobra.ExactArgs(1),
	RunE: runPayroll,
}

var payrollYear int

func init() {
	rootCmd.AddCommand(payrollCmd)

	payrollCmd.Flags().IntVar(&payrollYear, "year", 0, "Compensation year (defaults to the current year)")
}

func runPayroll(cmd *cobra.Command, args []string) error {
	roster, err := payroll.LoadRoster(args[0])
	if err != nil {
		return err
	}

	year := payrollYear
	if year == 0 {
		year = time.Now().Year()
	}

	var total float64
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tROLE\tCOMPENSATION")
	fmt.Fprintln(w, "----\t----\t------------")
	for _, m := range roster.Members {
		comp := m.Compensation(year)
		total += comp
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name(), m.Role(), formatMoney(comp))
	}
	fmt.Fprintln(w, "\t\t")
	fmt.Fprintf(w, "TOTAL\t\t%s\n", formatMoney(total))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d members, year %d\n", len(roster.Members), year)
	return nil
}
