package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/export"
	"github.com/sofisch25/InClassEmpApp/internal/report"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <path.xlsx>",
	Short: "Export the collection to an Excel workbook",
	Long: `Export the employee collection to an Excel workbook.

The Employees sheet carries one row per record with every stored field.
With --report a second sheet is added containing the salary analytics
report (overall statistics, department and type breakdowns, gap, and
top earners).

Examples:
  empapp export employees.xlsx
  empapp export employees.xlsx --report`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportWithReport bool

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&exportWithReport, "report", false, "Include the salary report sheet")
}

func runExport(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	recs, err := env.store.Load()
	if err != nil {
		return err
	}

	var rep *report.SalaryReport
	if exportWithReport {
		rep = report.Gather(recs, env.changes)
	}

	if err := export.Write(args[0], recs, rep); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d employees to %s\n", len(recs), args[0])
	return nil
}
