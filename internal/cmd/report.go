package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/output"
	"github.com/sofisch25/InClassEmpApp/internal/report"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the salary analytics report",
	Long: `Generate the full salary analytics report.

The report covers overall statistics, per-department and per-type
breakdowns, the manager pay gap, the top earners, and the salary changes
recorded during this session. The default output is the banner-framed
text report; --format yaml or --format json emits the same document
structured for further processing.

Examples:
  empapp report                      # Text report to stdout
  empapp report --format yaml        # Structured YAML
  empapp report --format json -o salary.json
  empapp report -o report.txt        # Write the text report to a file`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var reportOutput string

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Write the report to a file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	recs, err := env.store.Load()
	if err != nil {
		return err
	}
	rep := report.Gather(recs, env.changes)

	format, err := resolveFormat(env.cfg)
	if err != nil {
		return err
	}

	var content string
	if format == output.FormatTable || format == output.FormatText {
		content = report.RenderText(rep) + "\n"
	} else {
		formatter, err := output.GetFormatter(format)
		if err != nil {
			return err
		}
		content, err = formatter.Format(rep)
		if err != nil {
			return err
		}
	}

	if reportOutput != "" {
		if err := os.WriteFile(reportOutput, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", reportOutput)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
