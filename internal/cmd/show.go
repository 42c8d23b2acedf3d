package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/audit"
	"github.com/sofisch25/InClassEmpApp/internal/output"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one employee's details",
	Long: `Display the details card for a single employee.

The id is matched exactly after upper-casing, so "emp001" finds EMP001.
For managers the card includes the team size and office number.

Examples:
  empapp show EMP001                # Details card
  empapp show emp001 --format yaml  # Structured output
  empapp show EMP002 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	id := strings.ToUpper(strings.TrimSpace(args[0]))
	rec := env.store.FindByID(id)
	if rec == nil {
		return fmt.Errorf("employee %s not found", id)
	}

	env.audit.Record(audit.OpSelect, audit.SearchStatement("id", id), "Found 1 employees")

	format, err := resolveFormat(env.cfg)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		renderRecordDetails(cmd.OutOrStdout(), rec)
		return nil
	}

	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.FormatToWriter(cmd.OutOrStdout(), newRecordView(rec))
}
