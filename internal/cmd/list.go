package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/audit"
	"github.com/sofisch25/InClassEmpApp/internal/output"
	"github.com/sofisch25/InClassEmpApp/internal/store"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	Long: `List the employee collection.

The default table output matches the interactive menu's listing: one line
per record plus a sub-line with team details for managers. Use
--department or --type to narrow the result, and --format for
machine-readable output.

Examples:
  empapp list                            # Everyone, as a table
  empapp list --department IT            # One department
  empapp list --type Manager             # Managers only
  empapp list --format json              # Structured output`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listDepartment string
	listType       string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listDepartment, "department", "", "Restrict to one department code")
	listCmd.Flags().StringVar(&listType, "type", "", "Restrict to one record type (Employee or Manager)")
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	filter := store.Filter{Department: listDepartment, Type: listType}
	recs, err := env.store.Search(filter)
	if err != nil {
		return err
	}

	if filter.IsZero() {
		env.audit.Record(audit.OpSelect, audit.SelectAllStatement,
			fmt.Sprintf("Retrieved %d employees", len(recs)))
	} else {
		field, value := "department", listDepartment
		if listDepartment == "" {
			field, value = "type", listType
		}
		env.audit.Record(audit.OpSelect, audit.SearchStatement(field, value),
			fmt.Sprintf("Found %d employees", len(recs)))
	}

	format, err := resolveFormat(env.cfg)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		renderRecordTable(cmd.OutOrStdout(), recs, "ALL EMPLOYEES")
		return nil
	}

	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.FormatToWriter(cmd.OutOrStdout(), newRecordViews(recs))
}
