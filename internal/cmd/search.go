package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/audit"
	"github.com/sofisch25/InClassEmpApp/internal/output"
	"github.com/sofisch25/InClassEmpApp/internal/store"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search employees by id, name, department, or type",
	Long: `Search the employee collection by exactly one criterion.

Matching rules follow the interactive menu's search:
  --id          substring of the id, case-insensitive
  --name        substring of the first or last name, case-insensitive
  --department  exact department code, case-insensitive
  --type        record type, Employee or Manager

Every search is recorded in the operations log with the statement a
relational backend would have run.

Examples:
  empapp search --id EMP           # Ids containing EMP
  empapp search --name john        # First or last name containing john
  empapp search --department IT    # Everyone in IT
  empapp search --type Manager     # All managers
  empapp search --name doe --format json`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

var (
	searchID   string
	searchName string
	searchDept string
	searchType string
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchID, "id", "", "Match ids containing this text")
	searchCmd.Flags().StringVar(&searchName, "name", "", "Match first or last names containing this text")
	searchCmd.Flags().StringVar(&searchDept, "department", "", "Match this department code exactly")
	searchCmd.Flags().StringVar(&searchType, "type", "", "Match this record type (Employee or Manager)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	var (
		filter       store.Filter
		field, value string
		criteria     int
	)
	if searchID != "" {
		filter.ID = strings.ToUpper(searchID)
		field, value = "id", filter.ID
		criteria++
	}
	if searchName != "" {
		filter.Name = searchName
		field, value = "name", searchName
		criteria++
	}
	if searchDept != "" {
		filter.Department = strings.ToUpper(searchDept)
		field, value = "department", filter.Department
		criteria++
	}
	if searchType != "" {
		filter.Type = searchType
		field, value = "type", searchType
		criteria++
	}
	if criteria != 1 {
		return fmt.Errorf("specify exactly one of --id, --name, --department, or --type")
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	recs, err := env.store.Search(filter)
	if err != nil {
		return err
	}

	env.audit.Record(audit.OpSelect, audit.SearchStatement(field, value),
		fmt.Sprintf("Found %d employees", len(recs)))

	format, err := resolveFormat(env.cfg)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		renderRecordTable(cmd.OutOrStdout(), recs, "SEARCH RESULTS")
		return nil
	}

	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.FormatToWriter(cmd.OutOrStdout(), newRecordViews(recs))
}
