package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/audit"
	"github.com/sofisch25/InClassEmpApp/internal/output"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the SQL operations log",
	Long: `Show recent entries from the SQL operations log.

Every data operation records the statement a relational backend would
have run, together with a result summary. Entries persist across runs in
the operations database and are shown oldest first.

Examples:
  empapp log                     # Last 20 operations
  empapp log --limit 50          # More history
  empapp log --format json       # Structured output
  empapp log clear               # Wipe the log`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

// logClearCmd represents the log clear subcommand
var logClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the SQL operations log",
	Long: `Remove every entry from the SQL operations log.

The employee data itself is untouched; only the recorded operation
history is wiped.`,
	Args: cobra.NoArgs,
	RunE: runLogClear,
}

var logLimit int

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logClearCmd)

	logCmd.Flags().IntVar(&logLimit, "limit", operationsViewLimit, "Number of entries to show")
}

// operationView is the structured (yaml/json) projection of a log entry.
type operationView struct {
	ID         int64  `yaml:"id" json:"id"`
	SessionID  string `yaml:"session_id" json:"session_id"`
	RecordedAt string `yaml:"recorded_at" json:"recorded_at"`
	Operation  string `yaml:"operation" json:"operation"`
	Statement  string `yaml:"statement" json:"statement"`
	Detail     string `yaml:"detail,omitempty" json:"detail,omitempty"`
}

// renderOperations writes the numbered log listing used by the menu and
// the log command.
func renderOperations(w io.Writer, ops []audit.Operation) {
	fmt.Fprintln(w, "\nSQL OPERATIONS LOG:")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for i, op := range ops {
		fmt.Fprintf(w, "%d. %s - %s\n", i+1, op.RecordedAt.Format("2006-01-02 15:04:05"), op.Op)
		fmt.Fprintf(w, "   SQL: %s\n", op.Statement)
		if op.Detail != "" {
			fmt.Fprintf(w, "   Result: %s\n", op.Detail)
		}
		fmt.Fprintln(w)
	}
}

func runLog(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ops, err := env.audit.Recent(logLimit)
	if err != nil {
		return err
	}

	format, err := resolveFormat(env.cfg)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		if len(ops) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No SQL operations logged.")
			return nil
		}
		renderOperations(cmd.OutOrStdout(), ops)
		return nil
	}

	views := make([]operationView, len(ops))
	for i, op := range ops {
		views[i] = operationView{
			ID:         op.ID,
			SessionID:  op.SessionID,
			RecordedAt: op.RecordedAt.Format("2006-01-02 15:04:05"),
			Operation:  op.Op,
			Statement:  op.Statement,
			Detail:     op.Detail,
		}
	}

	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.FormatToWriter(cmd.OutOrStdout(), views)
}

func runLogClear(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	count, err := env.audit.Count()
	if err != nil {
		return err
	}
	if err := env.audit.Clear(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d operations log entries.\n", count)
	return nil
}
