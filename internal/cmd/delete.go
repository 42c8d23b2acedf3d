package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an employee",
	Long: `Delete an employee record by id.

The record's details card is shown and the delete must be confirmed
unless --yes is given. Deletes are recorded in the operations log and in
the session's salary change history.

Examples:
  empapp delete EMP001         # Ask before deleting
  empapp delete EMP001 --yes   # No confirmation prompt`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteYes bool

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	renderRecordDetails(out, rec)

	if !deleteYes {
		fmt.Fprint(out, "\nAre you sure you want to delete this employee? (y/n): ")
		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Delete cancelled.")
			return nil
		}
	}

	if !env.store.Delete(id) {
		return fmt.Errorf("failed to delete employee %s", id)
	}

	recordDeleted(env, rec)
	fmt.Fprintf(out, "Deleted %s %s: %s\n", rec.Type(), id, rec.Base().FullName())
	return nil
}
