package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the employee data file",
	Long: `Write a timestamped backup copy of the employee data file.

The backup lands next to the data file with a _backup_YYYYMMDD_HHMMSS
suffix, so repeated backups never overwrite each other.

Examples:
  empapp backup`,
	Args: cobra.NoArgs,
	RunE: runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if !env.store.Backup() {
		return fmt.Errorf("failed to create backup")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Data backup created successfully!")
	return nil
}
