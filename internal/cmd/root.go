// Package cmd contains all CLI commands for empapp.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is the current version of empapp
	Version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	dataDir      string
	forAgents    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "empapp",
	Short: "Personnel records management CLI",
	Long: `empapp manages a small personnel records collection: validated
employee and manager records stored in a flat CSV file, with an
operations log kept in a SQLite database beside it.

Running empapp with no subcommand starts the interactive menu. Every
menu operation is also available as a direct subcommand for scripting.

Main capabilities:
  - Create, edit, delete, and search validated records
  - Salary analytics: statistics, rankings, gap analysis, full report
  - Department summaries and timestamped CSV backups
  - Export records and the salary report to an Excel workbook
  - Project-based payroll computation from a YAML roster
  - MCP server exposing the records and the operations log to AI agents

Global Flags:
  --format     Output format for subcommands: table (default) | yaml | json
  --data-dir   Directory holding the data files (default: from config)

Examples:
  empapp                             # Interactive menu
  empapp list --department IT        # List one department
  empapp create --type manager --id MGR001 --first Jane --last Smith \
      --department IT --phone 5559876543 --salary 85000 --team-size 4
  empapp stats gap                   # Manager vs regular pay gap
  empapp report -o report.txt        # Write the full salary report
  empapp serve                       # Start the MCP server (stdio)

See 'empapp <command> --help' for command-specific options.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runMenu,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (table|yaml|json)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the data files")
	rootCmd.PersistentFlags().BoolVar(&forAgents, "for-agents", false, "Output machine-readable capability discovery JSON")

	// Set custom help function to intercept --for-agents flag
	originalHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if forAgents {
			outputAgentHelp(cmd)
			return
		}
		originalHelp(cmd, args)
	})
}

// CommandInfo represents a command for agent discovery
type CommandInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Usage       string        `json:"usage"`
	Flags       []FlagInfo    `json:"flags,omitempty"`
	Subcommands []CommandInfo `json:"subcommands,omitempty"`
	Examples    []string      `json:"examples,omitempty"`
}

// FlagInfo represents a command flag for agent discovery
type FlagInfo struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
}

// outputAgentHelp outputs machine-readable JSON describing all commands
func outputAgentHelp(cmd *cobra.Command) {
	root := buildCommandInfo(cmd.Root())

	output := map[string]interface{}{
		"version":      Version,
		"commands":     root.Subcommands,
		"global_flags": root.Flags,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

// buildCommandInfo recursively builds command information for agent discovery
func buildCommandInfo(cmd *cobra.Command) CommandInfo {
	info := CommandInfo{
		Name:        cmd.Name(),
		Description: cmd.Short,
		Usage:       cmd.UseLine(),
	}

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		info.Flags = append(info.Flags, FlagInfo{
			Name:        f.Name,
			Shorthand:   f.Shorthand,
			Description: f.Usage,
			Type:        f.Value.Type(),
			Default:     f.DefValue,
		})
	})

	for _, sub := range cmd.Commands() {
		if !sub.Hidden {
			info.Subcommands = append(info.Subcommands, buildCommandInfo(sub))
		}
	}

	if cmd.Example != "" {
		lines := strings.Split(cmd.Example, "\n")
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" {
				info.Examples = append(info.Examples, trimmed)
			}
		}
	}

	return info
}
