package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/config"
	"github.com/sofisch25/InClassEmpApp/internal/store"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the .empapp directory and data files",
	Long: `Initialize the .empapp directory in the current directory.

This writes a commented config.yaml with the default settings and
creates the employee data file with its header row, so every other
command has a collection to work against.

Examples:
  empapp init          # Initialize in current directory
  empapp init --force  # Rewrite config.yaml with the defaults`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Rewrite config.yaml even if it already exists")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	configPath := filepath.Join(cwd, config.ConfigDirName, config.ConfigFileName)
	_, err = os.Stat(configPath)
	if err == nil {
		if !initForce {
			relPath, _ := filepath.Rel(cwd, filepath.Dir(configPath))
			fmt.Printf("Already initialized at %s\n", relPath)
			return nil
		}
		if err := os.Remove(configPath); err != nil {
			return fmt.Errorf("removing existing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config path: %w", err)
	}

	written, err := config.SaveDefault(cwd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFromPath(written)
	if err != nil {
		return err
	}

	// Seed the data file with its header row so list and the menu have a
	// well-formed collection from the start.
	dataPath := cfg.DataPath()
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		st := store.Open(dataPath, zerolog.Nop())
		if err := st.Save(nil); err != nil {
			return fmt.Errorf("initializing data file: %w", err)
		}
	}

	relPath, _ := filepath.Rel(cwd, written)
	fmt.Printf("Initialized empapp config at %s\n", relPath)
	fmt.Printf("Data file: %s\n", dataPath)
	return nil
}
