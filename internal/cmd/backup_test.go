package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRunBackup(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir, mustEmployee(t, "EMP001", "John", "Doe", "IT", 55000))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runBackup(cmd, nil); err != nil {
		t.Fatalf("runBackup: %v", err)
	}

	if !strings.Contains(out.String(), "Data backup created successfully!") {
		t.Errorf("output = %q", out.String())
	}

	matches, err := filepath.Glob(filepath.Join(dir, "employee_data_backup_*.csv"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("backup files = %v, want exactly one", matches)
	}
}

func TestRunBackup_NoDataFile(t *testing.T) {
	setTestDataDir(t)

	err := runBackup(&cobra.Command{}, nil)
	if err == nil {
		t.Fatal("expected error without a data file")
	}
	if !strings.Contains(err.Error(), "failed to create backup") {
		t.Errorf("error = %v", err)
	}
}
