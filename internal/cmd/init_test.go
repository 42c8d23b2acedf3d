package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// chdirTemp moves the process into a temp directory for the test.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

func TestRunInit(t *testing.T) {
	dir := chdirTemp(t)

	if err := runInit(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	configPath := filepath.Join(dir, ".empapp", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# empapp configuration") {
		t.Errorf("config missing header comment:\n%s", content)
	}
	for _, phrase := range []string{
		"file: employee_data.csv",
		"audit_file: employees.db",
		"level: info",
		"format: table",
	} {
		if !strings.Contains(content, phrase) {
			t.Errorf("config missing %q:\n%s", phrase, content)
		}
	}

	csvData, err := os.ReadFile(filepath.Join(dir, "employee_data.csv"))
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	header := strings.TrimSpace(string(csvData))
	if header != "id,firstName,lastName,department,phoneNumber,salary,employeeType,teamSize,officeNumber" {
		t.Errorf("data file header = %q", header)
	}
}

func TestRunInit_AlreadyInitialized(t *testing.T) {
	dir := chdirTemp(t)

	if err := runInit(&cobra.Command{}, nil); err != nil {
		t.Fatalf("first runInit: %v", err)
	}

	// Second run must not clobber the config
	configPath := filepath.Join(dir, ".empapp", "config.yaml")
	before, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	if err := runInit(&cobra.Command{}, nil); err != nil {
		t.Fatalf("second runInit: %v", err)
	}

	after, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("re-read config: %v", err)
	}
	if string(before) != string(after) {
		t.Error("repeated init rewrote the config without --force")
	}
}

func TestRunInit_Force(t *testing.T) {
	dir := chdirTemp(t)

	if err := runInit(&cobra.Command{}, nil); err != nil {
		t.Fatalf("first runInit: %v", err)
	}

	configPath := filepath.Join(dir, ".empapp", "config.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: json\n"), 0644); err != nil {
		t.Fatalf("modify config: %v", err)
	}

	initForce = true
	t.Cleanup(func() { initForce = false })

	if err := runInit(&cobra.Command{}, nil); err != nil {
		t.Fatalf("forced runInit: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "format: table") {
		t.Errorf("forced init should restore defaults:\n%s", data)
	}
}
