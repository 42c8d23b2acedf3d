package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestReportCmd_Structure(t *testing.T) {
	if reportCmd == nil {
		t.Fatal("reportCmd is nil")
	}

	if reportCmd.Use != "report" {
		t.Errorf("Use = %q, want %q", reportCmd.Use, "report")
	}
}

func TestReportCmd_Flags(t *testing.T) {
	outputFlag := reportCmd.Flags().Lookup("output")
	if outputFlag == nil {
		t.Fatal("missing --output flag")
	}
	if outputFlag.Shorthand != "o" {
		t.Errorf("expected --output shorthand to be 'o', got '%s'", outputFlag.Shorthand)
	}
	if outputFlag.DefValue != "" {
		t.Errorf("--output default = %q, want empty (stdout)", outputFlag.DefValue)
	}
}

func TestReportCmd_Args(t *testing.T) {
	cmd := &cobra.Command{}
	*cmd = *reportCmd

	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Error("expected error for positional args")
	}
	if err := cmd.Args(cmd, []string{}); err != nil {
		t.Errorf("unexpected error with no args: %v", err)
	}
}

func TestReportCmd_HelpOutput(t *testing.T) {
	expectedPhrases := []string{
		"salary",
		"report",
	}

	for _, phrase := range expectedPhrases {
		if !strings.Contains(strings.ToLower(reportCmd.Long), phrase) {
			t.Errorf("Long help missing phrase: %s", phrase)
		}
	}
}

func TestRunReport_Stdout(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir,
		mustEmployee(t, "EMP001", "John", "Doe", "IT", 50000),
		mustManager(t, "MGR001", "Jane", "Smith", "HR", 80000, 3, "C-3"),
	)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runReport(cmd, nil); err != nil {
		t.Fatalf("runReport: %v", err)
	}

	got := out.String()
	for _, phrase := range []string{
		"EMPLOYEE SALARY ANALYTICS REPORT",
		"Jane Smith",
	} {
		if !strings.Contains(got, phrase) {
			t.Errorf("report missing %q", phrase)
		}
	}
}

func TestRunReport_OutputFile(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir, mustEmployee(t, "EMP001", "John", "Doe", "IT", 50000))

	path := filepath.Join(dir, "report.txt")
	reportOutput = path
	t.Cleanup(func() { reportOutput = "" })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runReport(cmd, nil); err != nil {
		t.Fatalf("runReport: %v", err)
	}

	if !strings.Contains(out.String(), "Report written to "+path) {
		t.Errorf("output = %q", out.String())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report file: %v", err)
	}
	if !strings.Contains(string(content), "EMPLOYEE SALARY ANALYTICS REPORT") {
		t.Error("report file missing banner")
	}
}

func TestRunReport_JSON(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir,
		mustEmployee(t, "EMP001", "John", "Doe", "IT", 50000),
		mustManager(t, "MGR001", "Jane", "Smith", "HR", 80000, 3, "C-3"),
	)

	outputFormat = "json"

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runReport(cmd, nil); err != nil {
		t.Fatalf("runReport: %v", err)
	}

	got := out.String()
	for _, phrase := range []string{
		`"overall"`,
		`"departments"`,
		`"gap"`,
		`"top_earners"`,
	} {
		if !strings.Contains(got, phrase) {
			t.Errorf("json report missing %q in:\n%s", phrase, got)
		}
	}
}
