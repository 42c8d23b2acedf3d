package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestShowCmd_Args(t *testing.T) {
	cmd := &cobra.Command{}
	*cmd = *showCmd

	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("expected error with no args")
	}
	if err := cmd.Args(cmd, []string{"EMP001", "EMP002"}); err == nil {
		t.Error("expected error with two args")
	}
	if err := cmd.Args(cmd, []string{"EMP001"}); err != nil {
		t.Errorf("unexpected error with one arg: %v", err)
	}
}

func TestRunShow(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir, mustManager(t, "MGR001", "Jane", "Smith", "HR", 85000, 4, "A-101"))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	// Lower-case id must still match
	if err := runShow(cmd, []string{"mgr001"}); err != nil {
		t.Fatalf("runShow: %v", err)
	}

	got := out.String()
	for _, phrase := range []string{
		"EMPLOYEE DETAILS:",
		"ID: MGR001",
		"Name: Jane Smith",
		"Salary: $85,000.00",
		"Team Size: 4",
	} {
		if !strings.Contains(got, phrase) {
			t.Errorf("output missing %q in:\n%s", phrase, got)
		}
	}
}

func TestRunShow_NotFound(t *testing.T) {
	setTestDataDir(t)

	cmd := &cobra.Command{}
	err := runShow(cmd, []string{"emp999"})
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !strings.Contains(err.Error(), "EMP999 not found") {
		t.Errorf("error = %v", err)
	}
}

func TestRunShow_YAML(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir, mustEmployee(t, "EMP001", "John", "Doe", "IT", 55000))

	outputFormat = "yaml"

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runShow(cmd, []string{"EMP001"}); err != nil {
		t.Fatalf("runShow: %v", err)
	}

	got := out.String()
	for _, phrase := range []string{
		"id: EMP001",
		"first_name: John",
		"department: IT",
		"salary: 55000",
	} {
		if !strings.Contains(got, phrase) {
			t.Errorf("yaml output missing %q in:\n%s", phrase, got)
		}
	}
}
