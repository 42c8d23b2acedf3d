package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/analytics"
	"github.com/sofisch25/InClassEmpApp/internal/employee"
)

func TestStatsCmd_Args(t *testing.T) {
	cmd := &cobra.Command{}
	*cmd = *statsCmd

	if err := cmd.Args(cmd, []string{}); err != nil {
		t.Errorf("unexpected error with no args: %v", err)
	}
	if err := cmd.Args(cmd, []string{"top", "10"}); err != nil {
		t.Errorf("unexpected error with two args: %v", err)
	}
	if err := cmd.Args(cmd, []string{"top", "10", "extra"}); err == nil {
		t.Error("expected error with three args")
	}
}

func TestRunStats_Overall(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir,
		mustEmployee(t, "EMP001", "John", "Doe", "IT", 50000),
		mustManager(t, "MGR001", "Jane", "Smith", "HR", 80000, 3, "C-3"),
	)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runStats(cmd, nil); err != nil {
		t.Fatalf("runStats: %v", err)
	}

	got := out.String()
	for _, phrase := range []string{
		"OVERALL SALARY STATISTICS:",
		"  Total Employees: 2",
		"  Average Salary: $65,000.00",
		"  Minimum Salary: $50,000.00",
		"  Maximum Salary: $80,000.00",
		"  Median Salary: $80,000.00",
		"  Total Payroll: $130,000.00",
	} {
		if !strings.Contains(got, phrase) {
			t.Errorf("output missing %q in:\n%s", phrase, got)
		}
	}
}

func TestRunStats_Gap(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir,
		mustEmployee(t, "EMP001", "John", "Doe", "IT", 50000),
		mustManager(t, "MGR001", "Jane", "Smith", "HR", 80000, 3, "C-3"),
	)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runStats(cmd, []string{"gap"}); err != nil {
		t.Fatalf("runStats: %v", err)
	}

	got := out.String()
	for _, phrase := range []string{
		"SALARY GAP ANALYSIS:",
		"  Regular Employee Average: $50,000.00",
		"  Manager Average: $80,000.00",
		"  Absolute Gap: $30,000.00",
		"  Percentage Gap: 60.0%",
	} {
		if !strings.Contains(got, phrase) {
			t.Errorf("output missing %q in:\n%s", phrase, got)
		}
	}
}

func TestRunStats_GapNeedsBothTypes(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir, mustEmployee(t, "EMP001", "John", "Doe", "IT", 50000))

	err := runStats(&cobra.Command{}, []string{"gap"})
	if err == nil {
		t.Fatal("expected error without managers")
	}
	if !strings.Contains(err.Error(), "need both regular employees and managers") {
		t.Errorf("error = %v", err)
	}
}

func TestRunStats_TopWithCount(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir,
		mustEmployee(t, "EMP001", "John", "Doe", "IT", 50000),
		mustEmployee(t, "EMP002", "Bob", "Stone", "IT", 70000),
		mustEmployee(t, "EMP003", "Amy", "Reed", "HR", 60000),
	)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runStats(cmd, []string{"top", "2"}); err != nil {
		t.Fatalf("runStats: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "TOP 2 EARNERS:") {
		t.Errorf("output missing heading:\n%s", got)
	}
	if !strings.Contains(got, "  1. Bob Stone (IT) - $70,000.00") {
		t.Errorf("output missing first earner:\n%s", got)
	}
	if !strings.Contains(got, "  2. Amy Reed (HR) - $60,000.00") {
		t.Errorf("output missing second earner:\n%s", got)
	}
	if strings.Contains(got, "John Doe") {
		t.Errorf("output should clamp to two entries:\n%s", got)
	}
}

func TestRunStats_CountOnWrongSection(t *testing.T) {
	setTestDataDir(t)

	err := runStats(&cobra.Command{}, []string{"overall", "5"})
	if err == nil {
		t.Fatal("expected error for count on overall")
	}
	if !strings.Contains(err.Error(), "top and bottom") {
		t.Errorf("error = %v", err)
	}
}

func TestRunStats_InvalidCount(t *testing.T) {
	setTestDataDir(t)

	for _, bad := range []string{"zero", "0", "-3"} {
		err := runStats(&cobra.Command{}, []string{"top", bad})
		if err == nil {
			t.Errorf("expected error for count %q", bad)
			continue
		}
		if !strings.Contains(err.Error(), "invalid count") {
			t.Errorf("error for %q = %v", bad, err)
		}
	}
}

func TestRunStats_UnknownSection(t *testing.T) {
	setTestDataDir(t)

	err := runStats(&cobra.Command{}, []string{"salaries"})
	if err == nil {
		t.Fatal("expected error for unknown section")
	}
	if !strings.Contains(err.Error(), `unknown section "salaries"`) {
		t.Errorf("error = %v", err)
	}
}

func TestEarnerLines(t *testing.T) {
	recs := []employee.Record{
		mustEmployee(t, "EMP002", "Bob", "Stone", "IT", 70000),
		mustEmployee(t, "EMP003", "Amy", "Reed", "HR", 60000),
	}

	lines := earnerLines(recs)
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0].Rank != 1 || lines[0].Name != "Bob Stone" || lines[0].Salary != 70000 {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[1].Rank != 2 || lines[1].Department != "HR" {
		t.Errorf("second line = %+v", lines[1])
	}
}

func TestRenderTypeStats(t *testing.T) {
	groups := []analytics.TypeStatistics{
		{Label: "Regular Employees", Statistics: analytics.Statistics{Count: 2, Average: 52500, Min: 50000, Max: 55000}},
		{Label: "Managers", Statistics: analytics.Statistics{Count: 1, Average: 80000, Min: 80000, Max: 80000}},
	}

	var out bytes.Buffer
	renderTypeStats(&out, groups)
	got := out.String()

	for _, phrase := range []string{
		"SALARY BY EMPLOYEE TYPE:",
		"  Regular Employees:",
		"    Count: 2",
		"    Average: $52,500.00",
		"    Range: $50,000.00 - $55,000.00",
		"  Managers:",
	} {
		if !strings.Contains(got, phrase) {
			t.Errorf("output missing %q in:\n%s", phrase, got)
		}
	}
}
