package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// editTestCmd builds a command with the edit flag set registered so
// Changed() reflects what the test sets.
func editTestCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	t.Cleanup(func() {
		editFirst = ""
		editLast = ""
		editDept = ""
		editPhone = ""
		editSalary = 0
		editTeamSize = 0
		editOffice = ""
	})

	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&editFirst, "first", "", "")
	cmd.Flags().StringVar(&editLast, "last", "", "")
	cmd.Flags().StringVar(&editDept, "department", "", "")
	cmd.Flags().StringVar(&editPhone, "phone", "", "")
	cmd.Flags().Float64Var(&editSalary, "salary", 0, "")
	cmd.Flags().IntVar(&editTeamSize, "team-size", 0, "")
	cmd.Flags().StringVar(&editOffice, "office", "", "")

	for name, value := range flags {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("set --%s=%s: %v", name, value, err)
		}
	}
	return cmd
}

func TestEditCmd_Args(t *testing.T) {
	cmd := &cobra.Command{}
	*cmd = *editCmd

	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("expected error with no args")
	}
	if err := cmd.Args(cmd, []string{"EMP001"}); err != nil {
		t.Errorf("unexpected error with one arg: %v", err)
	}
}

func TestRunEdit_Salary(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir, mustEmployee(t, "EMP001", "John", "Doe", "IT", 55000))

	cmd := editTestCmd(t, map[string]string{"salary": "62000"})
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := runEdit(cmd, []string{"emp001"}); err != nil {
		t.Fatalf("runEdit: %v", err)
	}

	if !strings.Contains(out.String(), "Updated Employee EMP001: John Doe") {
		t.Errorf("output = %q", out.String())
	}

	env, err := newAppEnv()
	if err != nil {
		t.Fatalf("newAppEnv: %v", err)
	}
	defer env.Close()

	if got := env.store.FindByID("EMP001").Base().Salary(); got != 62000 {
		t.Errorf("salary = %v, want 62000", got)
	}
}

func TestRunEdit_UnchangedFlagsKeepValues(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir, mustEmployee(t, "EMP001", "John", "Doe", "IT", 55000))

	cmd := editTestCmd(t, map[string]string{"department": "FIN"})

	if err := runEdit(cmd, []string{"EMP001"}); err != nil {
		t.Fatalf("runEdit: %v", err)
	}

	env, err := newAppEnv()
	if err != nil {
		t.Fatalf("newAppEnv: %v", err)
	}
	defer env.Close()

	base := env.store.FindByID("EMP001").Base()
	if base.Department() != "FIN" {
		t.Errorf("department = %q, want FIN", base.Department())
	}
	if base.FirstName() != "John" || base.Salary() != 55000 {
		t.Errorf("untouched fields changed: %s %v", base.FirstName(), base.Salary())
	}
}

func TestRunEdit_NotFound(t *testing.T) {
	setTestDataDir(t)

	cmd := editTestCmd(t, nil)
	err := runEdit(cmd, []string{"emp999"})
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !strings.Contains(err.Error(), "EMP999 not found") {
		t.Errorf("error = %v", err)
	}
}

func TestRunEdit_ManagerFlagsOnEmployee(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir, mustEmployee(t, "EMP001", "John", "Doe", "IT", 55000))

	cmd := editTestCmd(t, map[string]string{"team-size": "3"})
	err := runEdit(cmd, []string{"EMP001"})
	if err == nil {
		t.Fatal("expected error for manager flags on a regular employee")
	}
	if !strings.Contains(err.Error(), "apply only to managers") {
		t.Errorf("error = %v", err)
	}
}

func TestRunEdit_ManagerFields(t *testing.T) {
	dir := setTestDataDir(t)
	seedDataFile(t, dir, mustManager(t, "MGR001", "Jane", "Smith", "HR", 85000, 4, "A-101"))

	cmd := editTestCmd(t, map[string]string{"team-size": "6", "office": "C-1"})

	if err := runEdit(cmd, []string{"MGR001"}); err != nil {
		t.Fatalf("runEdit: %v", err)
	}

	env, err := newAppEnv()
	if err != nil {
		t.Fatalf("newAppEnv: %v", err)
	}
	defer env.Close()

	views := newRecordViews(mustLoad(t, env))
	if len(views) != 1 {
		t.Fatalf("records = %d, want 1", len(views))
	}
	if views[0].TeamSize == nil || *views[0].TeamSize != 6 || views[0].Office != "C-1" {
		t.Errorf("manager view = %+v", views[0])
	}
}
