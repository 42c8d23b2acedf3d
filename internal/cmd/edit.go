package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/employee"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing employee",
	Long: `Edit fields of an existing employee record.

Only the flags you provide change; everything else keeps its current
value. Replacement values go through the same validation as create.
Salary changes are tracked in the session's salary change history and
every successful edit is recorded in the operations log.

Examples:
  empapp edit EMP001 --salary 62000
  empapp edit EMP001 --department FIN --phone 555-999-0000
  empapp edit MGR001 --team-size 6 --office B-204`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editFirst    string
	editLast     string
	editDept     string
	editPhone    string
	editSalary   float64
	editTeamSize int
	editOffice   string
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editFirst, "first", "", "New first name")
	editCmd.Flags().StringVar(&editLast, "last", "", "New last name")
	editCmd.Flags().StringVar(&editDept, "department", "", "New department code")
	editCmd.Flags().StringVar(&editPhone, "phone", "", "New phone number")
	editCmd.Flags().Float64Var(&editSalary, "salary", 0, "New annual salary")
	editCmd.Flags().IntVar(&editTeamSize, "team-size", 0, "New team size (managers only)")
	editCmd.Flags().StringVar(&editOffice, "office", "", "New office number (managers only)")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	base := rec.Base()
	oldSalary := base.Salary()
	flags := cmd.Flags()

	if flags.Changed("first") {
		if err := base.SetFirstName(editFirst); err != nil {
			return err
		}
	}
	if flags.Changed("last") {
		if err := base.SetLastName(editLast); err != nil {
			return err
		}
	}
	if flags.Changed("department") {
		if err := base.SetDepartment(editDept); err != nil {
			return err
		}
	}
	if flags.Changed("phone") {
		if err := base.SetPhoneNumber(editPhone); err != nil {
			return err
		}
	}
	if flags.Changed("salary") {
		if err := base.SetSalary(editSalary); err != nil {
			return err
		}
	}

	if mgr, ok := rec.(*employee.Manager); ok {
		if flags.Changed("team-size") {
			if err := mgr.SetTeamSize(editTeamSize); err != nil {
				return err
			}
		}
		if flags.Changed("office") {
			mgr.SetOfficeNumber(editOffice)
		}
	} else if flags.Changed("team-size") || flags.Changed("office") {
		return fmt.Errorf("--team-size and --office apply only to managers")
	}

	if !env.store.Update(id, rec) {
		return fmt.Errorf("failed to update employee %s", id)
	}

	recordUpdated(env, rec, oldSalary)
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s: %s\n", rec.Type(), id, base.FullName())
	return nil
}
