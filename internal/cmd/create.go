package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/employee"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new employee",
	Long: `Create a new employee or manager record.

Every field is validated the same way the interactive menu validates it:
names must not contain digits, the department is a 2-3 letter code, and
the phone number must contain exactly 10 digits in any punctuation. The
id is stored upper-cased and must be unique. Successful creates are
recorded in the operations log.

Examples:
  empapp create --id EMP001 --first John --last Doe \
    --department IT --phone 555-123-4567 --salary 55000

  empapp create --type manager --id MGR001 --first Jane --last Smith \
    --department HR --phone "(555) 987-6543" --salary 85000 \
    --team-size 4 --office A-101`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

var (
	createType     string
	createID       string
	createFirst    string
	createLast     string
	createDept     string
	createPhone    string
	createSalary   float64
	createTeamSize int
	createOffice   string
)

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createType, "type", "employee", "Record type: employee or manager")
	createCmd.Flags().StringVar(&createID, "id", "", "Unique employee id (required)")
	createCmd.Flags().StringVar(&createFirst, "first", "", "First name (required)")
	createCmd.Flags().StringVar(&createLast, "last", "", "Last name (required)")
	createCmd.Flags().StringVar(&createDept, "department", "", "Department code, 2-3 letters (required)")
	createCmd.Flags().StringVar(&createPhone, "phone", "", "Phone number, 10 digits in any format (required)")
	createCmd.Flags().Float64Var(&createSalary, "salary", 0, "Annual salary")
	createCmd.Flags().IntVar(&createTeamSize, "team-size", 0, "Team size (managers only)")
	createCmd.Flags().StringVar(&createOffice, "office", "", "Office number (managers only)")

	_ = createCmd.MarkFlagRequired("id")
	_ = createCmd.MarkFlagRequired("first")
	_ = createCmd.MarkFlagRequired("last")
	_ = createCmd.MarkFlagRequired("department")
	_ = createCmd.MarkFlagRequired("phone")
}

func runCreate(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	id := strings.ToUpper(createID)

	var rec employee.Record
	switch strings.ToLower(createType) {
	case "employee":
		if cmd.Flags().Changed("team-size") || cmd.Flags().Changed("office") {
			return fmt.Errorf("--team-size and --office apply only to managers")
		}
		rec, err = employee.New(id, createFirst, createLast, createDept, createPhone, createSalary)
	case "manager":
		rec, err = employee.NewManager(id, createFirst, createLast, createDept, createPhone,
			createSalary, createTeamSize, createOffice)
	default:
		return fmt.Errorf("unknown type %q (expected employee or manager)", createType)
	}
	if err != nil {
		return err
	}

	if !env.store.Add(rec) {
		return fmt.Errorf("failed to create employee: id %s may already exist", rec.ID())
	}

	recordCreated(env, rec)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s: %s\n", rec.Type(), rec.ID(), rec.Base().FullName())
	return nil
}
