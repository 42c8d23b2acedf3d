package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start the interactive text menu. This is also what running empapp
with no subcommand does.

The menu offers the full record lifecycle (create, edit, delete,
display, search), department summaries, the salary analytics submenu,
backups, and the operations log viewer.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	session := newMenuSession(env, os.Stdin, cmd.OutOrStdout())
	return session.run()
}

// menuSession drives one interactive run over an input reader and an
// output writer. Prompts re-ask on bad input; EOF anywhere behaves like
// choosing Quit.
type menuSession struct {
	env *appEnv
	in  *bufio.Reader
	out io.Writer
}

func newMenuSession(env *appEnv, in io.Reader, out io.Writer) *menuSession {
	return &menuSession{env: env, in: bufio.NewReader(in), out: out}
}

// run shows the welcome screen and loops over the main menu until Quit.
func (m *menuSession) run() error {
	m.welcome()

	for {
		m.header()
		m.mainMenu()

		choice := m.menuChoice()
		switch choice {
		case "1":
			m.createEmployee()
		case "2":
			m.editEmployee()
		case "3":
			m.deleteEmployee()
		case "4":
			m.displayAllEmployees()
		case "5":
			m.searchEmployees()
		case "6":
			m.departmentSummary()
		case "7":
			m.salaryAnalytics()
		case "8":
			m.backupData()
		case "9":
			m.viewOperationsLog()
		case "10":
			m.goodbye()
			return nil
		}
	}
}

func (m *menuSession) header() {
	fmt.Fprintln(m.out, strings.Repeat("=", 60))
	fmt.Fprintln(m.out, "           EMPLOYEE MANAGEMENT SYSTEM")
	fmt.Fprintln(m.out, strings.Repeat("=", 60))
	fmt.Fprintln(m.out)
}

func (m *menuSession) mainMenu() {
	fmt.Fprintln(m.out, "MAIN MENU:")
	fmt.Fprintln(m.out, "1. Create New Employee")
	fmt.Fprintln(m.out, "2. Edit Existing Employee")
	fmt.Fprintln(m.out, "3. Delete Existing Employee")
	fmt.Fprintln(m.out, "4. Display All Employees")
	fmt.Fprintln(m.out, "5. Search Employees")
	fmt.Fprintln(m.out, "6. Display Department Summary")
	fmt.Fprintln(m.out, "7. Salary Analytics")
	fmt.Fprintln(m.out, "8. Backup Data")
	fmt.Fprintln(m.out, "9. View Operations Log")
	fmt.Fprintln(m.out, "10. Quit")
	fmt.Fprintln(m.out, strings.Repeat("-", 40))
}

// menuChoice reads a main-menu selection, re-prompting on anything
// outside 1-10. EOF selects Quit.
func (m *menuSession) menuChoice() string {
	for {
		choice, err := m.prompt("Enter your choice (1-10): ")
		if err != nil {
			fmt.Fprintln(m.out, "\nExiting...")
			return "10"
		}
		switch choice {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10":
			return choice
		}
		m.errorMsg("Invalid choice. Please enter 1-10.")
	}
}

func (m *menuSession) welcome() {
	m.header()
	fmt.Fprintln(m.out, "Welcome to the Employee Management System!")
	fmt.Fprintln(m.out, "This system allows you to manage employee records")
	fmt.Fprintln(m.out, "with full CRUD operations and data validation.")
	fmt.Fprintln(m.out)
	m.pause()
}

func (m *menuSession) goodbye() {
	m.header()
	fmt.Fprintln(m.out, "Thank you for using the Employee Management System!")
	fmt.Fprintln(m.out, "All data has been saved successfully.")
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Goodbye!")
}

// readLine reads one input line without the trailing newline. It returns
// io.EOF only when the stream ends before any content.
func (m *menuSession) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt prints a label and reads the trimmed response.
func (m *menuSession) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptNonEmpty re-asks until the response is non-empty. An empty
// answer shows errMsg; EOF gives up with an error.
func (m *menuSession) promptNonEmpty(label, errMsg string) (string, error) {
	for {
		v, err := m.prompt(label)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		m.errorMsg(errMsg)
	}
}

// confirm asks a y/n question, re-asking until the answer parses.
func (m *menuSession) confirm(message string) bool {
	for {
		resp, err := m.prompt(message + " (y/n): ")
		if err != nil {
			return false
		}
		switch strings.ToLower(resp) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(m.out, "Please enter 'y' or 'n'.")
	}
}

func (m *menuSession) pause() {
	fmt.Fprint(m.out, "Press Enter to continue...")
	m.readLine()
	fmt.Fprintln(m.out)
}

func (m *menuSession) message(msg string) {
	fmt.Fprintf(m.out, "\n%s\n", msg)
	m.pause()
}

func (m *menuSession) errorMsg(msg string) {
	fmt.Fprintf(m.out, "\nERROR: %s\n", msg)
	m.pause()
}

func (m *menuSession) success(msg string) {
	fmt.Fprintf(m.out, "\nSUCCESS: %s\n", msg)
	m.pause()
}

// screenTitle prints a section heading with an underline rule.
func (m *menuSession) screenTitle(title string, width int) {
	fmt.Fprintln(m.out, title)
	fmt.Fprintln(m.out, strings.Repeat("-", width))
}
