package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sofisch25/InClassEmpApp/internal/analytics"
	"github.com/sofisch25/InClassEmpApp/internal/audit"
	"github.com/sofisch25/InClassEmpApp/internal/employee"
	"github.com/sofisch25/InClassEmpApp/internal/report"
	"github.com/sofisch25/InClassEmpApp/internal/store"
)

// operationsViewLimit bounds the menu's operations log display.
const operationsViewLimit = 20

// recentChangesViewLimit bounds the analytics recent-changes display.
const recentChangesViewLimit = 10

func (m *menuSession) createEmployee() {
	m.screenTitle("CREATE NEW EMPLOYEE", 30)

	isManager, ok := m.promptEmployeeType()
	if !ok {
		return
	}

	id, err := m.promptNonEmpty("Enter Employee ID: ", "Employee ID cannot be empty.")
	if err != nil {
		return
	}
	id = strings.ToUpper(id)

	first, err := m.promptNonEmpty("Enter First Name: ", "First name cannot be empty.")
	if err != nil {
		return
	}
	last, err := m.promptNonEmpty("Enter Last Name: ", "Last name cannot be empty.")
	if err != nil {
		return
	}
	dept, err := m.promptNonEmpty("Enter Department (3 letters, e.g., HR, IT, FIN): ", "Department cannot be empty.")
	if err != nil {
		return
	}
	phone, err := m.promptNonEmpty("Enter Phone Number (10 digits, any format): ", "Phone number cannot be empty.")
	if err != nil {
		return
	}
	salary, err := m.promptSalary("Enter Annual Salary (blank for 0): ", 0)
	if err != nil {
		return
	}

	var rec employee.Record
	if isManager {
		teamSize, err := m.promptTeamSize()
		if err != nil {
			return
		}
		office, err := m.prompt("Enter Office Number (optional): ")
		if err != nil {
			return
		}

		mgr, buildErr := employee.NewManager(id, first, last, dept, phone, salary, teamSize, office)
		if buildErr != nil {
			m.errorMsg("Validation error: " + buildErr.Error())
			return
		}
		rec = mgr
	} else {
		emp, buildErr := employee.New(id, first, last, dept, phone, salary)
		if buildErr != nil {
			m.errorMsg("Validation error: " + buildErr.Error())
			return
		}
		rec = emp
	}

	if !m.env.store.Add(rec) {
		m.errorMsg("Failed to create employee. ID may already exist.")
		return
	}

	recordCreated(m.env, rec)
	m.success(fmt.Sprintf("Employee %s created successfully!", rec.ID()))
}

// promptEmployeeType shows the type submenu. The second return is false
// when input ended before a choice was made.
func (m *menuSession) promptEmployeeType() (isManager, ok bool) {
	for {
		fmt.Fprintln(m.out, "\nEmployee Type:")
		fmt.Fprintln(m.out, "1. Regular Employee")
		fmt.Fprintln(m.out, "2. Manager")

		choice, err := m.prompt("Select type (1-2): ")
		if err != nil {
			return false, false
		}
		switch choice {
		case "1":
			return false, true
		case "2":
			return true, true
		}
		m.errorMsg("Invalid choice. Please enter 1 or 2.")
	}
}

// promptSalary reads a salary value, re-asking on non-numeric input. A
// blank answer keeps the fallback.
func (m *menuSession) promptSalary(label string, fallback float64) (float64, error) {
	for {
		v, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		if v == "" {
			return fallback, nil
		}
		salary, parseErr := strconv.ParseFloat(v, 64)
		if parseErr != nil {
			m.errorMsg("Salary must be a number.")
			continue
		}
		return salary, nil
	}
}

func (m *menuSession) promptTeamSize() (int, error) {
	for {
		v, err := m.prompt("Enter Team Size (0 or more): ")
		if err != nil {
			return 0, err
		}
		size, parseErr := strconv.Atoi(v)
		if parseErr != nil || size < 0 {
			m.errorMsg("Team size must be a number.")
			continue
		}
		return size, nil
	}
}

// promptEmployeeID asks for an id to act on, upper-casing the answer.
func (m *menuSession) promptEmployeeID(action string) (string, error) {
	id, err := m.promptNonEmpty(
		fmt.Sprintf("Enter Employee ID to %s: ", action),
		"Employee ID cannot be empty.")
	if err != nil {
		return "", err
	}
	return strings.ToUpper(id), nil
}

func (m *menuSession) editEmployee() {
	m.screenTitle("EDIT EMPLOYEE", 20)

	id, err := m.promptEmployeeID("edit")
	if err != nil {
		return
	}

	rec := m.env.store.FindByID(id)
	if rec == nil {
		m.errorMsg(fmt.Sprintf("Employee %s not found.", id))
		return
	}

	renderRecordDetails(m.out, rec)

	if !m.confirm("Do you want to edit this employee?") {
		return
	}

	base := rec.Base()
	oldSalary := base.Salary()

	fmt.Fprintln(m.out, "\nEnter new information (press Enter to keep current value):")

	fmt.Fprintf(m.out, "Current First Name: %s\n", base.FirstName())
	first, err := m.prompt("New First Name: ")
	if err != nil {
		return
	}
	fmt.Fprintf(m.out, "Current Last Name: %s\n", base.LastName())
	last, err := m.prompt("New Last Name: ")
	if err != nil {
		return
	}
	fmt.Fprintf(m.out, "Current Department: %s\n", base.Department())
	dept, err := m.prompt("New Department: ")
	if err != nil {
		return
	}
	fmt.Fprintf(m.out, "Current Phone: %s\n", base.FormattedPhone())
	phone, err := m.prompt("New Phone: ")
	if err != nil {
		return
	}
	fmt.Fprintf(m.out, "Current Salary: %s\n", formatMoney(base.Salary()))
	salary, err := m.promptSalary("New Salary: ", base.Salary())
	if err != nil {
		return
	}

	if err := applyEdit(base, first, last, dept, phone, salary); err != nil {
		m.errorMsg("Validation error: " + err.Error())
		return
	}

	if mgr, ok := rec.(*employee.Manager); ok {
		fmt.Fprintf(m.out, "Current Team Size: %d\n", mgr.TeamSize())
		size, err := m.prompt("New Team Size: ")
		if err != nil {
			return
		}
		if n, convErr := strconv.Atoi(size); convErr == nil && n >= 0 {
			_ = mgr.SetTeamSize(n)
		}

		fmt.Fprintf(m.out, "Current Office: %s\n", mgr.OfficeNumber())
		office, err := m.prompt("New Office: ")
		if err != nil {
			return
		}
		if office != "" {
			mgr.SetOfficeNumber(office)
		}
	}

	if !m.env.store.Update(id, rec) {
		m.errorMsg("Failed to update employee.")
		return
	}

	recordUpdated(m.env, rec, oldSalary)
	m.success(fmt.Sprintf("Employee %s updated successfully!", id))
}

// applyEdit pushes non-empty replacement values through the validating
// setters, stopping at the first rejection.
func applyEdit(base *employee.Employee, first, last, dept, phone string, salary float64) error {
	if first != "" {
		if err := base.SetFirstName(first); err != nil {
			return err
		}
	}
	if last != "" {
		if err := base.SetLastName(last); err != nil {
			return err
		}
	}
	if dept != "" {
		if err := base.SetDepartment(dept); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := base.SetPhoneNumber(phone); err != nil {
			return err
		}
	}
	return base.SetSalary(salary)
}

func (m *menuSession) deleteEmployee() {
	m.screenTitle("DELETE EMPLOYEE", 20)

	id, err := m.promptEmployeeID("delete")
	if err != nil {
		return
	}

	rec := m.env.store.FindByID(id)
	if rec == nil {
		m.errorMsg(fmt.Sprintf("Employee %s not found.", id))
		return
	}

	renderRecordDetails(m.out, rec)

	if !m.confirm("Are you sure you want to delete this employee?") {
		return
	}

	if !m.env.store.Delete(id) {
		m.errorMsg("Failed to delete employee.")
		return
	}

	recordDeleted(m.env, rec)
	m.success(fmt.Sprintf("Employee %s deleted successfully!", id))
}

func (m *menuSession) displayAllEmployees() {
	recs, err := m.env.store.Load()
	if err != nil {
		m.errorMsg("Error displaying employees: " + err.Error())
		return
	}

	renderRecordTable(m.out, recs, "ALL EMPLOYEES")

	m.env.audit.Record(audit.OpSelect, audit.SelectAllStatement,
		fmt.Sprintf("Retrieved %d employees", len(recs)))
	m.pause()
}

func (m *menuSession) searchEmployees() {
	m.screenTitle("SEARCH EMPLOYEES", 20)

	filter, field, value, ok := m.promptSearchCriteria()
	if !ok {
		return
	}

	recs, err := m.env.store.Search(filter)
	if err != nil {
		m.errorMsg("Error searching employees: " + err.Error())
		return
	}

	renderRecordTable(m.out, recs, "SEARCH RESULTS")

	m.env.audit.Record(audit.OpSelect, audit.SearchStatement(field, value),
		fmt.Sprintf("Found %d employees", len(recs)))
	m.pause()
}

// promptSearchCriteria shows the search submenu and reads one criterion.
// It returns the filter plus the field/value pair recorded in the
// operations log.
func (m *menuSession) promptSearchCriteria() (filter store.Filter, field, value string, ok bool) {
	fmt.Fprintln(m.out, "\nSearch Options:")
	fmt.Fprintln(m.out, "1. Search by ID")
	fmt.Fprintln(m.out, "2. Search by Name")
	fmt.Fprintln(m.out, "3. Search by Department")
	fmt.Fprintln(m.out, "4. Search by Employee Type")

	var choice string
	for {
		c, err := m.prompt("Select search option (1-4): ")
		if err != nil {
			return store.Filter{}, "", "", false
		}
		if c == "1" || c == "2" || c == "3" || c == "4" {
			choice = c
			break
		}
		m.errorMsg("Invalid choice. Please enter 1-4.")
	}

	switch choice {
	case "1":
		v, err := m.prompt("Enter Employee ID: ")
		if err != nil {
			return store.Filter{}, "", "", false
		}
		v = strings.ToUpper(v)
		return store.Filter{ID: v}, "id", v, true
	case "2":
		v, err := m.prompt("Enter Name (first or last): ")
		if err != nil {
			return store.Filter{}, "", "", false
		}
		return store.Filter{Name: v}, "name", v, true
	case "3":
		v, err := m.prompt("Enter Department: ")
		if err != nil {
			return store.Filter{}, "", "", false
		}
		v = strings.ToUpper(v)
		return store.Filter{Department: v}, "department", v, true
	default:
		v, err := m.prompt("Enter Employee Type (Employee/Manager): ")
		if err != nil {
			return store.Filter{}, "", "", false
		}
		return store.Filter{Type: v}, "type", v, true
	}
}

func (m *menuSession) departmentSummary() {
	recs, err := m.env.store.Load()
	if err != nil {
		m.errorMsg("Error displaying department summary: " + err.Error())
		return
	}

	sums := computeDepartmentSummary(recs)
	renderDepartmentSummary(m.out, sums)

	m.env.audit.Record(audit.OpSelect, audit.SummaryStatement,
		fmt.Sprintf("Department summary for %d departments", len(sums)))
	m.pause()
}

func (m *menuSession) backupData() {
	m.screenTitle("BACKUP DATA", 15)

	if m.env.store.Backup() {
		m.success("Data backup created successfully!")
	} else {
		m.errorMsg("Failed to create backup.")
	}
}

func (m *menuSession) viewOperationsLog() {
	ops, err := m.env.audit.Recent(operationsViewLimit)
	if err != nil {
		m.errorMsg("Error displaying operations log: " + err.Error())
		return
	}
	if len(ops) == 0 {
		m.message("No SQL operations logged.")
		return
	}

	renderOperations(m.out, ops)
	m.pause()
}

func (m *menuSession) salaryAnalytics() {
	for {
		m.screenTitle("SALARY ANALYTICS", 20)
		fmt.Fprintln(m.out, "1. Overall Statistics")
		fmt.Fprintln(m.out, "2. Statistics by Department")
		fmt.Fprintln(m.out, "3. Statistics by Employee Type")
		fmt.Fprintln(m.out, "4. Top Earners")
		fmt.Fprintln(m.out, "5. Lowest Earners")
		fmt.Fprintln(m.out, "6. Salary Gap Analysis")
		fmt.Fprintln(m.out, "7. Full Salary Report")
		fmt.Fprintln(m.out, "8. Recent Salary Changes")
		fmt.Fprintln(m.out, "9. Back to Main Menu")

		choice, err := m.prompt("Select option (1-9): ")
		if err != nil || choice == "9" {
			return
		}

		recs, loadErr := m.env.store.Load()
		if loadErr != nil {
			m.errorMsg("Error loading records: " + loadErr.Error())
			continue
		}

		switch choice {
		case "1":
			m.showOverallStatistics(recs)
		case "2":
			m.showDepartmentStatistics(recs)
		case "3":
			m.showTypeStatistics(recs)
		case "4":
			m.showTopEarners(recs)
		case "5":
			m.showLowestEarners(recs)
		case "6":
			m.showGapAnalysis(recs)
		case "7":
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, report.RenderText(report.Gather(recs, m.env.changes)))
			m.pause()
		case "8":
			m.showRecentChanges()
		default:
			m.errorMsg("Invalid choice. Please enter 1-9.")
		}
	}
}

func (m *menuSession) showOverallStatistics(recs []employee.Record) {
	renderOverallStats(m.out, analytics.Stats(recs))
	m.pause()
}

func (m *menuSession) showDepartmentStatistics(recs []employee.Record) {
	renderDepartmentStats(m.out, analytics.ByDepartment(recs))
	m.pause()
}

func (m *menuSession) showTypeStatistics(recs []employee.Record) {
	renderTypeStats(m.out, analytics.ByType(recs))
	m.pause()
}

func (m *menuSession) showTopEarners(recs []employee.Record) {
	renderEarners(m.out, fmt.Sprintf("TOP %d EARNERS", report.TopEarnerLimit),
		analytics.TopEarners(recs, report.TopEarnerLimit))
	m.pause()
}

func (m *menuSession) showLowestEarners(recs []employee.Record) {
	renderEarners(m.out, fmt.Sprintf("LOWEST %d EARNERS", report.TopEarnerLimit),
		analytics.LowestEarners(recs, report.TopEarnerLimit))
	m.pause()
}

func (m *menuSession) showGapAnalysis(recs []employee.Record) {
	gap, err := analytics.Gap(recs)
	if err != nil {
		m.errorMsg(err.Error())
		return
	}
	renderGapReport(m.out, gap)
	m.pause()
}

func (m *menuSession) showRecentChanges() {
	changes := m.env.changes.Recent(recentChangesViewLimit)
	if len(changes) == 0 {
		m.message("No salary changes recorded.")
		return
	}

	fmt.Fprintln(m.out, "\nRECENT SALARY CHANGES:")
	for _, c := range changes {
		fmt.Fprintf(m.out, "  %s: %s → %s (%s)\n",
			c.EmployeeName, formatMoney(c.OldSalary), formatMoney(c.NewSalary), c.Operation)
	}
	m.pause()
}
