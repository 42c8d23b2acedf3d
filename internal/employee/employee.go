// Package employee defines the validated personnel record model: the
// Employee/Manager union, field validation, and the flat-record codec
// used by the persistence layer.
package employee

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// Type discriminates record subtypes in serialized form.
type Type string

const (
	TypeEmployee Type = "Employee"
	TypeManager  Type = "Manager"
)

// deptPattern is the accepted department code shape after upper-casing.
var deptPattern = regexp.MustCompile(`^[A-Z]{2,3}$`)

// ValidationError describes a rejected field value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Record is the closed union of personnel record types. Collection-level
// consumers treat a Manager as an Employee; subtype behavior is reached by
// type assertion, not by inspecting a flag.
type Record interface {
	// ID returns the immutable record identifier.
	ID() string
	// Type returns the serialized type tag.
	Type() Type
	// Base returns the embedded Employee for common-field access.
	Base() *Employee
	// String renders the record as a single human-readable line.
	String() string
	// Serialize converts the record to a flat string-keyed form.
	Serialize() map[string]string
}

// Employee is a validated personnel record. All fields are set through the
// factory or the re-validating setters; the id never changes after
// construction.
type Employee struct {
	id          string
	firstName   string
	lastName    string
	department  string
	phoneNumber string // exactly 10 digits
	salary      float64
}

// Manager extends Employee with team and office details.
type Manager struct {
	Employee
	teamSize     int
	officeNumber string
}

// New constructs a validated Employee. It returns a *ValidationError when
// any field is rejected.
func New(id, firstName, lastName, department, phone string, salary float64) (*Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, invalidf("id", "must not be empty")
	}

	e := &Employee{id: id}
	if err := e.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := e.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := e.SetDepartment(department); err != nil {
		return nil, err
	}
	if err := e.SetPhoneNumber(phone); err != nil {
		return nil, err
	}
	if err := e.SetSalary(salary); err != nil {
		return nil, err
	}
	return e, nil
}

// NewManager constructs a validated Manager.
func NewManager(id, firstName, lastName, department, phone string, salary float64, teamSize int, office string) (*Manager, error) {
	base, err := New(id, firstName, lastName, department, phone, salary)
	if err != nil {
		return nil, err
	}

	m := &Manager{Employee: *base}
	if err := m.SetTeamSize(teamSize); err != nil {
		return nil, err
	}
	m.SetOfficeNumber(office)
	return m, nil
}

// ID returns the immutable record identifier.
func (e *Employee) ID() string { return e.id }

// Type returns the serialized type tag.
func (e *Employee) Type() Type { return TypeEmployee }

// Base returns the record itself; on a Manager the promoted method returns
// the embedded Employee.
func (e *Employee) Base() *Employee { return e }

// FirstName returns the normalized first name.
func (e *Employee) FirstName() string { return e.firstName }

// LastName returns the normalized last name.
func (e *Employee) LastName() string { return e.lastName }

// FullName returns "First Last".
func (e *Employee) FullName() string { return e.firstName + " " + e.lastName }

// Department returns the upper-cased department code.
func (e *Employee) Department() string { return e.department }

// PhoneNumber returns the stored 10-digit phone number.
func (e *Employee) PhoneNumber() string { return e.phoneNumber }

// Salary returns the current salary.
func (e *Employee) Salary() float64 { return e.salary }

// SetFirstName validates and updates the first name.
func (e *Employee) SetFirstName(v string) error {
	name, err := normalizeName("first name", v)
	if err != nil {
		return err
	}
	e.firstName = name
	return nil
}

// SetLastName validates and updates the last name.
func (e *Employee) SetLastName(v string) error {
	name, err := normalizeName("last name", v)
	if err != nil {
		return err
	}
	e.lastName = name
	return nil
}

// SetDepartment validates and updates the department code.
func (e *Employee) SetDepartment(v string) error {
	dept := strings.ToUpper(strings.TrimSpace(v))
	if dept == "" {
		return invalidf("department", "must not be empty")
	}
	if !deptPattern.MatchString(dept) {
		return invalidf("department", "must be 2-3 uppercase letters, got %q", dept)
	}
	e.department = dept
	return nil
}

// SetPhoneNumber sanitizes and updates the phone number. Punctuation is
// stripped; the remaining digits must number exactly 10.
func (e *Employee) SetPhoneNumber(v string) error {
	digits := sanitizePhone(v)
	if len(digits) != 10 {
		return invalidf("phone number", "must contain exactly 10 digits, got %d", len(digits))
	}
	e.phoneNumber = digits
	return nil
}

// SetSalary validates and updates the salary.
func (e *Employee) SetSalary(v float64) error {
	if v < 0 {
		return invalidf("salary", "must not be negative, got %.2f", v)
	}
	e.salary = v
	return nil
}

// FormattedPhone renders the stored digits as (AAA)-BBB-CCCC.
func (e *Employee) FormattedPhone() string {
	p := e.phoneNumber
	return fmt.Sprintf("(%s)-%s-%s", p[:3], p[3:6], p[6:])
}

func (e *Employee) String() string {
	return fmt.Sprintf("Employee ID: %s, Name: %s, Department: %s, Phone: %s, Salary: $%s",
		e.id, e.FullName(), e.department, e.FormattedPhone(), money(e.salary))
}

// Type returns the serialized type tag.
func (m *Manager) Type() Type { return TypeManager }

// TeamSize returns the number of direct reports.
func (m *Manager) TeamSize() int { return m.teamSize }

// OfficeNumber returns the office designation, possibly empty.
func (m *Manager) OfficeNumber() string { return m.officeNumber }

// SetTeamSize validates and updates the team size.
func (m *Manager) SetTeamSize(v int) error {
	if v < 0 {
		return invalidf("team size", "must not be negative, got %d", v)
	}
	m.teamSize = v
	return nil
}

// SetOfficeNumber updates the free-form office designation.
func (m *Manager) SetOfficeNumber(v string) {
	m.officeNumber = strings.TrimSpace(v)
}

func (m *Manager) String() string {
	return fmt.Sprintf("Manager - %s, Team Size: %d, Office: %s",
		m.Employee.String(), m.teamSize, m.officeNumber)
}

// normalizeName trims, rejects empties and digits, and title-cases the
// result so "jOHN" stores as "John".
func normalizeName(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", invalidf(field, "must not be empty")
	}
	for _, r := range v {
		if unicode.IsDigit(r) {
			return "", invalidf(field, "must not contain digits, got %q", v)
		}
	}
	return titleCase(v), nil
}

// titleCase upper-cases the first letter of every letter run and
// lower-cases the rest, so "mary-jane" becomes "Mary-Jane".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// sanitizePhone strips every non-digit rune.
func sanitizePhone(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// money renders a non-negative amount as #,###.##.
func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
