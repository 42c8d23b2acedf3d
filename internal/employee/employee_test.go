package employee

import (
	"errors"
	"strings"
	"testing"
)

func mustEmployee(t *testing.T, id, first, last, dept, phone string, salary float64) *Employee {
	t.Helper()
	e, err := New(id, first, last, dept, phone, salary)
	if err != nil {
		t.Fatalf("New(%s) failed: %v", id, err)
	}
	return e
}

func mustManager(t *testing.T, id, first, last, dept, phone string, salary float64, teamSize int, office string) *Manager {
	t.Helper()
	m, err := NewManager(id, first, last, dept, phone, salary, teamSize, office)
	if err != nil {
		t.Fatalf("NewManager(%s) failed: %v", id, err)
	}
	return m
}

func TestNewValidEmployee(t *testing.T) {
	e := mustEmployee(t, "EMP001", "john", "DOE", "it", "555-123-4567", 55000)

	if e.ID() != "EMP001" {
		t.Errorf("ID() = %q, want %q", e.ID(), "EMP001")
	}
	if e.FirstName() != "John" {
		t.Errorf("FirstName() = %q, want %q", e.FirstName(), "John")
	}
	if e.LastName() != "Doe" {
		t.Errorf("LastName() = %q, want %q", e.LastName(), "Doe")
	}
	if e.Department() != "IT" {
		t.Errorf("Department() = %q, want %q", e.Department(), "IT")
	}
	if e.PhoneNumber() != "5551234567" {
		t.Errorf("PhoneNumber() = %q, want %q", e.PhoneNumber(), "5551234567")
	}
	if e.Salary() != 55000 {
		t.Errorf("Salary() = %v, want %v", e.Salary(), 55000.0)
	}
	if e.Type() != TypeEmployee {
		t.Errorf("Type() = %q, want %q", e.Type(), TypeEmployee)
	}
}

func TestNewValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		field string
	}{
		{"digit in first name", func() error {
			_, err := New("EMP001", "John2", "Doe", "IT", "5551234567", 0)
			return err
		}, "first name"},
		{"empty first name", func() error {
			_, err := New("EMP001", "  ", "Doe", "IT", "5551234567", 0)
			return err
		}, "first name"},
		{"digit in last name", func() error {
			_, err := New("EMP001", "John", "D0e", "IT", "5551234567", 0)
			return err
		}, "last name"},
		{"department too long", func() error {
			_, err := New("EMP001", "John", "Doe", "HUMANRESOURCES", "5551234567", 0)
			return err
		}, "department"},
		{"department too short", func() error {
			_, err := New("EMP001", "John", "Doe", "I", "5551234567", 0)
			return err
		}, "department"},
		{"department with digits", func() error {
			_, err := New("EMP001", "John", "Doe", "IT2", "5551234567", 0)
			return err
		}, "department"},
		{"short phone", func() error {
			_, err := New("EMP001", "John", "Doe", "IT", "123", 0)
			return err
		}, "phone number"},
		{"long phone", func() error {
			_, err := New("EMP001", "John", "Doe", "IT", "55512345678", 0)
			return err
		}, "phone number"},
		{"negative salary", func() error {
			_, err := New("EMP001", "John", "Doe", "IT", "5551234567", -1)
			return err
		}, "salary"},
		{"empty id", func() error {
			_, err := New("", "John", "Doe", "IT", "5551234567", 0)
			return err
		}, "id"},
		{"negative team size", func() error {
			_, err := NewManager("MGR001", "Jane", "Smith", "HR", "5559876543", 0, -3, "A-101")
			return err
		}, "team size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestPhoneSanitization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5551234567", "5551234567"},
		{"555.123.4567", "5551234567"},
		{"(555)-123-4567", "5551234567"},
		{"555 123 4567", "5551234567"},
		{"phone: 555/123/4567 please", "5551234567"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := mustEmployee(t, "EMP001", "John", "Doe", "IT", tt.input, 0)
			if e.PhoneNumber() != tt.want {
				t.Errorf("PhoneNumber() = %q, want %q", e.PhoneNumber(), tt.want)
			}
			if e.FormattedPhone() != "(555)-123-4567" {
				t.Errorf("FormattedPhone() = %q, want %q", e.FormattedPhone(), "(555)-123-4567")
			}
		})
	}
}

func TestNameNormalization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"john", "John"},
		{"JOHN", "John"},
		{"  jOhN  ", "John"},
		{"mary-jane", "Mary-Jane"},
		{"o'brien", "O'Brien"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := mustEmployee(t, "EMP001", tt.input, "Doe", "IT", "5551234567", 0)
			if e.FirstName() != tt.want {
				t.Errorf("FirstName() = %q, want %q", e.FirstName(), tt.want)
			}
		})
	}
}

func TestSettersRevalidate(t *testing.T) {
	e := mustEmployee(t, "EMP001", "John", "Doe", "IT", "5551234567", 50000)

	if err := e.SetFirstName("J4ne"); err == nil {
		t.Error("SetFirstName with digit should fail")
	}
	if e.FirstName() != "John" {
		t.Errorf("failed setter mutated state: FirstName() = %q", e.FirstName())
	}

	if err := e.SetSalary(-100); err == nil {
		t.Error("SetSalary(-100) should fail")
	}
	if e.Salary() != 50000 {
		t.Errorf("failed setter mutated state: Salary() = %v", e.Salary())
	}

	if err := e.SetDepartment("fin"); err != nil {
		t.Fatalf("SetDepartment(fin) failed: %v", err)
	}
	if e.Department() != "FIN" {
		t.Errorf("Department() = %q, want %q", e.Department(), "FIN")
	}
}

func TestEmployeeString(t *testing.T) {
	e := mustEmployee(t, "EMP001", "John", "Doe", "IT", "5551234567", 55000)

	want := "Employee ID: EMP001, Name: John Doe, Department: IT, Phone: (555)-123-4567, Salary: $55,000.00"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestManagerString(t *testing.T) {
	m := mustManager(t, "MGR001", "Jane", "Smith", "HR", "5559876543", 85000, 5, "A-101")

	got := m.String()
	if !strings.HasPrefix(got, "Manager - Employee ID: MGR001") {
		t.Errorf("String() = %q, want Manager prefix extending the base rendering", got)
	}
	if !strings.HasSuffix(got, "Team Size: 5, Office: A-101") {
		t.Errorf("String() = %q, want team size and office suffix", got)
	}
	if !strings.Contains(got, "Salary: $85,000.00") {
		t.Errorf("String() = %q, want formatted salary", got)
	}
}

func TestManagerIsARecord(t *testing.T) {
	var r Record = mustManager(t, "MGR001", "Jane", "Smith", "HR", "5559876543", 85000, 5, "A-101")

	if r.Type() != TypeManager {
		t.Errorf("Type() = %q, want %q", r.Type(), TypeManager)
	}
	if r.Base().Salary() != 85000 {
		t.Errorf("Base().Salary() = %v, want %v", r.Base().Salary(), 85000.0)
	}
	if _, ok := r.(*Manager); !ok {
		t.Errorf("type assertion to *Manager failed for %T", r)
	}
}
