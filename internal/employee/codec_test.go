package employee

import (
	"errors"
	"testing"
)

func TestSerializeEmployee(t *testing.T) {
	e := mustEmployee(t, "EMP001", "John", "Doe", "IT", "5551234567", 55000)

	rec := e.Serialize()
	want := map[string]string{
		FieldID:           "EMP001",
		FieldFirstName:    "John",
		FieldLastName:     "Doe",
		FieldDepartment:   "IT",
		FieldPhoneNumber:  "5551234567",
		FieldSalary:       "55000",
		FieldEmployeeType: "Employee",
		FieldTeamSize:     "",
		FieldOfficeNumber: "",
	}

	for k, v := range want {
		if rec[k] != v {
			t.Errorf("Serialize()[%s] = %q, want %q", k, rec[k], v)
		}
	}
	if len(rec) != len(Columns) {
		t.Errorf("Serialize() has %d fields, want %d", len(rec), len(Columns))
	}
}

func TestSerializeManager(t *testing.T) {
	m := mustManager(t, "MGR001", "Jane", "Smith", "HR", "5559876543", 85000.5, 5, "A-101")

	rec := m.Serialize()
	if rec[FieldEmployeeType] != "Manager" {
		t.Errorf("employeeType = %q, want %q", rec[FieldEmployeeType], "Manager")
	}
	if rec[FieldTeamSize] != "5" {
		t.Errorf("teamSize = %q, want %q", rec[FieldTeamSize], "5")
	}
	if rec[FieldOfficeNumber] != "A-101" {
		t.Errorf("officeNumber = %q, want %q", rec[FieldOfficeNumber], "A-101")
	}
	if rec[FieldSalary] != "85000.5" {
		t.Errorf("salary = %q, want %q", rec[FieldSalary], "85000.5")
	}
}

func TestRoundTripEmployee(t *testing.T) {
	e := mustEmployee(t, "EMP001", "John", "Doe", "IT", "5551234567", 55000)

	got, err := Deserialize(e.Serialize())
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	back, ok := got.(*Employee)
	if !ok {
		t.Fatalf("expected *Employee, got %T", got)
	}
	if *back != *e {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, e)
	}
}

func TestRoundTripManager(t *testing.T) {
	m := mustManager(t, "MGR001", "Jane", "Smith", "HR", "5559876543", 85000, 5, "A-101")

	got, err := Deserialize(m.Serialize())
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	back, ok := got.(*Manager)
	if !ok {
		t.Fatalf("expected *Manager, got %T", got)
	}
	if *back != *m {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, m)
	}
}

func TestDeserializeDefaultsToEmployee(t *testing.T) {
	// Records without a Manager tag load as plain employees, including
	// records with no tag at all.
	for _, tag := range []string{"", "Employee", "Contractor"} {
		rec := map[string]string{
			FieldID:          "EMP002",
			FieldFirstName:   "Mary",
			FieldLastName:    "Major",
			FieldDepartment:  "FIN",
			FieldPhoneNumber: "5550001111",
			FieldSalary:      "60000",
		}
		if tag != "" {
			rec[FieldEmployeeType] = tag
		}

		got, err := Deserialize(rec)
		if err != nil {
			t.Fatalf("Deserialize(tag=%q) failed: %v", tag, err)
		}
		if _, ok := got.(*Employee); !ok {
			t.Errorf("Deserialize(tag=%q) = %T, want *Employee", tag, got)
		}
	}
}

func TestDeserializeMalformed(t *testing.T) {
	valid := func() map[string]string {
		return map[string]string{
			FieldID:           "EMP003",
			FieldFirstName:    "Ann",
			FieldLastName:     "Lee",
			FieldDepartment:   "IT",
			FieldPhoneNumber:  "5552223333",
			FieldSalary:       "50000",
			FieldEmployeeType: "Employee",
		}
	}

	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"non-numeric salary", func(r map[string]string) { r[FieldSalary] = "lots" }},
		{"negative salary", func(r map[string]string) { r[FieldSalary] = "-5" }},
		{"bad department", func(r map[string]string) { r[FieldDepartment] = "ACCOUNTING" }},
		{"bad phone", func(r map[string]string) { r[FieldPhoneNumber] = "123" }},
		{"digit in name", func(r map[string]string) { r[FieldFirstName] = "4nn" }},
		{"non-integer team size", func(r map[string]string) {
			r[FieldEmployeeType] = "Manager"
			r[FieldTeamSize] = "several"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid()
			tt.mutate(rec)

			_, err := Deserialize(rec)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected *ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestDeserializeEmptyNumericFields(t *testing.T) {
	rec := map[string]string{
		FieldID:           "MGR002",
		FieldFirstName:    "Pat",
		FieldLastName:     "Quinn",
		FieldDepartment:   "OPS",
		FieldPhoneNumber:  "5554445555",
		FieldEmployeeType: "Manager",
	}

	got, err := Deserialize(rec)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	m, ok := got.(*Manager)
	if !ok {
		t.Fatalf("expected *Manager, got %T", got)
	}
	if m.Salary() != 0 {
		t.Errorf("Salary() = %v, want 0", m.Salary())
	}
	if m.TeamSize() != 0 {
		t.Errorf("TeamSize() = %v, want 0", m.TeamSize())
	}
}
