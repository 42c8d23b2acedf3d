package employee

import "strconv"

// Record field names, in backing-store column order.
const (
	FieldID           = "id"
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldDepartment   = "department"
	FieldPhoneNumber  = "phoneNumber"
	FieldSalary       = "salary"
	FieldEmployeeType = "employeeType"
	FieldTeamSize     = "teamSize"
	FieldOfficeNumber = "officeNumber"
)

// Columns is the canonical backing-store column order.
var Columns = []string{
	FieldID,
	FieldFirstName,
	FieldLastName,
	FieldDepartment,
	FieldPhoneNumber,
	FieldSalary,
	FieldEmployeeType,
	FieldTeamSize,
	FieldOfficeNumber,
}

// Serialize converts the record to a flat string-keyed form. Manager-only
// fields stay empty so every record carries the same columns.
func (e *Employee) Serialize() map[string]string {
	return map[string]string{
		FieldID:           e.id,
		FieldFirstName:    e.firstName,
		FieldLastName:     e.lastName,
		FieldDepartment:   e.department,
		FieldPhoneNumber:  e.phoneNumber,
		FieldSalary:       strconv.FormatFloat(e.salary, 'f', -1, 64),
		FieldEmployeeType: string(TypeEmployee),
		FieldTeamSize:     "",
		FieldOfficeNumber: "",
	}
}

// Serialize extends the base form with the manager fields and type tag.
func (m *Manager) Serialize() map[string]string {
	rec := m.Employee.Serialize()
	rec[FieldEmployeeType] = string(TypeManager)
	rec[FieldTeamSize] = strconv.Itoa(m.teamSize)
	rec[FieldOfficeNumber] = m.officeNumber
	return rec
}

// Deserialize builds a record from its flat form, dispatching on the
// employeeType tag. Records without a "Manager" tag load as plain
// employees. Every field is revalidated; malformed values return a
// *ValidationError.
func Deserialize(rec map[string]string) (Record, error) {
	salary, err := parseSalary(rec[FieldSalary])
	if err != nil {
		return nil, err
	}

	if rec[FieldEmployeeType] == string(TypeManager) {
		teamSize, err := parseTeamSize(rec[FieldTeamSize])
		if err != nil {
			return nil, err
		}
		return NewManager(
			rec[FieldID],
			rec[FieldFirstName],
			rec[FieldLastName],
			rec[FieldDepartment],
			rec[FieldPhoneNumber],
			salary,
			teamSize,
			rec[FieldOfficeNumber],
		)
	}

	return New(
		rec[FieldID],
		rec[FieldFirstName],
		rec[FieldLastName],
		rec[FieldDepartment],
		rec[FieldPhoneNumber],
		salary,
	)
}

func parseSalary(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	salary, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, invalidf("salary", "must be numeric, got %q", v)
	}
	return salary, nil
}

func parseTeamSize(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalidf("team size", "must be an integer, got %q", v)
	}
	return n, nil
}
