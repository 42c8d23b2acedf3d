// Package payroll implements a prototype project-based compensation model.
// It is deliberately separate from the employee records: members are paid
// from the revenue of the projects they are assigned to, not from a flat
// salary column.
package payroll

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Role labels reported by Member.Role.
const (
	RoleGeneralManager = "General Manager"
	RoleProjectManager = "Project Manager"
	RoleProgrammer     = "Programmer"
	RoleStaff          = "Staff"
)

// Compensation parameters. Managers are paid a revenue share, programmers
// a salary plus a revenue share, staff a salary plus a service bonus.
const (
	generalManagerRate = 0.03
	projectManagerRate = 0.05
	programmerRate     = 0.01
	staffServiceBonus  = 100.0
)

// Project is a revenue source members draw compensation from.
type Project struct {
	Name    string  `yaml:"name"`
	Revenue float64 `yaml:"revenue"`
}

// Member is the closed union of the four compensation roles. Compensation
// takes the evaluation year so service-based pay stays deterministic.
type Member interface {
	Name() string
	Role() string
	Compensation(year int) float64
	String() string
}

// member carries the identity fields shared by every role.
type member struct {
	firstName string
	lastName  string
	id        string
	phone     string
	startYear int
}

func (m *member) Name() string { return m.firstName + " " + m.lastName }

// ID returns the member identifier from the roster.
func (m *member) ID() string { return m.id }

// StartYear returns the year the member joined.
func (m *member) StartYear() int { return m.startYear }

func (m *member) yearsOfService(year int) int {
	if year < m.startYear {
		return 0
	}
	return year - m.startYear
}

func (m *member) describe(role string) string {
	return fmt.Sprintf("%s: %s, ID: %s, Phone: %s, Started: %d",
		role, m.Name(), m.id, m.phone, m.startYear)
}

// GeneralManager oversees a portfolio of projects and is paid a share of
// their combined revenue.
type GeneralManager struct {
	member
	projects []Project
}

// NewGeneralManager builds a general manager over the given projects.
func NewGeneralManager(first, last, id, phone string, startYear int, projects []Project) *GeneralManager {
	return &GeneralManager{
		member:   member{firstName: first, lastName: last, id: id, phone: phone, startYear: startYear},
		projects: projects,
	}
}

func (g *GeneralManager) Role() string { return RoleGeneralManager }

// Projects returns the assigned portfolio.
func (g *GeneralManager) Projects() []Project { return g.projects }

func (g *GeneralManager) Compensation(int) float64 {
	var total float64
	for _, p := range g.projects {
		total += p.Revenue
	}
	return generalManagerRate * total
}

func (g *GeneralManager) String() string {
	names := make([]string, len(g.projects))
	for i, p := range g.projects {
		names[i] = p.Name
	}
	return fmt.Sprintf("%s, Projects: [%s]", g.describe(RoleGeneralManager), strings.Join(names, ", "))
}

// ProjectManager runs a single project and is paid a share of its revenue.
type ProjectManager struct {
	member
	project *Project
}

// NewProjectManager builds a project manager. A nil project means the
// member is currently unassigned and earns nothing.
func NewProjectManager(first, last, id, phone string, startYear int, project *Project) *ProjectManager {
	return &ProjectManager{
		member:  member{firstName: first, lastName: last, id: id, phone: phone, startYear: startYear},
		project: project,
	}
}

func (p *ProjectManager) Role() string { return RoleProjectManager }

// Project returns the assigned project, or nil when unassigned.
func (p *ProjectManager) Project() *Project { return p.project }

func (p *ProjectManager) Compensation(int) float64 {
	if p.project == nil {
		return 0
	}
	return projectManagerRate * p.project.Revenue
}

func (p *ProjectManager) String() string {
	name := "None"
	if p.project != nil {
		name = p.project.Name
	}
	return fmt.Sprintf("%s, Project: %s", p.describe(RoleProjectManager), name)
}

// Programmer draws an annual salary plus a share of the assigned project's
// revenue.
type Programmer struct {
	member
	salary  float64
	project *Project
}

// NewProgrammer builds a programmer. A nil project leaves only the salary.
func NewProgrammer(first, last, id, phone string, startYear int, salary float64, project *Project) *Programmer {
	return &Programmer{
		member:  member{firstName: first, lastName: last, id: id, phone: phone, startYear: startYear},
		salary:  salary,
		project: project,
	}
}

func (p *Programmer) Role() string { return RoleProgrammer }

// Salary returns the annual salary component.
func (p *Programmer) Salary() float64 { return p.salary }

func (p *Programmer) Compensation(int) float64 {
	comp := p.salary
	if p.project != nil {
		comp += programmerRate * p.project.Revenue
	}
	return comp
}

func (p *Programmer) String() string {
	name := "None"
	if p.project != nil {
		name = p.project.Name
	}
	return fmt.Sprintf("%s, Annual Salary: $%s, Project: %s",
		p.describe(RoleProgrammer), money(p.salary), name)
}

// Staff draws an annual salary plus a flat bonus per year of service.
type Staff struct {
	member
	salary float64
}

// NewStaff builds a staff member.
func NewStaff(first, last, id, phone string, startYear int, salary float64) *Staff {
	return &Staff{
		member: member{firstName: first, lastName: last, id: id, phone: phone, startYear: startYear},
		salary: salary,
	}
}

func (s *Staff) Role() string { return RoleStaff }

// Salary returns the annual salary component.
func (s *Staff) Salary() float64 { return s.salary }

func (s *Staff) Compensation(year int) float64 {
	return s.salary + staffServiceBonus*float64(s.yearsOfService(year))
}

func (s *Staff) String() string {
	return fmt.Sprintf("%s, Annual Salary: $%s", s.describe(RoleStaff), money(s.salary))
}

func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
