package payroll

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Roster holds the projects and members loaded from a roster file.
type Roster struct {
	Projects []Project
	Members  []Member
}

// ErrUnknownRole is returned when a roster member carries a role tag
// outside the four compensation roles.
var ErrUnknownRole = errors.New("unknown payroll role")

// Role tags accepted in roster files.
const (
	roleTagGeneralManager = "general_manager"
	roleTagProjectManager = "project_manager"
	roleTagProgrammer     = "programmer"
	roleTagStaff          = "staff"
)

// rosterFile is the YAML shape of a roster. Members reference projects by
// name; the references are resolved during load.
type rosterFile struct {
	Projects []Project      `yaml:"projects"`
	Members  []rosterMember `yaml:"members"`
}

type rosterMember struct {
	Role      string   `yaml:"role"`
	ID        string   `yaml:"id"`
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Phone     string   `yaml:"phone"`
	StartYear int      `yaml:"start_year"`
	Salary    float64  `yaml:"salary"`
	Project   string   `yaml:"project"`
	Projects  []string `yaml:"projects"`
}

// LoadRoster reads and resolves a YAML roster file.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	byName := make(map[string]Project, len(file.Projects))
	for _, p := range file.Projects {
		byName[p.Name] = p
	}

	roster := &Roster{Projects: file.Projects}
	for _, m := range file.Members {
		member, err := buildMember(m, byName)
		if err != nil {
			return nil, err
		}
		roster.Members = append(roster.Members, member)
	}
	return roster, nil
}

func buildMember(m rosterMember, byName map[string]Project) (Member, error) {
	switch m.Role {
	case roleTagGeneralManager:
		projects := make([]Project, 0, len(m.Projects))
		for _, name := range m.Projects {
			p, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("member %s: unknown project %q", m.ID, name)
			}
			projects = append(projects, p)
		}
		return NewGeneralManager(m.FirstName, m.LastName, m.ID, m.Phone, m.StartYear, projects), nil

	case roleTagProjectManager:
		project, err := resolveProject(m, byName)
		if err != nil {
			return nil, err
		}
		return NewProjectManager(m.FirstName, m.LastName, m.ID, m.Phone, m.StartYear, project), nil

	case roleTagProgrammer:
		project, err := resolveProject(m, byName)
		if err != nil {
			return nil, err
		}
		return NewProgrammer(m.FirstName, m.LastName, m.ID, m.Phone, m.StartYear, m.Salary, project), nil

	case roleTagStaff:
		return NewStaff(m.FirstName, m.LastName, m.ID, m.Phone, m.StartYear, m.Salary), nil

	default:
		return nil, fmt.Errorf("member %s: %w %q", m.ID, ErrUnknownRole, m.Role)
	}
}

// resolveProject maps a member's single project reference. An empty
// reference means unassigned and resolves to nil.
func resolveProject(m rosterMember, byName map[string]Project) (*Project, error) {
	if m.Project == "" {
		return nil, nil
	}
	p, ok := byName[m.Project]
	if !ok {
		return nil, fmt.Errorf("member %s: unknown project %q", m.ID, m.Project)
	}
	return &p, nil
}
