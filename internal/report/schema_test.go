package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sofisch25/InClassEmpApp/internal/analytics"
)

func TestSalaryReport_YAML(t *testing.T) {
	rep := &SalaryReport{
		GeneratedAt: time.Date(2024, 1, 31, 15, 45, 0, 0, time.UTC),
		Overall:     analytics.Statistics{Count: 2, Average: 70000, Min: 55000, Max: 85000, Total: 140000, Median: 85000},
		Departments: []analytics.DepartmentStatistics{
			{Department: "IT", Statistics: analytics.Statistics{Count: 2, Average: 70000}},
		},
		Types: []analytics.TypeStatistics{
			{Label: analytics.LabelRegular, Statistics: analytics.Statistics{Count: 1, Average: 55000}},
		},
		Gap: &analytics.GapReport{
			RegularAverage: 55000,
			ManagerAverage: 85000,
			AbsoluteGap:    30000,
			PercentageGap:  54.5,
			RegularCount:   1,
			ManagerCount:   1,
		},
		TopEarners: []EarnerLine{
			{Rank: 1, Name: "Jane Smith", Department: "IT", Salary: 85000},
		},
	}

	data, err := yaml.Marshal(rep)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}

	yamlStr := string(data)
	expectedFields := []string{
		"generated_at:",
		"overall:",
		"count: 2",
		"department: IT",
		"type: Regular Employees",
		"regular_employee_average: 55000",
		"percentage_gap: 54.5",
		"rank: 1",
		"name: Jane Smith",
	}
	for _, field := range expectedFields {
		if !strings.Contains(yamlStr, field) {
			t.Errorf("YAML output missing %q\nGot:\n%s", field, yamlStr)
		}
	}

	var decoded SalaryReport
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if decoded.Overall.Count != 2 {
		t.Errorf("decoded overall count = %d, want 2", decoded.Overall.Count)
	}
	if decoded.Gap == nil || decoded.Gap.AbsoluteGap != 30000 {
		t.Errorf("decoded gap = %+v", decoded.Gap)
	}
	if len(decoded.TopEarners) != 1 || decoded.TopEarners[0].Name != "Jane Smith" {
		t.Errorf("decoded top earners = %+v", decoded.TopEarners)
	}
}

func TestSalaryReport_JSON(t *testing.T) {
	rep := &SalaryReport{
		GeneratedAt: time.Date(2024, 1, 31, 15, 45, 0, 0, time.UTC),
		Overall:     analytics.Statistics{Count: 1, Average: 55000, Min: 55000, Max: 55000, Total: 55000, Median: 55000},
		TopEarners: []EarnerLine{
			{Rank: 1, Name: "John Doe", Department: "IT", Salary: 55000},
		},
	}

	data, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	jsonStr := string(data)
	expectedFields := []string{
		`"generated_at":`,
		`"overall":`,
		`"top_earners":`,
		`"rank":1`,
		`"department":"IT"`,
	}
	for _, field := range expectedFields {
		if !strings.Contains(jsonStr, field) {
			t.Errorf("JSON output missing %q\nGot:\n%s", field, jsonStr)
		}
	}
}

func TestSalaryReport_OmitsEmptyOptionalSections(t *testing.T) {
	rep := &SalaryReport{GeneratedAt: time.Date(2024, 1, 31, 15, 45, 0, 0, time.UTC)}

	yamlData, err := yaml.Marshal(rep)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	if strings.Contains(string(yamlData), "gap:") {
		t.Errorf("YAML should omit nil gap:\n%s", yamlData)
	}
	if strings.Contains(string(yamlData), "recent_changes:") {
		t.Errorf("YAML should omit empty recent_changes:\n%s", yamlData)
	}

	jsonData, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if strings.Contains(string(jsonData), `"gap"`) {
		t.Errorf("JSON should omit nil gap:\n%s", jsonData)
	}
}
