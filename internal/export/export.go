// Package export renders employee records, and optionally the salary
// analytics report, as an XLSX workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sofisch25/InClassEmpApp/internal/employee"
	"github.com/sofisch25/InClassEmpApp/internal/report"
)

// Sheet names used by Workbook.
const (
	EmployeeSheet = "Employees"
	ReportSheet   = "Salary Report"
)

// employeeColumns is the header row of the Employees sheet. Team size and
// office stay empty for regular employees.
var employeeColumns = []string{
	"ID", "First Name", "Last Name", "Department", "Phone", "Salary", "Type", "Team Size", "Office",
}

var employeeColWidths = []float64{10, 14, 14, 14, 18, 12, 12, 10, 10}

// Workbook builds an in-memory XLSX workbook with one Employees row per
// record. When rep is non-nil a second sheet summarising the salary
// analytics report is added. The caller owns the returned file and must
// Close it.
func Workbook(recs []employee.Record, rep *report.SalaryReport) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", EmployeeSheet)

	headStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeEmployeeSheet(f, headStyle, recs); err != nil {
		f.Close()
		return nil, err
	}

	if rep != nil {
		if _, err := f.NewSheet(ReportSheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("create report sheet: %w", err)
		}
		if err := writeReportSheet(f, headStyle, rep); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// Write builds the workbook and saves it to path.
func Write(path string, recs []employee.Record, rep *report.SalaryReport) error {
	f, err := Workbook(recs, rep)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeEmployeeSheet(f *excelize.File, headStyle int, recs []employee.Record) error {
	w := &sheetWriter{f: f, sheet: EmployeeSheet, style: headStyle}

	w.head("ID", "First Name", "Last Name", "Department", "Phone", "Salary", "Type", "Team Size", "Office")
	for i := range employeeColumns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("employee column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(EmployeeSheet, col, col, employeeColWidths[i]); err != nil {
			return fmt.Errorf("employee column width: %w", err)
		}
	}

	for _, rec := range recs {
		base := rec.Base()
		row := []interface{}{
			base.ID(),
			base.FirstName(),
			base.LastName(),
			base.Department(),
			base.FormattedPhone(),
			base.Salary(),
			string(rec.Type()),
		}
		if mgr, ok := rec.(*employee.Manager); ok {
			row = append(row, mgr.TeamSize(), mgr.OfficeNumber())
		}
		w.line(row...)
	}

	return w.err
}

func writeReportSheet(f *excelize.File, headStyle int, rep *report.SalaryReport) error {
	w := &sheetWriter{f: f, sheet: ReportSheet, style: headStyle}

	w.line("Generated", rep.GeneratedAt.Format("2006-01-02 15:04:05"))
	w.line()

	w.head("OVERALL SALARY STATISTICS")
	w.line("Total Employees", rep.Overall.Count)
	w.line("Average Salary", rep.Overall.Average)
	w.line("Minimum Salary", rep.Overall.Min)
	w.line("Maximum Salary", rep.Overall.Max)
	w.line("Median Salary", rep.Overall.Median)
	w.line("Total Payroll", rep.Overall.Total)
	w.line()

	w.head("SALARY BY DEPARTMENT")
	w.head("Department", "Count", "Average", "Minimum", "Maximum")
	for _, d := range rep.Departments {
		w.line(d.Department, d.Count, d.Average, d.Min, d.Max)
	}
	w.line()

	w.head("SALARY BY EMPLOYEE TYPE")
	w.head("Type", "Count", "Average", "Minimum", "Maximum")
	for _, ts := range rep.Types {
		w.line(ts.Label, ts.Count, ts.Average, ts.Min, ts.Max)
	}
	w.line()

	if rep.Gap != nil {
		w.head("SALARY GAP ANALYSIS")
		w.line("Regular Employee Average", rep.Gap.RegularAverage)
		w.line("Manager Average", rep.Gap.ManagerAverage)
		w.line("Absolute Gap", rep.Gap.AbsoluteGap)
		w.line("Percentage Gap", rep.Gap.PercentageGap)
		w.line()
	}

	w.head("TOP EARNERS")
	w.head("Rank", "Name", "Department", "Salary")
	for _, e := range rep.TopEarners {
		w.line(e.Rank, e.Name, e.Department, e.Salary)
	}

	return w.err
}

// sheetWriter appends rows to one sheet, tracking the current row and the
// first error so the callers read as straight-line layout code.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	style int
	row   int
	err   error
}

// line writes vals as the next row. With no values it leaves a blank
// spacer row.
func (w *sheetWriter) line(vals ...interface{}) {
	w.row++
	if w.err != nil || len(vals) == 0 {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		w.err = fmt.Errorf("cell for row %d: %w", w.row, err)
		return
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &vals); err != nil {
		w.err = fmt.Errorf("write row %d: %w", w.row, err)
	}
}

// head writes vals as the next row in the bold header style.
func (w *sheetWriter) head(vals ...interface{}) {
	w.line(vals...)
	if w.err != nil {
		return
	}
	start, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		w.err = fmt.Errorf("cell for row %d: %w", w.row, err)
		return
	}
	end, err := excelize.CoordinatesToCellName(len(vals), w.row)
	if err != nil {
		w.err = fmt.Errorf("cell for row %d: %w", w.row, err)
		return
	}
	if err := w.f.SetCellStyle(w.sheet, start, end, w.style); err != nil {
		w.err = fmt.Errorf("style row %d: %w", w.row, err)
	}
}
