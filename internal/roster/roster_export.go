package roster

import (
	"fmt"

	excelize "github.com/xuri/excelize/v2"
)

const (
	employeesSheet = "Employees"
	teamsSheet     = "Team Compliance"
)

var (
	employeeHeaders = []string{"Employee ID", "Name", "Contact", "Team Lead", "PPE Status"}
	teamHeaders     = []string{"Team Lead", "Team Size", "Compliant", "Compliance %"}
)

// ExportXLSX writes the given rows and the team compliance table into an
// xlsx workbook.
func ExportXLSX(rows []Employee, teams []TeamCompliance) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(teamsSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := writeRow(f, employeesSheet, 1, toAny(employeeHeaders), header); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}
	for i, e := range rows {
		values := []any{e.ID, e.Name, e.Contact, e.TeamLead, string(e.PPEStatus)}
		if err := writeRow(f, employeesSheet, i+2, values, 0); err != nil {
			return nil, fmt.Errorf("write employee %s: %w", e.ID, err)
		}
	}

	if err := writeRow(f, teamsSheet, 1, toAny(teamHeaders), header); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}
	for i, t := range teams {
		values := []any{t.Lead, t.TeamSize, t.Compliant, t.Compliance}
		if err := writeRow(f, teamsSheet, i+2, values, 0); err != nil {
			return nil, fmt.Errorf("write team %s: %w", t.Lead, err)
		}
	}

	if err := f.SetColWidth(employeesSheet, "A", "E", 22); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(teamsSheet, "A", "D", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow fills row (1-based) from column A. style 0 leaves cells unstyled.
func writeRow(f *excelize.File, sheet string, row int, values []any, style int) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
		if style != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
