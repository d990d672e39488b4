package contact

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Export columns, in order. The spreadsheet variant appends a creation date.
var exportHeader = []string{"Name", "Email", "Phone", "Company", "Category"}

// WriteCSV writes the contact set as CSV: header row first, every field
// double-quoted, comma-separated. No store access, no side effects.
func WriteCSV(w io.Writer, contacts []Contact) error {
	rows := make([][]string, 0, len(contacts)+1)
	rows = append(rows, exportHeader)
	for _, c := range contacts {
		rows = append(rows, []string{c.Name, c.Email, c.Phone, c.Company, string(c.Category)})
	}

	for i, row := range rows {
		quoted := make([]string, len(row))
		for j, field := range row {
			quoted[j] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		line := strings.Join(quoted, ",")
		if i < len(rows)-1 {
			line += "\n"
		}
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("contact: write csv: %w", err)
		}
	}

	return nil
}

// WriteXLSX writes the contact set as a spreadsheet with a single "Contacts"
// sheet: the CSV columns plus a human-formatted creation date.
func WriteXLSX(w io.Writer, contacts []Contact) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Contacts"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("contact: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("contact: drop default sheet: %w", err)
	}

	header := append(append([]string{}, exportHeader...), "Created At")
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("contact: cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("contact: write header: %w", err)
		}
	}

	for i, c := range contacts {
		values := []string{
			c.Name, c.Email, c.Phone, c.Company, string(c.Category),
			c.CreatedAt.Format("1/2/2006"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("contact: cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("contact: write row: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("contact: write xlsx: %w", err)
	}
	return nil
}
