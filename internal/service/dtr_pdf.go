package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hrmis/backend/internal/service/dtr"

	"github.com/jung-kurt/gofpdf/v2"
)

const dtrDir = "statics/dtr"

type DTRSheetInfo struct {
	EmployeeID  string
	FullName    string
	Office      string
	Position    string
	MonthLabel  string
	PeriodLabel string
}

type DTRSheet struct {
	Info    DTRSheetInfo
	Records []dtr.DayRecord
}

// DTRSheetPDF renders one employee's daily time record for a period as a
// printable sheet and returns the file path.
func DTRSheetPDF(info DTRSheetInfo, records []dtr.DayRecord) (string, error) {
	if err := ensureDTRDir(); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	renderDTRSheet(pdf, info, records)

	path := filepath.Join(dtrDir, fmt.Sprintf("dtr_%s_%s.pdf", info.EmployeeID, info.MonthLabel))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing dtr pdf: %w", err)
	}

	return path, nil
}

// DTRBulkPDF renders every sheet into one document, one employee per page.
func DTRBulkPDF(sheets []DTRSheet, monthLabel string) (string, error) {
	if err := ensureDTRDir(); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	for _, sheet := range sheets {
		renderDTRSheet(pdf, sheet.Info, sheet.Records)
	}

	path := filepath.Join(dtrDir, fmt.Sprintf("dtr_all_%s.pdf", monthLabel))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing dtr pdf: %w", err)
	}

	return path, nil
}

func ensureDTRDir() error {
	if _, err := os.Stat(dtrDir); errors.Is(err, os.ErrNotExist) {
		return os.MkdirAll(dtrDir, os.ModePerm)
	}
	return nil
}

func renderDTRSheet(pdf *gofpdf.Fpdf, info DTRSheetInfo, records []dtr.DayRecord) {
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Daily Time Record", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s (%s)", info.FullName, info.EmployeeID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s / %s", info.Office, info.Position), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s, %s", info.MonthLabel, info.PeriodLabel), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{20, 30, 30, 30, 30, 30}
	headers := []string{"Day", "AM In", "AM Out", "PM In", "PM Out", "Total"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)

	var total float64
	for _, record := range records {
		cells := []string{
			fmt.Sprintf("%d", record.Day),
			record.AMIn,
			record.AMOut,
			record.PMIn,
			record.PMOut,
			record.TotalHours,
		}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		if record.TotalHours != "" {
			var hours float64
			if _, err := fmt.Sscanf(record.TotalHours, "%f", &hours); err == nil {
				total += hours
			}
		}
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2]+colWidths[3]+colWidths[4], 8, "Total Hours", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[5], 8, fmt.Sprintf("%.1f", total), "1", 1, "C", true, 0, "")
}
