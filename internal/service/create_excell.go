package service

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

type Employee struct {
	EmployeeID   string
	FullName     string
	Role         string
	OfficeName   string
	PositionName string
	ProjectName  string
	Phone        string
	Email        string
}

// AddDataToExcel appends the given employees to fileName, creating the
// workbook with a header row when it does not exist yet.
func AddDataToExcel(employees []Employee, fileName string) error {
	var f *excelize.File
	sheet := "Sheet1"

	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		f = excelize.NewFile()
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Employee ID", "Full Name", "Role", "Office", "Position", "Project", "Phone Number", "Email"}
		for i, header := range headers {
			cell := fmt.Sprintf("%c1", 'A'+i)
			f.SetCellValue(sheet, cell, header)
		}
	} else {
		f, err = excelize.OpenFile(fileName)
		if err != nil {
			return fmt.Errorf("error opening file: %w", err)
		}
	}

	// Find the next empty row
	rowNum := 2
	for {
		cell, _ := f.GetCellValue(sheet, fmt.Sprintf("A%d", rowNum))
		if cell == "" {
			break
		}
		rowNum++
	}

	for _, entry := range employees {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.EmployeeID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.Role)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.OfficeName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.PositionName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.ProjectName)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), entry.Email)
		rowNum++
	}

	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
