package hashing

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"hrmis/backend/foundation/web"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

const employeeSheet = "Employees"

type UserExcellData struct {
	EmployeeID string
	FullName   string
	Role       string
	Password   string
	Office     string
	OfficeID   int
	Position   string
	PositionID int
	Phone      string
	Email      string
}

// ExcelReaderByCreate parses the employee import workbook. Rows that fail
// validation are collected by their 1-based row number instead of aborting
// the whole import.
func ExcelReaderByCreate(filePath string, officeMap, positionMap map[string]int, employeeIDMap, existingEmailMap map[string]struct{}) ([]UserExcellData, []int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(employeeSheet)
	if err != nil {
		return nil, nil, err
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex := regexp.MustCompile(`^\+?\d+$`)

	var users []UserExcellData
	var incompleteRows []int
	localEmployeeIDs := make(map[string]int)
	localEmails := make(map[string]int)

	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		if len(row) < 6 {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}

		employeeID := strings.TrimSpace(row[0])
		fullName := strings.TrimSpace(row[1])
		role := strings.TrimSpace(row[2])
		password := strings.TrimSpace(row[3])
		office := strings.TrimSpace(row[4])
		position := strings.TrimSpace(row[5])
		phone := ""
		if len(row) > 6 {
			phone = strings.TrimSpace(row[6])
		}
		email := ""
		if len(row) > 7 {
			email = strings.TrimSpace(row[7])
		}

		if employeeID == "" || fullName == "" || role == "" ||
			password == "" || office == "" || position == "" {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}

		if !isHalfWidth(employeeID) || !isHalfWidth(password) ||
			(email != "" && !isHalfWidth(email)) {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}

		if _, exists := employeeIDMap[employeeID]; exists {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}
		if prevRow, exists := localEmployeeIDs[employeeID]; exists {
			incompleteRows = append(incompleteRows, prevRow, i+1)
			continue
		}

		if email != "" {
			if _, exists := existingEmailMap[email]; exists {
				incompleteRows = append(incompleteRows, i+1)
				continue
			}
			if prevRow, exists := localEmails[email]; exists {
				incompleteRows = append(incompleteRows, prevRow, i+1)
				continue
			}
		}

		officeID, officeOK := officeMap[office]
		positionID, posOK := positionMap[position]
		if !officeOK || !posOK {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}

		if email != "" && !emailRegex.MatchString(email) {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}

		if phone != "" && !phoneRegex.MatchString(phone) {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}

		localEmployeeIDs[employeeID] = i + 1
		if email != "" {
			localEmails[email] = i + 1
		}

		users = append(users, UserExcellData{
			EmployeeID: employeeID,
			FullName:   fullName,
			Role:       role,
			Password:   password,
			Office:     office,
			OfficeID:   officeID,
			Position:   position,
			PositionID: positionID,
			Phone:      phone,
			Email:      email,
		})
	}

	return users, incompleteRows, nil
}

// EditExcell refreshes the import template's lookup sheets so the dropdowns
// offer the current office and position names.
func EditExcell(offices, positions []string) (string, error) {
	f, err := excelize.OpenFile("template.xlsx")
	if err != nil {
		return "", fmt.Errorf("failed to open template file: %w", err)
	}
	defer f.Close()

	officeSheet := "Offices"
	positionSheet := "Positions"

	if sheetIndex, err := f.GetSheetIndex(officeSheet); sheetIndex == -1 {
		if err != nil {
			return "", fmt.Errorf("failed to get office sheet: %w", err)
		}
	}
	if sheetIndex, err := f.GetSheetIndex(positionSheet); sheetIndex == -1 {
		if err != nil {
			return "", fmt.Errorf("failed to get position sheet: %w", err)
		}
	}

	for i, name := range offices {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetCellValue(officeSheet, cell, name); err != nil {
			return "", fmt.Errorf("failed to write office data: %w", err)
		}
	}

	for i, name := range positions {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetCellValue(positionSheet, cell, name); err != nil {
			return "", fmt.Errorf("failed to write position data: %w", err)
		}
	}

	if err := f.Save(); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return "template.xlsx", nil
}

// isHalfWidth reports whether s contains only half-width characters.
func isHalfWidth(s string) bool {
	normalized := norm.NFC.String(s)
	for _, r := range normalized {
		if r >= '！' && r <= '｠' || r >= '￠' && r <= '￯' {
			return false
		}
	}
	return true
}

func ValidateHalfWidthInput() web.Middleware {
	return func(handler web.Handler) web.Handler {
		return func(c *web.Context) error {
			// Populates Request.Form; non-form bodies pass through untouched.
			_ = c.Request.ParseMultipartForm(32 << 20)

			for _, values := range c.Request.Form {
				for _, value := range values {
					if !isHalfWidth(value) {
						return c.RespondError(web.NewRequestError(
							errors.New("input must contain only half-width characters"), http.StatusBadRequest))
					}
				}
			}

			return handler(c)
		}
	}
}
