package hashing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeImportFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	_, err := f.NewSheet(employeeSheet)
	require.NoError(t, err)

	header := []interface{}{"employee_id", "full_name", "role", "password", "office", "position", "phone", "email"}
	require.NoError(t, f.SetSheetRow(employeeSheet, "A1", &header))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(employeeSheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "import.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestExcelReaderByCreate(t *testing.T) {
	officeMap := map[string]int{"HQ": 1, "Branch": 2}
	positionMap := map[string]int{"Engineer": 10, "Clerk": 11}
	existingIDs := map[string]struct{}{"E900": {}}
	existingEmails := map[string]struct{}{"taken@example.com": {}}

	path := writeImportFile(t, [][]interface{}{
		{"E001", "Alice Smith", "EMPLOYEE", "secret1", "HQ", "Engineer", "+81901234567", "alice@example.com"},
		{"E002", "Bob Jones", "EMPLOYEE", "secret2", "Branch", "Clerk"},
		{"E003", "", "EMPLOYEE", "secret3", "HQ", "Engineer"},
		{"E900", "Dup Existing", "EMPLOYEE", "secret4", "HQ", "Engineer"},
		{"E004", "Bad Office", "EMPLOYEE", "secret5", "Nowhere", "Engineer"},
		{"E005", "Bad Email", "EMPLOYEE", "secret6", "HQ", "Engineer", "", "not-an-email"},
		{"E006", "Taken Email", "EMPLOYEE", "secret7", "HQ", "Engineer", "", "taken@example.com"},
	})

	users, incomplete, err := ExcelReaderByCreate(path, officeMap, positionMap, existingIDs, existingEmails)
	require.NoError(t, err)

	require.Len(t, users, 2)
	assert.Equal(t, "E001", users[0].EmployeeID)
	assert.Equal(t, 1, users[0].OfficeID)
	assert.Equal(t, 10, users[0].PositionID)
	assert.Equal(t, "alice@example.com", users[0].Email)
	assert.Equal(t, "E002", users[1].EmployeeID)
	assert.Equal(t, 2, users[1].OfficeID)
	assert.Empty(t, users[1].Email)

	// Rows 4-8 in the sheet (header offset included) all fail for
	// different reasons.
	assert.Equal(t, []int{4, 5, 6, 7, 8}, incomplete)
}

func TestExcelReaderByCreateDuplicateWithinFile(t *testing.T) {
	officeMap := map[string]int{"HQ": 1}
	positionMap := map[string]int{"Engineer": 10}

	path := writeImportFile(t, [][]interface{}{
		{"E001", "First", "EMPLOYEE", "pw1", "HQ", "Engineer"},
		{"E001", "Second", "EMPLOYEE", "pw2", "HQ", "Engineer"},
	})

	users, incomplete, err := ExcelReaderByCreate(path, officeMap, positionMap, map[string]struct{}{}, map[string]struct{}{})
	require.NoError(t, err)

	// Both the original row and the duplicate are flagged.
	assert.Equal(t, []int{2, 3}, incomplete)
	require.Len(t, users, 1)
	assert.Equal(t, "First", users[0].FullName)
}

func TestIsHalfWidth(t *testing.T) {
	assert.True(t, isHalfWidth("E001-abc@example.com"))
	assert.False(t, isHalfWidth("Ｅ００１"))
	assert.False(t, isHalfWidth("ｐａｓｓ"))
}
