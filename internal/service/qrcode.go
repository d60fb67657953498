package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf/v2"
	qrcode "github.com/skip2/go-qrcode"
)

const qrDir = "statics/qrcodes"
const qrSize = 256

// QrCodeFile renders the check-in QR image for one employee, reusing the file
// when it already exists.
func QrCodeFile(employeeID string) (string, error) {
	if _, err := os.Stat(qrDir); errors.Is(err, os.ErrNotExist) {
		if err = os.MkdirAll(qrDir, os.ModePerm); err != nil {
			return "", err
		}
	}

	path := filepath.Join(qrDir, employeeID+".png")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := qrcode.WriteFile(employeeID, qrcode.Medium, qrSize, path); err != nil {
		return "", fmt.Errorf("writing qr code: %w", err)
	}

	return path, nil
}

type QrBadge struct {
	EmployeeID string
	FullName   string
	Office     string
}

// QrCodeListPDF lays every badge out on A4 pages, three columns per row, and
// returns the path of the generated PDF.
func QrCodeListPDF(badges []QrBadge) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	const (
		cellW   = 60.0
		cellH   = 75.0
		imgSize = 45.0
		marginX = 15.0
		marginY = 15.0
	)

	col, x, y := 0, marginX, marginY

	for _, badge := range badges {
		imgPath, err := QrCodeFile(badge.EmployeeID)
		if err != nil {
			return "", err
		}

		if y+cellH > 282 {
			pdf.AddPage()
			y = marginY
		}

		pdf.Image(imgPath, x+(cellW-imgSize)/2, y, imgSize, imgSize, false, "", 0, "")

		pdf.SetFont("Arial", "B", 10)
		pdf.SetXY(x, y+imgSize+2)
		pdf.CellFormat(cellW, 5, badge.FullName, "", 0, "C", false, 0, "")

		pdf.SetFont("Arial", "", 9)
		pdf.SetXY(x, y+imgSize+7)
		pdf.CellFormat(cellW, 5, badge.EmployeeID, "", 0, "C", false, 0, "")

		pdf.SetXY(x, y+imgSize+12)
		pdf.CellFormat(cellW, 5, badge.Office, "", 0, "C", false, 0, "")

		col++
		if col == 3 {
			col = 0
			x = marginX
			y += cellH
		} else {
			x += cellW + 5
		}
	}

	path := filepath.Join(qrDir, "qr_employees.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing qr pdf: %w", err)
	}

	return path, nil
}
