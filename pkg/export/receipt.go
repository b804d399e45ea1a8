package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/idealhome/idealhome-api/internal/models"
)

// Receipt holds the values printed on a monthly payment receipt.
type Receipt struct {
	StudentName string
	Month       string
	Apartment   float64
	Tuition     float64
	FoodDays    float64
	FoodRate    float64
	Total       float64
}

// ReceiptExporter renders payment receipts as PDF documents.
type ReceiptExporter struct{}

// NewReceiptExporter constructs a receipt exporter.
func NewReceiptExporter() *ReceiptExporter {
	return &ReceiptExporter{}
}

// Render produces the receipt PDF: header, student and month lines, then
// the line items with the food breakdown and the grand total.
func (e *ReceiptExporter) Render(r Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(15, 18, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 9, "Science Ideal Home", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Hostel Management Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Student: %s", r.StudentName), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Month: %s", models.MonthDisplay(r.Month)), "", 1, "", false, 0, "")
	pdf.Ln(4)

	line := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 11)
		pdf.CellFormat(80, 8, label, "T", 0, "", false, 0, "")
		pdf.CellFormat(0, 8, value, "T", 1, "R", false, 0, "")
	}

	food := r.FoodDays * r.FoodRate
	line("Apartment Bill", currency(r.Apartment), false)
	line("Tuition Fee", currency(r.Tuition), false)
	line(fmt.Sprintf("Food (%.0f days x %s)", r.FoodDays, currency(r.FoodRate)), currency(food), false)
	line("Total", currency(r.Total), true)

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 5, "Powered by Science Ideal Home", "", 1, "", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func currency(v float64) string {
	return fmt.Sprintf("Tk %.2f", v)
}
