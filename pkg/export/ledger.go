package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/idealhome/idealhome-api/internal/models"
)

// ledgerColumns is the column order of the student ledger export.
var ledgerColumns = []string{"id", "name", "roll", "class", "status", "phone", "payments", "total_paid"}

// LedgerExporter renders the student ledger as CSV: one row per student,
// in collection order, carrying the count and summed total of that
// student's recorded payments.
type LedgerExporter struct{}

// NewLedgerExporter constructs a ledger exporter.
func NewLedgerExporter() *LedgerExporter {
	return &LedgerExporter{}
}

// Render produces the CSV bytes for the given collections. Students
// without payments still get a row, with zero count and total.
func (e *LedgerExporter) Render(students []models.Student, payments []models.Payment) ([]byte, error) {
	type agg struct {
		count int
		total float64
	}
	perStudent := make(map[string]agg, len(students))
	for _, p := range payments {
		a := perStudent[p.StudentID]
		a.count++
		a.total += p.Total
		perStudent[p.StudentID] = a
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(ledgerColumns); err != nil {
		return nil, fmt.Errorf("write ledger header: %w", err)
	}
	for _, s := range students {
		a := perStudent[s.ID]
		record := []string{
			s.ID,
			s.Name,
			s.Roll,
			s.ClassGroup,
			s.Status,
			s.Phone,
			strconv.Itoa(a.count),
			strconv.FormatFloat(a.total, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write ledger row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush ledger csv: %w", err)
	}
	return buf.Bytes(), nil
}
