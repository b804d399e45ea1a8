package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idealhome/idealhome-api/internal/models"
)

func TestLedgerExporterRender(t *testing.T) {
	students := []models.Student{
		{ID: "s1", Name: "Ahsan Khan", Roll: "102", ClassGroup: "10 Science", Status: models.StatusPresent, Phone: "017"},
		{ID: "s2", Name: "Maya, Rahman", Roll: "215", Status: models.StatusEx},
	}
	payments := []models.Payment{
		{StudentID: "s1", Total: 4300},
		{StudentID: "s1", Total: 700},
	}

	data, err := NewLedgerExporter().Render(students, payments)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,roll,class,status,phone,payments,total_paid", lines[0])
	assert.Equal(t, "s1,Ahsan Khan,102,10 Science,present,017,2,5000.00", lines[1])
	assert.Equal(t, `s2,"Maya, Rahman",215,,ex,,0,0.00`, lines[2])
}

func TestLedgerExporterRenderEmpty(t *testing.T) {
	data, err := NewLedgerExporter().Render(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "id,name,roll,class,status,phone,payments,total_paid\n", string(data))
}

func TestReceiptExporterRender(t *testing.T) {
	exporter := NewReceiptExporter()

	data, err := exporter.Render(Receipt{
		StudentName: "Ahsan Khan",
		Month:       "2024-07",
		Apartment:   1500,
		Tuition:     1200,
		FoodDays:    20,
		FoodRate:    80,
		Total:       4300,
	})
	require.NoError(t, err)
	require.True(t, len(data) > 0)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
