package models

import "time"

// MonthKeyLayout is the fixed-width month key format. Keys in this form
// compare correctly as plain strings, which is how all month ordering and
// equality checks work.
const MonthKeyLayout = "2006-01"

// Payment records one month's dues for a student. Total is always the sum
// of the line items, recomputed on creation and never edited afterwards.
// Payments are append-only; a student may hold several payments for the
// same month (partial or installment payments are allowed).
type Payment struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	Month     string    `json:"month"`
	Apartment float64   `json:"apartment"`
	Tuition   float64   `json:"tuition"`
	FoodDays  float64   `json:"foodDays"`
	FoodRate  float64   `json:"foodRate"`
	FoodTotal float64   `json:"foodTotal"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// MonthKey formats t as a YYYY-MM month key.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// MonthDisplay renders a month key as e.g. "September 2024". Keys that do
// not parse are returned unchanged, mirroring how the ledger UI degrades.
func MonthDisplay(key string) string {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}
