package models

import "time"

// StaffExpense entry kinds.
const (
	EntryTypeStaff   = "staff"
	EntryTypeExpense = "expense"
)

// StaffExpense payment states.
const (
	EntryStatusPaid    = "paid"
	EntryStatusNotPaid = "not_paid"
)

// StaffExpense is a staff salary or operating expense entry. It has no
// relation to students.
type StaffExpense struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	Amount    float64   `json:"amount"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
