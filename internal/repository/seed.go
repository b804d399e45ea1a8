package repository

import (
	"time"

	"github.com/idealhome/idealhome-api/internal/models"
)

// seedDocument fills an empty document with the example ledger: two
// students, one payment for the current month, one staff salary and one
// expense entry.
func seedDocument(doc *models.Document, now time.Time) {
	student1 := models.Student{
		ID:           newID(prefixStudent),
		Name:         "Ahsan Khan",
		Roll:         "102",
		ClassGroup:   "10 Science",
		Phone:        "+8801711000001",
		StudentID:    "SID-001",
		FatherName:   "Rahim Khan",
		FatherPhone1: "+8801711000002",
		FatherJob:    "Engineer",
		Address:      "Chittagong, BD",
		Details:      "Excellent in Physics and Math",
		Status:       models.StatusPresent,
		CreatedAt:    now,
	}
	student2 := models.Student{
		ID:           newID(prefixStudent),
		Name:         "Maya Rahman",
		Roll:         "215",
		ClassGroup:   "9 Arts",
		Phone:        "+8801711000033",
		StudentID:    "SID-002",
		FatherName:   "Karim Rahman",
		FatherPhone1: "+8801711000044",
		FatherJob:    "Teacher",
		Address:      "Dhaka, BD",
		Details:      "Transferred to another hostel",
		Status:       models.StatusEx,
		CreatedAt:    now,
	}

	payment := models.Payment{
		ID:        newID(prefixPayment),
		StudentID: student1.ID,
		Month:     models.MonthKey(now),
		Apartment: 1500,
		Tuition:   1200,
		FoodDays:  20,
		FoodRate:  80,
		FoodTotal: 1600,
		Total:     1500 + 1200 + 1600,
		CreatedAt: now,
	}

	staffSalary := models.StaffExpense{
		ID:        newID(prefixStaffExpense),
		Type:      models.EntryTypeStaff,
		Status:    models.EntryStatusPaid,
		Title:     "Warden Salary",
		Desc:      "Monthly salary for Hostel Warden",
		Amount:    15000,
		Phone:     "+8801711223344",
		CreatedAt: now,
	}
	expense := models.StaffExpense{
		ID:        newID(prefixStaffExpense),
		Type:      models.EntryTypeExpense,
		Status:    models.EntryStatusNotPaid,
		Title:     "Electricity Bill",
		Desc:      "September billing",
		Amount:    7800,
		CreatedAt: now,
	}

	doc.Students = append(doc.Students, student1, student2)
	doc.Payments = append(doc.Payments, payment)
	doc.StaffExpenses = append(doc.StaffExpenses, staffSalary, expense)
}
