package models

import "time"

// Student status values. The ledger only distinguishes residents from
// students who have left.
const (
	StatusPresent = "present"
	StatusEx      = "ex"
)

// Student represents a resident tracked by the hostel ledger. The ID is
// assigned on creation and never changes; there is no delete operation.
type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Roll         string    `json:"roll"`
	ClassGroup   string    `json:"classGroup"`
	Phone        string    `json:"phone"`
	Phone2       string    `json:"phone2"`
	StudentID    string    `json:"studentId"`
	FatherName   string    `json:"fatherName"`
	FatherPhone1 string    `json:"fatherPhone1"`
	FatherPhone2 string    `json:"fatherPhone2"`
	FatherJob    string    `json:"fatherJob"`
	Address      string    `json:"address"`
	Details      string    `json:"details"`
	Status       string    `json:"status"`
	Photo        string    `json:"photo"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Payment filter values for StudentFilter.Pay.
const (
	PayComplete = "complete"
	PayPending  = "pending"
)

// StudentFilter narrows the student listing. All criteria are applied
// conjunctively; zero values impose no constraint. It is transient state
// and never persisted.
type StudentFilter struct {
	Search string
	Status string
	Pay    string
}

// PatchStudent carries the editable student fields for a merge update.
// Nil fields are left untouched on the stored record.
type PatchStudent struct {
	Name         *string `json:"name"`
	Roll         *string `json:"roll"`
	ClassGroup   *string `json:"classGroup"`
	Phone        *string `json:"phone"`
	Phone2       *string `json:"phone2"`
	StudentID    *string `json:"studentId"`
	FatherName   *string `json:"fatherName"`
	FatherPhone1 *string `json:"fatherPhone1"`
	FatherPhone2 *string `json:"fatherPhone2"`
	FatherJob    *string `json:"fatherJob"`
	Address      *string `json:"address"`
	Details      *string `json:"details"`
	Status       *string `json:"status"`
	Photo        *string `json:"photo"`
}

// Apply merges the patch over the student, returning the merged copy.
// Specified fields win; everything else is retained.
func (p PatchStudent) Apply(s Student) Student {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Roll != nil {
		s.Roll = *p.Roll
	}
	if p.ClassGroup != nil {
		s.ClassGroup = *p.ClassGroup
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Phone2 != nil {
		s.Phone2 = *p.Phone2
	}
	if p.StudentID != nil {
		s.StudentID = *p.StudentID
	}
	if p.FatherName != nil {
		s.FatherName = *p.FatherName
	}
	if p.FatherPhone1 != nil {
		s.FatherPhone1 = *p.FatherPhone1
	}
	if p.FatherPhone2 != nil {
		s.FatherPhone2 = *p.FatherPhone2
	}
	if p.FatherJob != nil {
		s.FatherJob = *p.FatherJob
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Details != nil {
		s.Details = *p.Details
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Photo != nil {
		s.Photo = *p.Photo
	}
	return s
}
