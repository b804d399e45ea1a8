package repository

import (
	"context"
	"strings"

	"github.com/idealhome/idealhome-api/internal/models"
)

// StudentRepository manages the student collection. Records are only ever
// appended or patched; the ledger has no student delete operation.
type StudentRepository struct {
	store *Store
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(store *Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// List returns students matching the filter, in insertion order. The
// filter selects, it never re-sorts.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	currentMonth := models.MonthKey(r.store.Now())

	var result []models.Student
	r.store.View(func(doc *models.Document) {
		result = make([]models.Student, 0, len(doc.Students))
		for _, s := range doc.Students {
			if search != "" {
				hay := strings.ToLower(s.Name + " " + s.Roll + " " + s.StudentID)
				if !strings.Contains(hay, search) {
					continue
				}
			}
			if filter.Status != "" && s.Status != filter.Status {
				continue
			}
			if filter.Pay != "" {
				paid := hasPaymentForMonth(doc.Payments, s.ID, currentMonth)
				if filter.Pay == models.PayComplete && !paid {
					continue
				}
				if filter.Pay == models.PayPending && paid {
					continue
				}
			}
			result = append(result, s)
		}
	})
	return result, nil
}

// FindByID returns the student with the given identifier, or ErrNotFound.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	var found *models.Student
	r.store.View(func(doc *models.Document) {
		for i := range doc.Students {
			if doc.Students[i].ID == id {
				s := doc.Students[i]
				found = &s
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Create appends a new student and persists. A missing identifier or
// timestamp is assigned here.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = newID(prefixStudent)
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = r.store.Now()
	}
	if student.Status == "" {
		student.Status = models.StatusPresent
	}
	return r.store.Mutate(ctx, "student", func(doc *models.Document) error {
		doc.Students = append(doc.Students, *student)
		return nil
	})
}

// Update merges the patch over the stored record and persists. An unknown
// identifier returns ErrNotFound and writes nothing.
func (r *StudentRepository) Update(ctx context.Context, id string, patch models.PatchStudent) (*models.Student, error) {
	var updated models.Student
	err := r.store.Mutate(ctx, "student", func(doc *models.Document) error {
		for i := range doc.Students {
			if doc.Students[i].ID == id {
				doc.Students[i] = patch.Apply(doc.Students[i])
				updated = doc.Students[i]
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func hasPaymentForMonth(payments []models.Payment, studentID, month string) bool {
	for _, p := range payments {
		if p.StudentID == studentID && p.Month == month {
			return true
		}
	}
	return false
}
