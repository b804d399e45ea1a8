package repository

import (
	"context"
	"sort"

	"github.com/idealhome/idealhome-api/internal/models"
)

// StaffExpenseRepository manages staff salary and expense entries.
type StaffExpenseRepository struct {
	store *Store
}

// NewStaffExpenseRepository constructs a StaffExpenseRepository.
func NewStaffExpenseRepository(store *Store) *StaffExpenseRepository {
	return &StaffExpenseRepository{store: store}
}

// List returns all entries, most recently created first.
func (r *StaffExpenseRepository) List(ctx context.Context) ([]models.StaffExpense, error) {
	var result []models.StaffExpense
	r.store.View(func(doc *models.Document) {
		result = make([]models.StaffExpense, len(doc.StaffExpenses))
		copy(result, doc.StaffExpenses)
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// FindByID returns the entry with the given identifier, or ErrNotFound.
func (r *StaffExpenseRepository) FindByID(ctx context.Context, id string) (*models.StaffExpense, error) {
	var found *models.StaffExpense
	r.store.View(func(doc *models.Document) {
		for i := range doc.StaffExpenses {
			if doc.StaffExpenses[i].ID == id {
				e := doc.StaffExpenses[i]
				found = &e
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Upsert stores the entry and persists. An entry without an identifier is
// appended with a fresh one; an entry whose identifier already exists
// replaces the stored record's editable fields while keeping its creation
// time.
func (r *StaffExpenseRepository) Upsert(ctx context.Context, entry *models.StaffExpense) error {
	if entry.ID == "" {
		entry.ID = newID(prefixStaffExpense)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.store.Now()
	}
	return r.store.Mutate(ctx, "staff_expense", func(doc *models.Document) error {
		for i := range doc.StaffExpenses {
			if doc.StaffExpenses[i].ID == entry.ID {
				entry.CreatedAt = doc.StaffExpenses[i].CreatedAt
				doc.StaffExpenses[i] = *entry
				return nil
			}
		}
		doc.StaffExpenses = append(doc.StaffExpenses, *entry)
		return nil
	})
}
