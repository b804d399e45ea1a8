package repository

import (
	"context"
	"sort"

	"github.com/idealhome/idealhome-api/internal/models"
)

// PaymentRepository manages the payment collection. Payments are
// append-only: there is no update or delete, and nothing prevents several
// payments for the same student and month.
type PaymentRepository struct {
	store *Store
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

// Create appends a payment and persists.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = newID(prefixPayment)
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = r.store.Now()
	}
	return r.store.Mutate(ctx, "payment", func(doc *models.Document) error {
		doc.Payments = append(doc.Payments, *payment)
		return nil
	})
}

// ListByStudent returns the student's payments ordered by month key
// descending. The fixed-width YYYY-MM format makes plain string
// comparison correct; same-month payments keep insertion order.
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Payment, error) {
	var result []models.Payment
	r.store.View(func(doc *models.Document) {
		result = make([]models.Payment, 0)
		for _, p := range doc.Payments {
			if p.StudentID == studentID {
				result = append(result, p)
			}
		}
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Month > result[j].Month
	})
	return result, nil
}

// ListAll returns every payment in insertion order, used by exports.
func (r *PaymentRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	var result []models.Payment
	r.store.View(func(doc *models.Document) {
		result = make([]models.Payment, len(doc.Payments))
		copy(result, doc.Payments)
	})
	return result, nil
}

// FindByID returns the payment with the given identifier, or ErrNotFound.
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	var found *models.Payment
	r.store.View(func(doc *models.Document) {
		for i := range doc.Payments {
			if doc.Payments[i].ID == id {
				p := doc.Payments[i]
				found = &p
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// ExistsForMonth reports whether the student has at least one payment
// whose month key equals month exactly.
func (r *PaymentRepository) ExistsForMonth(ctx context.Context, studentID, month string) (bool, error) {
	var exists bool
	r.store.View(func(doc *models.Document) {
		exists = hasPaymentForMonth(doc.Payments, studentID, month)
	})
	return exists, nil
}
