package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/idealhome/idealhome-api/internal/models"
	"github.com/idealhome/idealhome-api/internal/repository"
	appErrors "github.com/idealhome/idealhome-api/pkg/errors"
)

type paymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByStudent(ctx context.Context, studentID string) ([]models.Payment, error)
	ListAll(ctx context.Context) ([]models.Payment, error)
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	ExistsForMonth(ctx context.Context, studentID, month string) (bool, error)
}

// AddPaymentRequest holds the line items for one month's payment. Amounts
// tolerate malformed input; anything unparseable counts as zero.
type AddPaymentRequest struct {
	Month     string        `json:"month" validate:"required,datetime=2006-01"`
	Apartment models.Amount `json:"apartment"`
	Tuition   models.Amount `json:"tuition"`
	FoodDays  models.Amount `json:"foodDays"`
	FoodRate  models.Amount `json:"foodRate"`
}

// PaymentService handles payment use-cases: recording monthly payments,
// history and paid-for-month checks.
type PaymentService struct {
	payments  paymentRepository
	students  studentRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentService constructs the payment service.
func NewPaymentService(payments paymentRepository, students studentRepository, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		payments:  payments,
		students:  students,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the service time source, used by tests.
func (s *PaymentService) WithClock(now func() time.Time) *PaymentService {
	s.now = now
	return s
}

// ComputeTotal sums the payment line items: apartment + tuition +
// foodDays*foodRate. All coercion to numeric zero happens before this,
// at decode time.
func ComputeTotal(apartment, tuition, foodDays, foodRate float64) float64 {
	return apartment + tuition + foodDays*foodRate
}

// Add records a payment for the student. The total is always recomputed
// from the line items. Duplicate months are allowed; installments for one
// month show up as separate records.
func (s *PaymentService) Add(ctx context.Context, studentID string, req AddPaymentRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}
	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	apartment := req.Apartment.Float64()
	tuition := req.Tuition.Float64()
	foodDays := req.FoodDays.Float64()
	foodRate := req.FoodRate.Float64()

	payment := &models.Payment{
		StudentID: studentID,
		Month:     req.Month,
		Apartment: apartment,
		Tuition:   tuition,
		FoodDays:  foodDays,
		FoodRate:  foodRate,
		FoodTotal: foodDays * foodRate,
		Total:     ComputeTotal(apartment, tuition, foodDays, foodRate),
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	s.logger.Info("payment recorded",
		zap.String("student_id", studentID),
		zap.String("month", payment.Month),
		zap.Float64("total", payment.Total),
	)
	return payment, nil
}

// History returns the student's payments ordered by month key descending.
func (s *PaymentService) History(ctx context.Context, studentID string) ([]models.Payment, error) {
	payments, err := s.payments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment history")
	}
	return payments, nil
}

// All returns every recorded payment, used by the ledger export.
func (s *PaymentService) All(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payments")
	}
	return payments, nil
}

// Get returns one payment by identifier.
func (s *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "payment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment")
	}
	return payment, nil
}

// IsPaidForMonth reports whether the student has at least one payment
// whose month key equals month exactly.
func (s *PaymentService) IsPaidForMonth(ctx context.Context, studentID, month string) (bool, error) {
	paid, err := s.payments.ExistsForMonth(ctx, studentID, month)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check payment status")
	}
	return paid, nil
}

// CurrentMonthKey returns the month key for "now".
func (s *PaymentService) CurrentMonthKey() string {
	return models.MonthKey(s.now())
}
