package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/idealhome/idealhome-api/internal/models"
	appErrors "github.com/idealhome/idealhome-api/pkg/errors"
)

type staffExpenseRepository interface {
	List(ctx context.Context) ([]models.StaffExpense, error)
	Upsert(ctx context.Context, entry *models.StaffExpense) error
}

// SaveStaffExpenseRequest holds payload for a staff salary or expense
// entry. An ID in the payload turns the call into an update of that
// entry; without one a new entry is created.
type SaveStaffExpenseRequest struct {
	ID     string        `json:"id"`
	Type   string        `json:"type" validate:"required,oneof=staff expense"`
	Status string        `json:"status" validate:"required,oneof=paid not_paid"`
	Title  string        `json:"title" validate:"required"`
	Desc   string        `json:"desc"`
	Amount models.Amount `json:"amount"`
	Phone  string        `json:"phone"`
}

// StaffExpenseService handles staff salary and expense entries.
type StaffExpenseService struct {
	repo      staffExpenseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStaffExpenseService constructs the staff/expense service.
func NewStaffExpenseService(repo staffExpenseRepository, validate *validator.Validate, logger *zap.Logger) *StaffExpenseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffExpenseService{repo: repo, validator: validate, logger: logger}
}

// List returns all entries, most recently created first.
func (s *StaffExpenseService) List(ctx context.Context) ([]models.StaffExpense, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list entries")
	}
	return entries, nil
}

// AddOrUpdate stores the entry, creating it when no ID is supplied.
func (s *StaffExpenseService) AddOrUpdate(ctx context.Context, req SaveStaffExpenseRequest) (*models.StaffExpense, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid entry payload")
	}
	amount := req.Amount.Float64()
	if amount < 0 {
		amount = 0
	}
	entry := &models.StaffExpense{
		ID:     req.ID,
		Type:   req.Type,
		Status: req.Status,
		Title:  req.Title,
		Desc:   req.Desc,
		Amount: amount,
		Phone:  req.Phone,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	s.logger.Info("staff/expense entry saved", zap.String("id", entry.ID), zap.String("type", entry.Type))
	return entry, nil
}
