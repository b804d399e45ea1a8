package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/idealhome/idealhome-api/internal/models"
	"github.com/idealhome/idealhome-api/internal/repository"
	appErrors "github.com/idealhome/idealhome-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id string, patch models.PatchStudent) (*models.Student, error)
}

// CreateStudentRequest holds payload for registering students.
type CreateStudentRequest struct {
	Name         string `json:"name" validate:"required"`
	Roll         string `json:"roll"`
	ClassGroup   string `json:"classGroup"`
	Phone        string `json:"phone"`
	Phone2       string `json:"phone2"`
	StudentID    string `json:"studentId"`
	FatherName   string `json:"fatherName"`
	FatherPhone1 string `json:"fatherPhone1"`
	FatherPhone2 string `json:"fatherPhone2"`
	FatherJob    string `json:"fatherJob"`
	Address      string `json:"address"`
	Details      string `json:"details"`
	Status       string `json:"status" validate:"omitempty,oneof=present ex"`
	Photo        string `json:"photo"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns students matching the filter, in insertion order.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns one student by identifier.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student := &models.Student{
		Name:         req.Name,
		Roll:         req.Roll,
		ClassGroup:   req.ClassGroup,
		Phone:        req.Phone,
		Phone2:       req.Phone2,
		StudentID:    req.StudentID,
		FatherName:   req.FatherName,
		FatherPhone1: req.FatherPhone1,
		FatherPhone2: req.FatherPhone2,
		FatherJob:    req.FatherJob,
		Address:      req.Address,
		Details:      req.Details,
		Status:       req.Status,
		Photo:        req.Photo,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	s.logger.Info("student registered", zap.String("id", student.ID))
	return student, nil
}

// Update merges the patch over an existing student. Unspecified fields
// are retained.
func (s *StudentService) Update(ctx context.Context, id string, patch models.PatchStudent) (*models.Student, error) {
	if patch.Status != nil && *patch.Status != models.StatusPresent && *patch.Status != models.StatusEx {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be present or ex")
	}
	student, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, err
	}
	return student, nil
}
