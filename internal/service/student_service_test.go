package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idealhome/idealhome-api/internal/models"
	"github.com/idealhome/idealhome-api/internal/repository"
	appErrors "github.com/idealhome/idealhome-api/pkg/errors"
)

type mockStudentRepo struct {
	students   map[string]models.Student
	order      []string
	lastFilter models.StudentFilter
	err        error
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]models.Student)}
}

func (m *mockStudentRepo) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	result := make([]models.Student, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.students[id])
	}
	return result, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s, ok := m.students[id]; ok {
		return &s, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = "generated"
	}
	m.students[student.ID] = *student
	m.order = append(m.order, student.ID)
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, id string, patch models.PatchStudent) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s = patch.Apply(s)
	m.students[id] = s
	return &s, nil
}

func TestStudentServiceCreate(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, validator.New(), zap.NewNop())

	student, err := svc.Create(context.Background(), CreateStudentRequest{
		Name:       "Ahsan Khan",
		Roll:       "102",
		ClassGroup: "10 Science",
		Status:     models.StatusPresent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.Len(t, repo.students, 1)
}

func TestStudentServiceCreateRequiresName(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{Roll: "102"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceCreateRejectsUnknownStatus(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{Name: "A", Status: "graduated"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceUpdateMerges(t *testing.T) {
	repo := newMockStudentRepo()
	require.NoError(t, repo.Create(context.Background(), &models.Student{ID: "s1", Name: "A", Phone: "123"}))
	svc := NewStudentService(repo, validator.New(), zap.NewNop())

	phone := "456"
	updated, err := svc.Update(context.Background(), "s1", models.PatchStudent{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "456", updated.Phone)
}

func TestStudentServiceUpdateUnknownID(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), validator.New(), zap.NewNop())

	name := "B"
	_, err := svc.Update(context.Background(), "missing", models.PatchStudent{Name: &name})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceUpdateRejectsBadStatus(t *testing.T) {
	repo := newMockStudentRepo()
	require.NoError(t, repo.Create(context.Background(), &models.Student{ID: "s1", Name: "A"}))
	svc := NewStudentService(repo, validator.New(), zap.NewNop())

	status := "graduated"
	_, err := svc.Update(context.Background(), "s1", models.PatchStudent{Status: &status})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceListPassesFilter(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, validator.New(), zap.NewNop())

	_, err := svc.List(context.Background(), models.StudentFilter{Search: "maya", Status: models.StatusEx})
	require.NoError(t, err)
	assert.Equal(t, "maya", repo.lastFilter.Search)
	assert.Equal(t, models.StatusEx, repo.lastFilter.Status)
}
