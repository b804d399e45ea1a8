package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idealhome/idealhome-api/internal/models"
)

func TestStudentRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewStudentRepository(store)

	student := &models.Student{Name: "Ahsan Khan", Roll: "102"}
	require.NoError(t, repo.Create(ctx, student))

	assert.NotEmpty(t, student.ID)
	assert.Contains(t, student.ID, "stu_")
	assert.False(t, student.CreatedAt.IsZero())
	assert.Equal(t, models.StatusPresent, student.Status)

	found, err := repo.FindByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ahsan Khan", found.Name)
}

func TestStudentRepositoryFindUnknown(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewStudentRepository(store)

	_, err := repo.FindByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentRepositoryUpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewStudentRepository(store)

	student := &models.Student{Name: "A", Phone: "123"}
	require.NoError(t, repo.Create(ctx, student))

	phone := "456"
	updated, err := repo.Update(ctx, student.ID, models.PatchStudent{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, student.ID, updated.ID)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "456", updated.Phone)
}

func TestStudentRepositoryUpdateUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewStudentRepository(store)
	require.NoError(t, repo.Create(ctx, &models.Student{Name: "A"}))

	name := "B"
	_, err := repo.Update(ctx, "nonexistent", models.PatchStudent{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	students, err := repo.List(ctx, models.StudentFilter{})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "A", students[0].Name)
}

func TestStudentRepositoryListFilter(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	students := NewStudentRepository(store)
	payments := NewPaymentRepository(store)

	ahsan := &models.Student{Name: "Ahsan Khan", Roll: "102", StudentID: "SID-001", Status: models.StatusPresent}
	maya := &models.Student{Name: "Maya Rahman", Roll: "215", StudentID: "SID-002", Status: models.StatusEx}
	require.NoError(t, students.Create(ctx, ahsan))
	require.NoError(t, students.Create(ctx, maya))

	// Ahsan has paid the current month (clock is fixed to 2024-07).
	require.NoError(t, payments.Create(ctx, &models.Payment{StudentID: ahsan.ID, Month: "2024-07", Total: 100}))

	t.Run("empty filter matches everything in insertion order", func(t *testing.T) {
		got, err := students.List(ctx, models.StudentFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Ahsan Khan", got[0].Name)
		assert.Equal(t, "Maya Rahman", got[1].Name)
	})

	t.Run("search is case-insensitive and trims", func(t *testing.T) {
		got, err := students.List(ctx, models.StudentFilter{Search: "  MAYA "})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Maya Rahman", got[0].Name)
	})

	t.Run("search covers roll and student id", func(t *testing.T) {
		byRoll, err := students.List(ctx, models.StudentFilter{Search: "215"})
		require.NoError(t, err)
		require.Len(t, byRoll, 1)
		assert.Equal(t, "Maya Rahman", byRoll[0].Name)

		bySID, err := students.List(ctx, models.StudentFilter{Search: "sid-001"})
		require.NoError(t, err)
		require.Len(t, bySID, 1)
		assert.Equal(t, "Ahsan Khan", bySID[0].Name)
	})

	t.Run("status filter", func(t *testing.T) {
		got, err := students.List(ctx, models.StudentFilter{Status: models.StatusEx})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Maya Rahman", got[0].Name)
	})

	t.Run("pay filter uses the current month", func(t *testing.T) {
		complete, err := students.List(ctx, models.StudentFilter{Pay: models.PayComplete})
		require.NoError(t, err)
		require.Len(t, complete, 1)
		assert.Equal(t, ahsan.ID, complete[0].ID)

		pending, err := students.List(ctx, models.StudentFilter{Pay: models.PayPending})
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, maya.ID, pending[0].ID)
	})

	t.Run("criteria combine conjunctively", func(t *testing.T) {
		got, err := students.List(ctx, models.StudentFilter{Search: "maya", Status: models.StatusPresent})
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = students.List(ctx, models.StudentFilter{Search: "maya", Status: models.StatusEx, Pay: models.PayPending})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Maya Rahman", got[0].Name)
	})

	t.Run("a payment for another month keeps the student pending", func(t *testing.T) {
		require.NoError(t, payments.Create(ctx, &models.Payment{StudentID: maya.ID, Month: "2024-06", Total: 50}))
		pending, err := students.List(ctx, models.StudentFilter{Pay: models.PayPending})
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, maya.ID, pending[0].ID)
	})
}
