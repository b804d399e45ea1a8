package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idealhome/idealhome-api/internal/models"
)

func TestPaymentRepositoryCreateAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewPaymentRepository(store)

	payment := &models.Payment{StudentID: "s1", Month: "2024-07", Total: 4300}
	require.NoError(t, repo.Create(ctx, payment))
	assert.Contains(t, payment.ID, "pay_")
	assert.False(t, payment.CreatedAt.IsZero())
}

func TestPaymentRepositoryHistoryOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewPaymentRepository(store)

	for _, month := range []string{"2024-01", "2024-03", "2024-02"} {
		require.NoError(t, repo.Create(ctx, &models.Payment{StudentID: "s1", Month: month}))
	}
	require.NoError(t, repo.Create(ctx, &models.Payment{StudentID: "someone-else", Month: "2024-12"}))

	history, err := repo.ListByStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2024-03", history[0].Month)
	assert.Equal(t, "2024-02", history[1].Month)
	assert.Equal(t, "2024-01", history[2].Month)
}

func TestPaymentRepositoryDuplicateMonthsAllowed(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewPaymentRepository(store)

	require.NoError(t, repo.Create(ctx, &models.Payment{StudentID: "s1", Month: "2024-07", Total: 1000}))
	require.NoError(t, repo.Create(ctx, &models.Payment{StudentID: "s1", Month: "2024-07", Total: 500}))

	history, err := repo.ListByStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Installments for the same month keep insertion order.
	assert.Equal(t, 1000.0, history[0].Total)
	assert.Equal(t, 500.0, history[1].Total)
}

func TestPaymentRepositoryExistsForMonth(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewPaymentRepository(store)

	exists, err := repo.ExistsForMonth(ctx, "s1", "2024-07")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &models.Payment{StudentID: "s1", Month: "2024-07"}))

	exists, err = repo.ExistsForMonth(ctx, "s1", "2024-07")
	require.NoError(t, err)
	assert.True(t, exists)

	// Exact string equality only; adjacent months do not count.
	exists, err = repo.ExistsForMonth(ctx, "s1", "2024-08")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPaymentRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewPaymentRepository(store)

	payment := &models.Payment{StudentID: "s1", Month: "2024-07"}
	require.NoError(t, repo.Create(ctx, payment))

	found, err := repo.FindByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, found.ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
