package services

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFeeStore applies ledger entries and paid-fee adjustments together,
// mirroring the atomicity contract of the real repository.
type fakeFeeStore struct {
	nextID       int64
	transactions map[int64]*models.FeeTransaction
	history      map[int64][]*models.FeeTransaction // newest first
	paidFees     map[int64]float64
	students     map[int64]bool
}

func newFakeFeeStore(studentIDs ...int64) *fakeFeeStore {
	s := &fakeFeeStore{
		transactions: make(map[int64]*models.FeeTransaction),
		history:      make(map[int64][]*models.FeeTransaction),
		paidFees:     make(map[int64]float64),
		students:     make(map[int64]bool),
	}
	for _, id := range studentIDs {
		s.students[id] = true
	}
	return s
}

func (s *fakeFeeStore) Collect(ctx context.Context, txn *models.FeeTransaction) error {
	if !s.students[txn.StudentID] {
		return apperrors.ErrStudentNotFound
	}
	s.nextID++
	txn.ID = s.nextID
	s.transactions[txn.ID] = txn
	s.history[txn.StudentID] = append([]*models.FeeTransaction{txn}, s.history[txn.StudentID]...)
	s.paidFees[txn.StudentID] += txn.Amount
	return nil
}

func (s *fakeFeeStore) Void(ctx context.Context, id int64) (*models.FeeTransaction, error) {
	txn, ok := s.transactions[id]
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	delete(s.transactions, id)
	remaining := s.history[txn.StudentID][:0]
	for _, t := range s.history[txn.StudentID] {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	s.history[txn.StudentID] = remaining
	s.paidFees[txn.StudentID] -= txn.Amount
	return txn, nil
}

func (s *fakeFeeStore) HistoryByStudent(ctx context.Context, studentID int64) ([]*models.FeeTransaction, error) {
	return s.history[studentID], nil
}

func newFeeLedgerService(store FeeStore) *FeeLedgerService {
	return NewFeeLedgerService(store, zerolog.Nop())
}

func TestFeeLedgerCollectAccumulates(t *testing.T) {
	store := newFakeFeeStore(1)
	svc := newFeeLedgerService(store)

	txn1, err := svc.Collect(context.Background(), 1, 5000, "2024-01-10", "First installment")
	require.NoError(t, err)
	assert.NotZero(t, txn1.ID)

	_, err = svc.Collect(context.Background(), 1, 3000, "2024-02-10", "Second installment")
	require.NoError(t, err)

	assert.Equal(t, 8000.0, store.paidFees[1])
}

func TestFeeLedgerVoidReversesPaidFee(t *testing.T) {
	store := newFakeFeeStore(1)
	svc := newFeeLedgerService(store)

	_, err := svc.Collect(context.Background(), 1, 5000, "2024-01-10", "")
	require.NoError(t, err)
	txn2, err := svc.Collect(context.Background(), 1, 3000, "2024-02-10", "")
	require.NoError(t, err)

	require.NoError(t, svc.Void(context.Background(), txn2.ID))
	assert.Equal(t, 5000.0, store.paidFees[1])

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 5000.0, history[0].Amount)
}

func TestFeeLedgerVoidUnknownTransaction(t *testing.T) {
	store := newFakeFeeStore(1)
	svc := newFeeLedgerService(store)

	_, err := svc.Collect(context.Background(), 1, 5000, "2024-01-10", "")
	require.NoError(t, err)

	err = svc.Void(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)

	// A failed void must not change any balance
	assert.Equal(t, 5000.0, store.paidFees[1])
}

func TestFeeLedgerCollectDefaultsNarration(t *testing.T) {
	store := newFakeFeeStore(1)
	svc := newFeeLedgerService(store)

	txn, err := svc.Collect(context.Background(), 1, 100, "2024-01-10", "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultNarration, txn.Narration)

	txn, err = svc.Collect(context.Background(), 1, 100, "2024-01-11", "Late fee")
	require.NoError(t, err)
	assert.Equal(t, "Late fee", txn.Narration)
}

func TestFeeLedgerCollectRejectsNonFiniteAmounts(t *testing.T) {
	store := newFakeFeeStore(1)
	svc := newFeeLedgerService(store)

	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := svc.Collect(context.Background(), 1, amount, "2024-01-10", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	}
	assert.Empty(t, store.transactions)
}

func TestFeeLedgerCollectUnknownStudent(t *testing.T) {
	store := newFakeFeeStore(1)
	svc := newFeeLedgerService(store)

	_, err := svc.Collect(context.Background(), 42, 100, "2024-01-10", "")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestFeeLedgerCollectRejectsBadStudentID(t *testing.T) {
	svc := newFeeLedgerService(newFakeFeeStore())

	_, err := svc.Collect(context.Background(), 0, 100, "2024-01-10", "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestFeeLedgerHistoryNewestFirst(t *testing.T) {
	store := newFakeFeeStore(1)
	svc := newFeeLedgerService(store)

	_, err := svc.Collect(context.Background(), 1, 1000, "2024-01-10", "")
	require.NoError(t, err)
	_, err = svc.Collect(context.Background(), 1, 2000, "2024-02-10", "")
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 2000.0, history[0].Amount)
	assert.Equal(t, 1000.0, history[1].Amount)
}

func TestFeeLedgerHistoryUnknownStudentIsEmpty(t *testing.T) {
	svc := newFeeLedgerService(newFakeFeeStore(1))

	history, err := svc.History(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, history)
}
