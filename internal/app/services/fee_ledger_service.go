package services

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
)

// FeeStore is the persistence contract the fee ledger relies on. Collect
// and Void must apply the ledger entry and the owning student's paid-fee
// adjustment atomically; FeeRepository does so in one SQL transaction.
type FeeStore interface {
	Collect(ctx context.Context, txn *models.FeeTransaction) error
	Void(ctx context.Context, id int64) (*models.FeeTransaction, error)
	HistoryByStudent(ctx context.Context, studentID int64) ([]*models.FeeTransaction, error)
}

// FeeLedgerService maintains the invariant that a student's paid-fee
// total equals the sum of that student's recorded transactions.
type FeeLedgerService struct {
	fees   FeeStore
	logger zerolog.Logger
}

// NewFeeLedgerService creates a new fee ledger service instance
func NewFeeLedgerService(fees FeeStore, logger zerolog.Logger) *FeeLedgerService {
	return &FeeLedgerService{
		fees:   fees,
		logger: logger,
	}
}

// Collect records a fee payment against a student and increments the
// student's paid-fee total. Returns apperrors.ErrStudentNotFound when
// the student ID does not resolve and apperrors.ErrInvalidAmount when
// the amount is not a finite number.
func (s *FeeLedgerService) Collect(ctx context.Context, studentID int64, amount float64, date, narration string) (*models.FeeTransaction, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, apperrors.ErrInvalidAmount
	}

	if narration == "" {
		narration = models.DefaultNarration
	}

	txn := &models.FeeTransaction{
		StudentID: studentID,
		Amount:    amount,
		Date:      date,
		Narration: narration,
	}

	if err := s.fees.Collect(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentId", studentID).
		Int64("transactionId", txn.ID).
		Float64("amount", amount).
		Msg("Fee payment recorded")

	return txn, nil
}

// Void deletes a fee transaction and reverses its effect on the owning
// student's paid-fee total. The reversal amount comes from the stored
// transaction, never from the caller.
func (s *FeeLedgerService) Void(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("transaction ID must be positive")
	}

	txn, err := s.fees.Void(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentId", txn.StudentID).
		Int64("transactionId", txn.ID).
		Float64("amount", txn.Amount).
		Msg("Fee transaction voided")

	return nil
}

// History returns a student's fee transactions, newest first. An unknown
// student yields an empty history rather than an error.
func (s *FeeLedgerService) History(ctx context.Context, studentID int64) ([]*models.FeeTransaction, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	return s.fees.HistoryByStudent(ctx, studentID)
}
