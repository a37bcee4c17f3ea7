package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/db"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
	"github.com/skillpoint/institute-backend/internal/pkg/dberrors"
)

// FeeRepository handles database operations for the fee ledger.
//
// The ledger invariant is that a student's paid_fee column always equals
// the sum of that student's fee_transactions rows. Both Collect and Void
// therefore run their two writes through db.WithTransaction: either the
// ledger entry and the cached total move together, or neither does.
type FeeRepository struct {
	db *db.PostgresDB
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(database *db.PostgresDB) *FeeRepository {
	return &FeeRepository{
		db: database,
	}
}

// Collect inserts a fee transaction and increments the owning student's
// paid_fee total atomically.
func (r *FeeRepository) Collect(ctx context.Context, txn *models.FeeTransaction) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insert := `
			INSERT INTO fee_transactions (student_id, amount, date, narration)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, insert,
			txn.StudentID,
			txn.Amount,
			txn.Date,
			txn.Narration,
		).Scan(&txn.ID, &txn.CreatedAt)

		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error inserting fee transaction: %w", err)
		}

		cmdTag, err := tx.Exec(ctx,
			`UPDATE students SET paid_fee = paid_fee + $1 WHERE id = $2`,
			txn.Amount, txn.StudentID)
		if err != nil {
			return fmt.Errorf("error updating paid fee: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}

// Void deletes a fee transaction and decrements the owning student's
// paid_fee by the stored amount, atomically. The decrement is always
// derived from the stored row, never from caller input.
func (r *FeeRepository) Void(ctx context.Context, id int64) (*models.FeeTransaction, error) {
	var txn models.FeeTransaction

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			SELECT id, student_id, amount, date, narration, created_at
			FROM fee_transactions
			WHERE id = $1
			FOR UPDATE`, id).Scan(
			&txn.ID,
			&txn.StudentID,
			&txn.Amount,
			&txn.Date,
			&txn.Narration,
			&txn.CreatedAt,
		)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrTransactionNotFound
			}
			return fmt.Errorf("error retrieving fee transaction: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM fee_transactions WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deleting fee transaction: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE students SET paid_fee = paid_fee - $1 WHERE id = $2`,
			txn.Amount, txn.StudentID); err != nil {
			return fmt.Errorf("error reversing paid fee: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

// HistoryByStudent retrieves a student's fee transactions newest first
func (r *FeeRepository) HistoryByStudent(ctx context.Context, studentID int64) ([]*models.FeeTransaction, error) {
	query := `
		SELECT id, student_id, amount, date, narration, created_at
		FROM fee_transactions
		WHERE student_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving fee history: %w", err)
	}
	defer rows.Close()

	var history []*models.FeeTransaction
	for rows.Next() {
		var txn models.FeeTransaction
		if err := rows.Scan(
			&txn.ID,
			&txn.StudentID,
			&txn.Amount,
			&txn.Date,
			&txn.Narration,
			&txn.CreatedAt,
		); err != nil {
			return nil, err
		}
		history = append(history, &txn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
