package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillpoint/institute-backend/internal/app/models"
)

// DashboardRepository provides the read models behind the dashboard
// aggregate.
type DashboardRepository struct {
	db *pgxpool.Pool
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{
		db: db,
	}
}

// Counts returns the total number of students and certificates
func (r *DashboardRepository) Counts(ctx context.Context) (students int64, certificates int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM certificates)`).Scan(&students, &certificates)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting dashboard totals: %w", err)
	}
	return students, certificates, nil
}

// ListStudentBalances returns, for every student, the paid-fee total and
// the fee of the student's course. Course resolution joins by name the
// same way the course-name lookup endpoint does: case-insensitive after
// trimming. CourseFee is nil when no catalog entry matches.
func (r *DashboardRepository) ListStudentBalances(ctx context.Context) ([]models.StudentBalance, error) {
	query := `
		SELECT s.paid_fee, c.fee
		FROM students s
		LEFT JOIN courses c ON LOWER(TRIM(c.name)) = LOWER(TRIM(s.course_name))
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing student balances: %w", err)
	}
	defer rows.Close()

	var balances []models.StudentBalance
	for rows.Next() {
		var b models.StudentBalance
		if err := rows.Scan(&b.PaidFee, &b.CourseFee); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return balances, nil
}
