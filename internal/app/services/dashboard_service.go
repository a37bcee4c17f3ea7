package services

import (
	"context"

	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
)

// DashboardStore is the persistence contract for the dashboard aggregate.
type DashboardStore interface {
	Counts(ctx context.Context) (students int64, certificates int64, err error)
	ListStudentBalances(ctx context.Context) ([]models.StudentBalance, error)
}

// DashboardService computes the summary shown on the admin dashboard.
type DashboardService struct {
	store DashboardStore
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{
		store: store,
	}
}

// Stats returns total students, total certificates, and the pending-fee
// total. A student's pending balance is the fee of their course minus
// their paid-fee total; only positive balances contribute, and students
// whose course name resolves to no catalog entry contribute nothing.
func (s *DashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	students, certs, err := s.store.Counts(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := s.store.ListStudentBalances(ctx)
	if err != nil {
		return nil, err
	}

	var pending float64
	for _, b := range balances {
		if b.CourseFee == nil {
			continue
		}
		if due := *b.CourseFee - b.PaidFee; due > 0 {
			pending += due
		}
	}

	return &dto.DashboardStats{
		TotalStudents: students,
		TotalCerts:    certs,
		TotalFees:     pending,
	}, nil
}
