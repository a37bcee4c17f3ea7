package dto

// DashboardStats is the aggregate returned by GET /api/stats.
// TotalFees is the sum of positive outstanding balances across all
// students, where a student's balance is their course fee minus the
// paid-fee total.
type DashboardStats struct {
	TotalStudents int64   `json:"totalStudents"`
	TotalCerts    int64   `json:"totalCerts"`
	TotalFees     float64 `json:"totalFees"`
}
