package models

import "time"

// FeeTransaction is a single ledger entry for a student's fee account.
// Entries are immutable once created; the only allowed mutation is
// deletion, which reverses the entry's effect on Student.PaidFee.
type FeeTransaction struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Amount    float64   `json:"amount" db:"amount"`
	Date      string    `json:"date" db:"date"` // Free-text date as written on the receipt
	Narration string    `json:"narration" db:"narration"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
