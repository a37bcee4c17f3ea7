package dto

// CollectFeeRequest represents a fee payment to record against a student.
// Amount is a pointer so that a missing field is distinguishable from a
// zero payment.
type CollectFeeRequest struct {
	StudentID int64    `json:"studentId" binding:"required"`
	Amount    *float64 `json:"amount" binding:"required"`
	Date      string   `json:"date"`
	Narration string   `json:"narration"`
}
