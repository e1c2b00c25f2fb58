package domain

import "time"

type LoanStatus string

const (
	LoanStatusBorrowed LoanStatus = "Borrowed"
	LoanStatusReturned LoanStatus = "Returned"
	LoanStatusOverdue  LoanStatus = "Overdue"
)

type Loan struct {
	ID         int32      `json:"id"`
	UserID     int32      `json:"user_id"`
	BookID     int32      `json:"book_id"`
	BranchID   int32      `json:"branch_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Status     LoanStatus `json:"status"`
}
