package postgres

import (
	"context"
	"database/sql"
	"time"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/repository"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (user_id, book_id, branch_id, borrow_date, due_date, return_date, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query,
		l.UserID, l.BookID, l.BranchID, l.BorrowDate, l.DueDate, l.ReturnDate, l.Status).Scan(&l.ID)
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	l := &domain.Loan{}
	query := `SELECT id, user_id, book_id, branch_id, borrow_date, due_date, return_date, status
	          FROM loans WHERE id = $1`
	var returnDate sql.NullTime
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&l.ID, &l.UserID, &l.BookID, &l.BranchID, &l.BorrowDate, &l.DueDate, &returnDate, &l.Status)
	if err != nil {
		return nil, err
	}
	if returnDate.Valid {
		l.ReturnDate = &returnDate.Time
	}
	return l, nil
}

func (r *loanRepository) Update(ctx context.Context, l *domain.Loan) error {
	query := `UPDATE loans SET return_date=$1, status=$2 WHERE id=$3`
	result, err := conn(ctx, r.db).ExecContext(ctx, query, l.ReturnDate, l.Status, l.ID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *loanRepository) CountOverdueByUser(ctx context.Context, userID int32, today time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM loans
	          WHERE user_id = $1 AND status = $2 AND due_date < $3 AND return_date IS NULL`
	var count int64
	err := conn(ctx, r.db).QueryRowContext(ctx, query, userID, domain.LoanStatusBorrowed, today).Scan(&count)
	return count, err
}

func (r *loanRepository) CountBorrowedByUserAndType(ctx context.Context, userID int32, bookType string) (int64, error) {
	query := `SELECT COUNT(*) FROM loans l
	          JOIN books b ON l.book_id = b.id
	          WHERE l.user_id = $1 AND l.status = $2 AND b.type = $3`
	var count int64
	err := conn(ctx, r.db).QueryRowContext(ctx, query, userID, domain.LoanStatusBorrowed, bookType).Scan(&count)
	return count, err
}

func (r *loanRepository) FindDueOn(ctx context.Context, dueDate time.Time) ([]domain.Loan, error) {
	query := `SELECT id, user_id, book_id, branch_id, borrow_date, due_date, return_date, status
	          FROM loans WHERE status = $1 AND due_date = $2`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, domain.LoanStatusBorrowed, dueDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		var returnDate sql.NullTime
		if err := rows.Scan(&l.ID, &l.UserID, &l.BookID, &l.BranchID, &l.BorrowDate, &l.DueDate, &returnDate, &l.Status); err != nil {
			return nil, err
		}
		if returnDate.Valid {
			l.ReturnDate = &returnDate.Time
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
