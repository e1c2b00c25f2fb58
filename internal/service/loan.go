package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"librarysystem-backend/internal/config"
	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/logger"
	"librarysystem-backend/internal/repository"
)

type loanService struct {
	loanRepo   repository.LoanRepository
	userRepo   repository.UserRepository
	bookRepo   repository.BookRepository
	branchRepo repository.BranchRepository
	invRepo    repository.InventoryRepository
	tx         repository.Transactor
	notifier   DueSoonNotifier
	cfg        *config.LibraryConfig
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
	branchRepo repository.BranchRepository,
	invRepo repository.InventoryRepository,
	tx repository.Transactor,
	notifier DueSoonNotifier,
	cfg *config.LibraryConfig,
) LoanService {
	return &loanService{
		loanRepo:   loanRepo,
		userRepo:   userRepo,
		bookRepo:   bookRepo,
		branchRepo: branchRepo,
		invRepo:    invRepo,
		tx:         tx,
		notifier:   notifier,
		cfg:        cfg,
	}
}

// today truncates to the calendar day; all loan dates are day-granular.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BorrowBook validates the borrow rules in order, then creates the loan and
// decrements branch availability as one atomic unit.
func (s *loanService) BorrowBook(ctx context.Context, userID, bookID, branchID int32) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.StorageFailure("failed to load user", err)
	}
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.StorageFailure("failed to load book", err)
	}
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.StorageFailure("failed to load branch", err)
	}
	if user == nil || book == nil || branch == nil {
		return domain.NotFound("user, book, or library branch does not exist")
	}

	entry, err := s.invRepo.GetByBookAndBranch(ctx, bookID, branchID)
	if err != nil {
		return domain.StorageFailure("failed to load inventory entry", err)
	}
	if entry == nil || entry.AvailableQuantity <= 0 {
		return domain.Conflict("insufficient available quantity in this branch")
	}

	overdue, err := s.loanRepo.CountOverdueByUser(ctx, userID, today())
	if err != nil {
		return domain.StorageFailure("failed to count overdue loans", err)
	}
	if overdue > 0 {
		return domain.Conflict("you have overdue books, please return them before borrowing new ones")
	}

	borrowed, err := s.loanRepo.CountBorrowedByUserAndType(ctx, userID, book.Type)
	if err != nil {
		return domain.StorageFailure("failed to count borrowed loans", err)
	}
	limit := s.borrowLimitFor(book.Type)
	if borrowed >= int64(limit) {
		return domain.Conflict(fmt.Sprintf("borrowing limit reached: %s max %d", book.Type, limit))
	}

	now := today()
	loan := &domain.Loan{
		UserID:     userID,
		BookID:     bookID,
		BranchID:   branchID,
		BorrowDate: now,
		DueDate:    now.AddDate(0, s.cfg.LoanDurationMonths, 0),
		Status:     domain.LoanStatusBorrowed,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.loanRepo.Create(ctx, loan); err != nil {
			return domain.StorageFailure("failed to create loan", err)
		}
		changed, err := s.invRepo.AdjustAvailable(ctx, bookID, branchID, -1)
		if err != nil {
			return domain.StorageFailure("failed to decrement availability", err)
		}
		if !changed {
			// Lost a race for the last copy; roll the loan back too.
			return domain.Conflict("insufficient available quantity in this branch")
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("book borrowed", "loan_id", loan.ID, "user_id", userID, "book_id", bookID, "branch_id", branchID, "due_date", loan.DueDate.Format("2006-01-02"))
	return nil
}

// ReturnBook finalizes a loan and restores branch availability as one atomic
// unit. A loan can only be returned once.
func (s *loanService) ReturnBook(ctx context.Context, loanID int32) error {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("loan record does not exist or already returned")
	}
	if err != nil {
		return domain.StorageFailure("failed to load loan", err)
	}
	if loan.Status != domain.LoanStatusBorrowed {
		return domain.InvalidState("loan record does not exist or already returned")
	}

	now := today()
	loan.ReturnDate = &now
	if loan.DueDate.Before(now) {
		loan.Status = domain.LoanStatusOverdue
	} else {
		loan.Status = domain.LoanStatusReturned
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.loanRepo.Update(ctx, loan); err != nil {
			return domain.StorageFailure("failed to update loan", err)
		}
		// A missing entry is tolerated; inventory may have been restructured
		// since the loan was issued.
		if _, err := s.invRepo.AdjustAvailable(ctx, loan.BookID, loan.BranchID, 1); err != nil {
			return domain.StorageFailure("failed to increment availability", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("book returned", "loan_id", loan.ID, "status", loan.Status)
	return nil
}

// NotifyDueSoon finds loans due in exactly the configured number of days and
// fans a notice out per loan. Read-only on the data model.
func (s *loanService) NotifyDueSoon(ctx context.Context) (int, error) {
	days := s.cfg.NotificationDays
	dueDate := today().AddDate(0, 0, days)

	loans, err := s.loanRepo.FindDueOn(ctx, dueDate)
	if err != nil {
		return 0, domain.StorageFailure("failed to find due-soon loans", err)
	}

	count := 0
	for _, loan := range loans {
		user, err := s.userRepo.GetByID(ctx, loan.UserID)
		if err != nil {
			logger.Error("due-soon notice skipped, user lookup failed", "loan_id", loan.ID, "user_id", loan.UserID, "error", err)
			continue
		}
		book, err := s.bookRepo.GetByID(ctx, loan.BookID)
		if err != nil {
			logger.Error("due-soon notice skipped, book lookup failed", "loan_id", loan.ID, "book_id", loan.BookID, "error", err)
			continue
		}
		if err := s.notifier.SendDueSoonNotice(ctx, user, book.Title, days); err != nil {
			logger.Error("failed to send due-soon notice", "loan_id", loan.ID, "user_id", user.ID, "error", err)
			continue
		}
		count++
	}

	logger.Info("due-soon notifications sent", "count", count, "due_date", dueDate.Format("2006-01-02"))
	return count, nil
}

func (s *loanService) borrowLimitFor(bookType string) int {
	if bookType == domain.BookTypeBook {
		return s.cfg.BorrowLimitBook
	}
	return s.cfg.BorrowLimitOther
}
