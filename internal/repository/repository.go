package repository

import (
	"context"
	"time"

	"librarysystem-backend/internal/domain"
)

// Transactor runs a sequence of repository mutations as one atomic unit.
// Repositories invoked inside fn join the same database transaction; if fn
// returns an error the whole unit rolls back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
	Delete(ctx context.Context, id int32) error
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Search(ctx context.Context, title, author string, year *int32) ([]domain.Book, error)
}

type BranchRepository interface {
	Create(ctx context.Context, branch *domain.Branch) error
	GetByID(ctx context.Context, id int32) (*domain.Branch, error)
	Update(ctx context.Context, branch *domain.Branch) error
}

// InventoryRepository holds no policy; quantity rules live in the services.
type InventoryRepository interface {
	Create(ctx context.Context, entry *domain.InventoryEntry) error
	// GetByBookAndBranch returns (nil, nil) when no entry exists for the pair.
	GetByBookAndBranch(ctx context.Context, bookID, branchID int32) (*domain.InventoryEntry, error)
	ListByBook(ctx context.Context, bookID int32) ([]domain.InventoryEntry, error)
	UpdateQuantities(ctx context.Context, entry *domain.InventoryEntry) error
	// AdjustAvailable atomically adds delta to available_quantity, refusing to
	// take it below zero or above total_quantity. It reports whether a row
	// was changed.
	AdjustAvailable(ctx context.Context, bookID, branchID, delta int32) (bool, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error
	CountOverdueByUser(ctx context.Context, userID int32, today time.Time) (int64, error)
	CountBorrowedByUserAndType(ctx context.Context, userID int32, bookType string) (int64, error)
	FindDueOn(ctx context.Context, dueDate time.Time) ([]domain.Loan, error)
}
