package service

import (
	"context"

	"librarysystem-backend/internal/domain"
)

type UserService interface {
	Register(ctx context.Context, username, password, roleLabel, email string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (access, refresh string, err error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int32, newPassword string) error
	DeleteUser(ctx context.Context, id int32) error
}

type BookService interface {
	AddBook(ctx context.Context, book *domain.Book) error
	UpdateBook(ctx context.Context, id int32, book *domain.Book) (*domain.Book, error)
	AddInventory(ctx context.Context, bookID, branchID, total, available int32) (*domain.InventoryEntry, error)
	UpdateInventory(ctx context.Context, bookID, branchID, total, available int32) (*domain.InventoryEntry, error)
	SearchBooks(ctx context.Context, title, author string, year *int32) ([]domain.BookWithStock, error)
}

type BranchService interface {
	AddBranch(ctx context.Context, branch *domain.Branch) error
	UpdateBranch(ctx context.Context, id int32, name string) (*domain.Branch, error)
	GetBranch(ctx context.Context, id int32) (*domain.Branch, error)
}

type LoanService interface {
	BorrowBook(ctx context.Context, userID, bookID, branchID int32) error
	ReturnBook(ctx context.Context, loanID int32) error
	NotifyDueSoon(ctx context.Context) (int, error)
}

// LibrarianVerifier is the external credential check required when
// registering a librarian account.
type LibrarianVerifier interface {
	Verify(ctx context.Context) (bool, error)
}

// DueSoonNotifier is the sink the loan engine fans due-soon notices out to.
type DueSoonNotifier interface {
	SendDueSoonNotice(ctx context.Context, user *domain.User, bookTitle string, daysRemaining int) error
}
