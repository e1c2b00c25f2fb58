package service

import (
	"context"
	"time"

	"librarysystem-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) Search(ctx context.Context, title, author string, year *int32) ([]domain.Book, error) {
	args := m.Called(ctx, title, author, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}

// MockBranchRepo
type MockBranchRepo struct {
	mock.Mock
}

func (m *MockBranchRepo) Create(ctx context.Context, branch *domain.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}
func (m *MockBranchRepo) GetByID(ctx context.Context, id int32) (*domain.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}
func (m *MockBranchRepo) Update(ctx context.Context, branch *domain.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) Create(ctx context.Context, entry *domain.InventoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockInventoryRepo) GetByBookAndBranch(ctx context.Context, bookID, branchID int32) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, bookID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}
func (m *MockInventoryRepo) ListByBook(ctx context.Context, bookID int32) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}
func (m *MockInventoryRepo) UpdateQuantities(ctx context.Context, entry *domain.InventoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockInventoryRepo) AdjustAvailable(ctx context.Context, bookID, branchID, delta int32) (bool, error) {
	args := m.Called(ctx, bookID, branchID, delta)
	return args.Bool(0), args.Error(1)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) CountOverdueByUser(ctx context.Context, userID int32, today time.Time) (int64, error) {
	args := m.Called(ctx, userID, today)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLoanRepo) CountBorrowedByUserAndType(ctx context.Context, userID int32, bookType string) (int64, error) {
	args := m.Called(ctx, userID, bookType)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLoanRepo) FindDueOn(ctx context.Context, dueDate time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, dueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendDueSoonNotice(ctx context.Context, user *domain.User, bookTitle string, daysRemaining int) error {
	args := m.Called(ctx, user, bookTitle, daysRemaining)
	return args.Error(0)
}

// stubVerifier answers the librarian check without a network call.
type stubVerifier struct {
	ok  bool
	err error
}

func (v *stubVerifier) Verify(ctx context.Context) (bool, error) {
	return v.ok, v.err
}

// stubTransactor runs fn directly; the real transactor is covered by the
// postgres tests. beginErr short-circuits without invoking fn.
type stubTransactor struct {
	beginErr error
	calls    int
}

func (t *stubTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if t.beginErr != nil {
		return t.beginErr
	}
	return fn(ctx)
}
