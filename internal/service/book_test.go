package service

import (
	"context"
	"database/sql"
	"testing"

	"librarysystem-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookService_AddInventory(t *testing.T) {
	ctx := context.Background()
	bookID, branchID := int32(2), int32(3)

	t.Run("Success", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		branchRepo := new(MockBranchRepo)
		invRepo := new(MockInventoryRepo)
		svc := NewBookService(bookRepo, branchRepo, invRepo)

		bookRepo.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID}, nil)
		branchRepo.On("GetByID", ctx, branchID).Return(&domain.Branch{ID: branchID}, nil)
		invRepo.On("GetByBookAndBranch", ctx, bookID, branchID).Return(nil, nil)
		invRepo.On("Create", ctx, mock.AnythingOfType("*domain.InventoryEntry")).Return(nil)

		entry, err := svc.AddInventory(ctx, bookID, branchID, 5, 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), entry.TotalQuantity)
		assert.Equal(t, int32(5), entry.AvailableQuantity)
	})

	t.Run("DuplicatePair", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		branchRepo := new(MockBranchRepo)
		invRepo := new(MockInventoryRepo)
		svc := NewBookService(bookRepo, branchRepo, invRepo)

		bookRepo.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID}, nil)
		branchRepo.On("GetByID", ctx, branchID).Return(&domain.Branch{ID: branchID}, nil)
		invRepo.On("GetByBookAndBranch", ctx, bookID, branchID).
			Return(&domain.InventoryEntry{ID: 1, BookID: bookID, BranchID: branchID}, nil)

		_, err := svc.AddInventory(ctx, bookID, branchID, 5, 5)
		assert.True(t, domain.IsConflict(err))
		assert.EqualError(t, err, "inventory entry for this book and branch already exists")
		invRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("BookMissing", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo, new(MockBranchRepo), new(MockInventoryRepo))

		bookRepo.On("GetByID", ctx, bookID).Return(nil, sql.ErrNoRows)

		_, err := svc.AddInventory(ctx, bookID, branchID, 5, 5)
		assert.True(t, domain.IsNotFound(err))
		assert.EqualError(t, err, "book does not exist")
	})

	t.Run("AvailableExceedsTotal", func(t *testing.T) {
		svc := NewBookService(new(MockBookRepo), new(MockBranchRepo), new(MockInventoryRepo))

		_, err := svc.AddInventory(ctx, bookID, branchID, 3, 4)
		assert.True(t, domain.IsInvalidState(err))
	})

	t.Run("NegativeQuantities", func(t *testing.T) {
		svc := NewBookService(new(MockBookRepo), new(MockBranchRepo), new(MockInventoryRepo))

		_, err := svc.AddInventory(ctx, bookID, branchID, -1, 0)
		assert.True(t, domain.IsInvalidState(err))
	})
}

func TestBookService_UpdateInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		invRepo := new(MockInventoryRepo)
		svc := NewBookService(new(MockBookRepo), new(MockBranchRepo), invRepo)

		invRepo.On("GetByBookAndBranch", ctx, int32(2), int32(3)).
			Return(&domain.InventoryEntry{ID: 1, BookID: 2, BranchID: 3, TotalQuantity: 5, AvailableQuantity: 5}, nil)
		invRepo.On("UpdateQuantities", ctx, mock.AnythingOfType("*domain.InventoryEntry")).Return(nil)

		entry, err := svc.UpdateInventory(ctx, 2, 3, 8, 6)
		assert.NoError(t, err)
		assert.Equal(t, int32(8), entry.TotalQuantity)
		assert.Equal(t, int32(6), entry.AvailableQuantity)
	})

	t.Run("EntryMissing", func(t *testing.T) {
		invRepo := new(MockInventoryRepo)
		svc := NewBookService(new(MockBookRepo), new(MockBranchRepo), invRepo)

		invRepo.On("GetByBookAndBranch", ctx, int32(2), int32(3)).Return(nil, nil)

		_, err := svc.UpdateInventory(ctx, 2, 3, 8, 6)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestBookService_SearchBooks(t *testing.T) {
	ctx := context.Background()

	bookRepo := new(MockBookRepo)
	branchRepo := new(MockBranchRepo)
	invRepo := new(MockInventoryRepo)
	svc := NewBookService(bookRepo, branchRepo, invRepo)

	books := []domain.Book{{ID: 1, Title: "Dune", Author: "Herbert", Type: domain.BookTypeBook}}
	bookRepo.On("Search", ctx, "Dune", "", (*int32)(nil)).Return(books, nil)
	invRepo.On("ListByBook", ctx, int32(1)).Return([]domain.InventoryEntry{
		{BookID: 1, BranchID: 3, TotalQuantity: 4, AvailableQuantity: 2},
		{BookID: 1, BranchID: 4, TotalQuantity: 1, AvailableQuantity: 0},
	}, nil)
	branchRepo.On("GetByID", ctx, int32(3)).Return(&domain.Branch{ID: 3, Name: "Central"}, nil)
	branchRepo.On("GetByID", ctx, int32(4)).Return(&domain.Branch{ID: 4, Name: "East"}, nil)

	results, err := svc.SearchBooks(ctx, "Dune", "", nil)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Dune", results[0].Book.Title)
	assert.Len(t, results[0].Locations, 2)
	assert.Equal(t, "Central", results[0].Locations[0].BranchName)
	assert.Equal(t, int32(2), results[0].Locations[0].AvailableQuantity)
	assert.Equal(t, "East", results[0].Locations[1].BranchName)
}

func TestBookService_AddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsTypeToBook", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo, new(MockBranchRepo), new(MockInventoryRepo))
		bookRepo.On("Create", ctx, mock.AnythingOfType("*domain.Book")).Return(nil)

		book := &domain.Book{Title: "Dune", Author: "Herbert"}
		assert.NoError(t, svc.AddBook(ctx, book))
		assert.Equal(t, domain.BookTypeBook, book.Type)
	})

	t.Run("TitleRequired", func(t *testing.T) {
		svc := NewBookService(new(MockBookRepo), new(MockBranchRepo), new(MockInventoryRepo))
		err := svc.AddBook(ctx, &domain.Book{Author: "Herbert"})
		assert.True(t, domain.IsInvalidState(err))
	})
}
