package service

import (
	"context"
	"database/sql"
	"errors"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/logger"
	"librarysystem-backend/internal/repository"
)

type bookService struct {
	bookRepo   repository.BookRepository
	branchRepo repository.BranchRepository
	invRepo    repository.InventoryRepository
}

func NewBookService(bookRepo repository.BookRepository, branchRepo repository.BranchRepository, invRepo repository.InventoryRepository) BookService {
	return &bookService{
		bookRepo:   bookRepo,
		branchRepo: branchRepo,
		invRepo:    invRepo,
	}
}

func (s *bookService) AddBook(ctx context.Context, book *domain.Book) error {
	if book.Title == "" {
		return domain.InvalidState("book title is required")
	}
	if book.Type == "" {
		book.Type = domain.BookTypeBook
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return domain.StorageFailure("failed to create book", err)
	}
	logger.Info("book added", "book_id", book.ID, "title", book.Title)
	return nil
}

func (s *bookService) UpdateBook(ctx context.Context, id int32, book *domain.Book) (*domain.Book, error) {
	existing, err := s.bookRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("book not found")
	}
	if err != nil {
		return nil, domain.StorageFailure("failed to load book", err)
	}

	existing.Title = book.Title
	existing.Author = book.Author
	existing.PublicationYear = book.PublicationYear
	existing.Type = book.Type
	if err := s.bookRepo.Update(ctx, existing); err != nil {
		return nil, domain.StorageFailure("failed to update book", err)
	}
	return existing, nil
}

func (s *bookService) AddInventory(ctx context.Context, bookID, branchID, total, available int32) (*domain.InventoryEntry, error) {
	if err := validateQuantities(total, available); err != nil {
		return nil, err
	}

	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("book does not exist")
		}
		return nil, domain.StorageFailure("failed to load book", err)
	}
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("library branch does not exist")
		}
		return nil, domain.StorageFailure("failed to load branch", err)
	}

	existing, err := s.invRepo.GetByBookAndBranch(ctx, bookID, branchID)
	if err != nil {
		return nil, domain.StorageFailure("failed to load inventory entry", err)
	}
	if existing != nil {
		return nil, domain.Conflict("inventory entry for this book and branch already exists")
	}

	entry := &domain.InventoryEntry{
		BookID:            bookID,
		BranchID:          branchID,
		TotalQuantity:     total,
		AvailableQuantity: available,
	}
	if err := s.invRepo.Create(ctx, entry); err != nil {
		return nil, domain.StorageFailure("failed to create inventory entry", err)
	}
	logger.Info("inventory entry created", "book_id", bookID, "branch_id", branchID, "total", total, "available", available)
	return entry, nil
}

func (s *bookService) UpdateInventory(ctx context.Context, bookID, branchID, total, available int32) (*domain.InventoryEntry, error) {
	if err := validateQuantities(total, available); err != nil {
		return nil, err
	}

	entry, err := s.invRepo.GetByBookAndBranch(ctx, bookID, branchID)
	if err != nil {
		return nil, domain.StorageFailure("failed to load inventory entry", err)
	}
	if entry == nil {
		return nil, domain.NotFound("inventory entry not found")
	}

	entry.TotalQuantity = total
	entry.AvailableQuantity = available
	if err := s.invRepo.UpdateQuantities(ctx, entry); err != nil {
		return nil, domain.StorageFailure("failed to update inventory entry", err)
	}
	return entry, nil
}

func (s *bookService) SearchBooks(ctx context.Context, title, author string, year *int32) ([]domain.BookWithStock, error) {
	books, err := s.bookRepo.Search(ctx, title, author, year)
	if err != nil {
		return nil, domain.StorageFailure("failed to search books", err)
	}

	results := make([]domain.BookWithStock, 0, len(books))
	for _, book := range books {
		entries, err := s.invRepo.ListByBook(ctx, book.ID)
		if err != nil {
			return nil, domain.StorageFailure("failed to load inventory entries", err)
		}

		locations := make([]domain.BranchStock, 0, len(entries))
		for _, entry := range entries {
			branch, err := s.branchRepo.GetByID(ctx, entry.BranchID)
			if err != nil {
				return nil, domain.StorageFailure("failed to load branch", err)
			}
			locations = append(locations, domain.BranchStock{
				BranchName:        branch.Name,
				TotalQuantity:     entry.TotalQuantity,
				AvailableQuantity: entry.AvailableQuantity,
			})
		}
		results = append(results, domain.BookWithStock{Book: book, Locations: locations})
	}
	return results, nil
}

func validateQuantities(total, available int32) error {
	if total < 0 || available < 0 {
		return domain.InvalidState("quantities must not be negative")
	}
	if available > total {
		return domain.InvalidState("available quantity cannot exceed total quantity")
	}
	return nil
}
