package postgres

import (
	"database/sql"

	"librarysystem-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.Transactor
	repository.UserRepository
	repository.BookRepository
	repository.BranchRepository
	repository.InventoryRepository
	repository.LoanRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		Transactor:          NewTransactor(db),
		UserRepository:      NewUserRepository(db),
		BookRepository:      NewBookRepository(db),
		BranchRepository:    NewBranchRepository(db),
		InventoryRepository: NewInventoryRepository(db),
		LoanRepository:      NewLoanRepository(db),
	}
}
