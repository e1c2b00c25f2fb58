package postgres

import (
	"context"
	"database/sql"
	"errors"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/repository"
)

type inventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, e *domain.InventoryEntry) error {
	query := `INSERT INTO inventory_entries (book_id, branch_id, total_quantity, available_quantity)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query, e.BookID, e.BranchID, e.TotalQuantity, e.AvailableQuantity).Scan(&e.ID)
}

func (r *inventoryRepository) GetByBookAndBranch(ctx context.Context, bookID, branchID int32) (*domain.InventoryEntry, error) {
	e := &domain.InventoryEntry{}
	query := `SELECT id, book_id, branch_id, total_quantity, available_quantity
	          FROM inventory_entries WHERE book_id = $1 AND branch_id = $2`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, bookID, branchID).
		Scan(&e.ID, &e.BookID, &e.BranchID, &e.TotalQuantity, &e.AvailableQuantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *inventoryRepository) ListByBook(ctx context.Context, bookID int32) ([]domain.InventoryEntry, error) {
	query := `SELECT id, book_id, branch_id, total_quantity, available_quantity
	          FROM inventory_entries WHERE book_id = $1`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.ID, &e.BookID, &e.BranchID, &e.TotalQuantity, &e.AvailableQuantity); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *inventoryRepository) UpdateQuantities(ctx context.Context, e *domain.InventoryEntry) error {
	query := `UPDATE inventory_entries SET total_quantity=$1, available_quantity=$2
	          WHERE book_id=$3 AND branch_id=$4`
	result, err := conn(ctx, r.db).ExecContext(ctx, query, e.TotalQuantity, e.AvailableQuantity, e.BookID, e.BranchID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AdjustAvailable relies on the row-level guard so that a concurrent borrow of
// the last copy loses cleanly instead of driving availability negative.
func (r *inventoryRepository) AdjustAvailable(ctx context.Context, bookID, branchID, delta int32) (bool, error) {
	query := `UPDATE inventory_entries
	          SET available_quantity = available_quantity + $3
	          WHERE book_id = $1 AND branch_id = $2
	            AND available_quantity + $3 >= 0
	            AND available_quantity + $3 <= total_quantity`
	result, err := conn(ctx, r.db).ExecContext(ctx, query, bookID, branchID, delta)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
