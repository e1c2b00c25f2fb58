package postgres

import (
	"context"
	"database/sql"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/repository"
)

type branchRepository struct {
	db *sql.DB
}

func NewBranchRepository(db *sql.DB) repository.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, b *domain.Branch) error {
	query := `INSERT INTO branches (name) VALUES ($1) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query, b.Name).Scan(&b.ID)
}

func (r *branchRepository) GetByID(ctx context.Context, id int32) (*domain.Branch, error) {
	b := &domain.Branch{}
	query := `SELECT id, name FROM branches WHERE id = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *branchRepository) Update(ctx context.Context, b *domain.Branch) error {
	query := `UPDATE branches SET name=$1 WHERE id=$2`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, b.Name, b.ID)
	return err
}
