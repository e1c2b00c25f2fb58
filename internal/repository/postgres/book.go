package postgres

import (
	"context"
	"database/sql"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author, publication_year, type)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query, b.Title, b.Author, b.PublicationYear, b.Type).Scan(&b.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT id, title, author, publication_year, type FROM books WHERE id = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.PublicationYear, &b.Type)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET title=$1, author=$2, publication_year=$3, type=$4 WHERE id=$5`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, b.Title, b.Author, b.PublicationYear, b.Type, b.ID)
	return err
}

func (r *bookRepository) Search(ctx context.Context, title, author string, year *int32) ([]domain.Book, error) {
	query := `SELECT id, title, author, publication_year, type FROM books
	          WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
	            AND ($2 = '' OR author ILIKE '%' || $2 || '%')
	            AND ($3::int IS NULL OR publication_year = $3)`

	var yearArg interface{}
	if year != nil {
		yearArg = *year
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, title, author, yearArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.PublicationYear, &b.Type); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
