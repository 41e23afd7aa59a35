package database

import (
	"database/sql"

	"shelftrack/models"
)

// ==================== BOOK OPERATIONS ====================

// CreateBook inserts a new book and returns its allocated ID.
func (r *Repository) CreateBook(book *models.Book) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO books (title, author_id, quantity)
		VALUES (?, ?, ?)
	`, book.Title, book.AuthorID, book.Quantity)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	book.ID = id

	return id, nil
}

// GetBook retrieves a book joined with its author's name and country.
// Returns nil when no book has the given ID.
func (r *Repository) GetBook(bookID int64) (*models.BookDetail, error) {
	var detail models.BookDetail

	err := r.db.QueryRow(`
		SELECT b.book_id, b.title, b.author_id, b.quantity, a.name, a.country
		FROM books b
		INNER JOIN authors a ON b.author_id = a.author_id
		WHERE b.book_id = ?
	`, bookID).Scan(
		&detail.ID, &detail.Title, &detail.AuthorID, &detail.Quantity,
		&detail.AuthorName, &detail.AuthorCountry,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

// ListBooks retrieves all books joined with their authors.
// Each call re-executes the join, so the result always reflects the
// current table contents.
func (r *Repository) ListBooks() ([]models.BookDetail, error) {
	rows, err := r.db.Query(`
		SELECT b.book_id, b.title, b.author_id, b.quantity, a.name, a.country
		FROM books b
		INNER JOIN authors a ON b.author_id = a.author_id
		ORDER BY b.book_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookDetails(rows)
}

// ListBooksByAuthor retrieves all books written by a single author.
func (r *Repository) ListBooksByAuthor(authorID int64) ([]models.BookDetail, error) {
	rows, err := r.db.Query(`
		SELECT b.book_id, b.title, b.author_id, b.quantity, a.name, a.country
		FROM books b
		INNER JOIN authors a ON b.author_id = a.author_id
		WHERE b.author_id = ?
		ORDER BY b.book_id ASC
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookDetails(rows)
}

func scanBookDetails(rows *sql.Rows) ([]models.BookDetail, error) {
	// Initialize with empty slice to avoid returning nil
	details := make([]models.BookDetail, 0)
	for rows.Next() {
		var detail models.BookDetail
		if err := rows.Scan(
			&detail.ID, &detail.Title, &detail.AuthorID, &detail.Quantity,
			&detail.AuthorName, &detail.AuthorCountry,
		); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, rows.Err()
}

// UpdateBook rewrites all mutable columns of a book.
// Returns false when no book has the given ID.
func (r *Repository) UpdateBook(book *models.Book) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE books SET
			title = ?,
			author_id = ?,
			quantity = ?
		WHERE book_id = ?
	`, book.Title, book.AuthorID, book.Quantity, book.ID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// DeleteBook removes a book. Returns false when no book has the given ID.
func (r *Repository) DeleteBook(bookID int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM books WHERE book_id = ?", bookID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
