package database

import (
	"database/sql"

	"shelftrack/models"
)

// ==================== AUTHOR OPERATIONS ====================

// CreateAuthor inserts a new author and returns its allocated ID.
func (r *Repository) CreateAuthor(author *models.Author) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO authors (name, country)
		VALUES (?, ?)
	`, author.Name, author.Country)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	author.ID = id

	return id, nil
}

// GetAuthor retrieves a single author. Returns nil when no author has the
// given ID.
func (r *Repository) GetAuthor(authorID int64) (*models.Author, error) {
	var author models.Author

	err := r.db.QueryRow(`
		SELECT author_id, name, country
		FROM authors
		WHERE author_id = ?
	`, authorID).Scan(&author.ID, &author.Name, &author.Country)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &author, nil
}

// ListAuthors retrieves all authors ordered by ID.
func (r *Repository) ListAuthors() ([]models.Author, error) {
	rows, err := r.db.Query(`
		SELECT author_id, name, country
		FROM authors
		ORDER BY author_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	authors := make([]models.Author, 0)
	for rows.Next() {
		var author models.Author
		if err := rows.Scan(&author.ID, &author.Name, &author.Country); err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}

	return authors, rows.Err()
}

// UpdateAuthor rewrites an author's name and country.
// Returns false when no author has the given ID.
func (r *Repository) UpdateAuthor(author *models.Author) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE authors SET
			name = ?,
			country = ?
		WHERE author_id = ?
	`, author.Name, author.Country, author.ID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// DeleteAuthor removes an author. Returns false when no author has the
// given ID. Callers must check CountBooksByAuthor first; the foreign key
// on books rejects the delete otherwise.
func (r *Repository) DeleteAuthor(authorID int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM authors WHERE author_id = ?", authorID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// CountBooksByAuthor returns how many books reference an author.
func (r *Repository) CountBooksByAuthor(authorID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM books WHERE author_id = ?
	`, authorID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
