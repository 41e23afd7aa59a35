package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Authors table
		`CREATE TABLE IF NOT EXISTS authors (
			author_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT ''
		)`,

		// Books table
		`CREATE TABLE IF NOT EXISTS books (
			book_id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			author_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			FOREIGN KEY (author_id) REFERENCES authors(author_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_books_author ON books(author_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Seed inserts the stock catalogue the store ships with.
// Uses INSERT OR IGNORE so repeated runs are no-ops.
func (db *DB) Seed() error {
	authors := []struct {
		id      int64
		name    string
		country string
	}{
		{1290, "Charles Dickens", "England"},
		{8937, "J.K Rowling", "England"},
		{2356, "C.S Lewis", "Ireland"},
		{6380, "J.R.R Tolkien", "South Africa"},
		{5620, "Lewis Carroll", "England"},
	}

	books := []struct {
		id       int64
		title    string
		authorID int64
		quantity int
	}{
		{3001, "A Tale of Two Cities", 1290, 30},
		{3002, "Harry Potter and the Philosopher's Stone", 8937, 40},
		{3003, "The Lion, the Witch and the Wardrobe", 2356, 25},
		{3004, "The Lord of the Rings", 6380, 37},
		{3005, "Alice's Adventures in Wonderland", 5620, 12},
	}

	for _, a := range authors {
		if _, err := db.Exec(`
			INSERT OR IGNORE INTO authors (author_id, name, country)
			VALUES (?, ?, ?)
		`, a.id, a.name, a.country); err != nil {
			return fmt.Errorf("seeding authors failed: %w", err)
		}
	}

	for _, b := range books {
		if _, err := db.Exec(`
			INSERT OR IGNORE INTO books (book_id, title, author_id, quantity)
			VALUES (?, ?, ?, ?)
		`, b.id, b.title, b.authorID, b.quantity); err != nil {
			return fmt.Errorf("seeding books failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// IsConstraintViolation reports whether err is a SQLite constraint failure
// (primary key, foreign key, or CHECK).
func IsConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
