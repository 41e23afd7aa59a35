package services

import "shelftrack/models"

// BookRepository defines the interface for book data access
type BookRepository interface {
	CreateBook(book *models.Book) (int64, error)
	GetBook(bookID int64) (*models.BookDetail, error)
	ListBooks() ([]models.BookDetail, error)
	ListBooksByAuthor(authorID int64) ([]models.BookDetail, error)
	UpdateBook(book *models.Book) (bool, error)
	DeleteBook(bookID int64) (bool, error)
}

// AuthorRepository defines the interface for author data access
type AuthorRepository interface {
	CreateAuthor(author *models.Author) (int64, error)
	GetAuthor(authorID int64) (*models.Author, error)
	ListAuthors() ([]models.Author, error)
	UpdateAuthor(author *models.Author) (bool, error)
	DeleteAuthor(authorID int64) (bool, error)
	CountBooksByAuthor(authorID int64) (int, error)
}

// Validator checks request structs before any mutation
type Validator interface {
	Validate(i interface{}) error
}
