package services

import (
	"strings"

	"shelftrack/models"
)

// BookService handles business logic for books
type BookService struct {
	repo     BookRepository
	authors  AuthorRepository
	validate Validator
}

// NewBookService creates a new book service
func NewBookService(repo BookRepository, authors AuthorRepository, validate Validator) *BookService {
	return &BookService{
		repo:     repo,
		authors:  authors,
		validate: validate,
	}
}

// Add validates a new book and inserts it. The referenced author must
// already exist.
func (bs *BookService) Add(req models.CreateBookRequest) (*models.Book, error) {
	req.Title = strings.TrimSpace(req.Title)

	if err := bs.validate.Validate(req); err != nil {
		return nil, err
	}

	author, err := bs.authors.GetAuthor(req.AuthorID)
	if err != nil {
		return nil, &StorageError{Op: "add book", Err: err}
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	book := &models.Book{
		Title:    req.Title,
		AuthorID: req.AuthorID,
		Quantity: req.Quantity,
	}

	if _, err := bs.repo.CreateBook(book); err != nil {
		return nil, &StorageError{Op: "add book", Err: err}
	}

	return book, nil
}

// Get retrieves a book joined with its author details
func (bs *BookService) Get(bookID int64) (*models.BookDetail, error) {
	detail, err := bs.repo.GetBook(bookID)
	if err != nil {
		return nil, &StorageError{Op: "get book", Err: err}
	}
	if detail == nil {
		return nil, ErrBookNotFound
	}

	return detail, nil
}

// List retrieves all books joined with their author details
func (bs *BookService) List() ([]models.BookDetail, error) {
	details, err := bs.repo.ListBooks()
	if err != nil {
		return nil, &StorageError{Op: "list books", Err: err}
	}

	return details, nil
}

// ListByAuthor retrieves all books written by a single author
func (bs *BookService) ListByAuthor(authorID int64) ([]models.BookDetail, error) {
	author, err := bs.authors.GetAuthor(authorID)
	if err != nil {
		return nil, &StorageError{Op: "list books by author", Err: err}
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	details, err := bs.repo.ListBooksByAuthor(authorID)
	if err != nil {
		return nil, &StorageError{Op: "list books by author", Err: err}
	}

	return details, nil
}

// Update applies a partial update to an existing book. Fields left nil in
// the request keep their current value. A changed author reference must
// point at an existing author.
func (bs *BookService) Update(bookID int64, req models.UpdateBookRequest) (*models.Book, error) {
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}

	if err := bs.validate.Validate(req); err != nil {
		return nil, err
	}

	detail, err := bs.repo.GetBook(bookID)
	if err != nil {
		return nil, &StorageError{Op: "update book", Err: err}
	}
	if detail == nil {
		return nil, ErrBookNotFound
	}

	book := detail.Book
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.AuthorID != nil && *req.AuthorID != book.AuthorID {
		author, err := bs.authors.GetAuthor(*req.AuthorID)
		if err != nil {
			return nil, &StorageError{Op: "update book", Err: err}
		}
		if author == nil {
			return nil, ErrAuthorNotFound
		}
		book.AuthorID = *req.AuthorID
	}
	if req.Quantity != nil {
		book.Quantity = *req.Quantity
	}

	found, err := bs.repo.UpdateBook(&book)
	if err != nil {
		return nil, &StorageError{Op: "update book", Err: err}
	}
	if !found {
		return nil, ErrBookNotFound
	}

	return &book, nil
}

// Delete removes a book by ID
func (bs *BookService) Delete(bookID int64) error {
	found, err := bs.repo.DeleteBook(bookID)
	if err != nil {
		return &StorageError{Op: "delete book", Err: err}
	}
	if !found {
		return ErrBookNotFound
	}

	return nil
}
