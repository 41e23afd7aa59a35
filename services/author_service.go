package services

import (
	"strings"

	"shelftrack/models"
)

// AuthorService handles business logic for authors
type AuthorService struct {
	repo     AuthorRepository
	validate Validator
}

// NewAuthorService creates a new author service
func NewAuthorService(repo AuthorRepository, validate Validator) *AuthorService {
	return &AuthorService{
		repo:     repo,
		validate: validate,
	}
}

// Add validates a new author and inserts it
func (as *AuthorService) Add(req models.CreateAuthorRequest) (*models.Author, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Country = strings.TrimSpace(req.Country)

	if err := as.validate.Validate(req); err != nil {
		return nil, err
	}

	author := &models.Author{
		Name:    req.Name,
		Country: req.Country,
	}

	if _, err := as.repo.CreateAuthor(author); err != nil {
		return nil, &StorageError{Op: "add author", Err: err}
	}

	return author, nil
}

// Get retrieves a single author by ID
func (as *AuthorService) Get(authorID int64) (*models.Author, error) {
	author, err := as.repo.GetAuthor(authorID)
	if err != nil {
		return nil, &StorageError{Op: "get author", Err: err}
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	return author, nil
}

// List retrieves all authors
func (as *AuthorService) List() ([]models.Author, error) {
	authors, err := as.repo.ListAuthors()
	if err != nil {
		return nil, &StorageError{Op: "list authors", Err: err}
	}

	return authors, nil
}

// Update applies a partial update to an existing author
func (as *AuthorService) Update(authorID int64, req models.UpdateAuthorRequest) (*models.Author, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if req.Country != nil {
		trimmed := strings.TrimSpace(*req.Country)
		req.Country = &trimmed
	}

	if err := as.validate.Validate(req); err != nil {
		return nil, err
	}

	author, err := as.repo.GetAuthor(authorID)
	if err != nil {
		return nil, &StorageError{Op: "update author", Err: err}
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	if req.Name != nil {
		author.Name = *req.Name
	}
	if req.Country != nil {
		author.Country = *req.Country
	}

	found, err := as.repo.UpdateAuthor(author)
	if err != nil {
		return nil, &StorageError{Op: "update author", Err: err}
	}
	if !found {
		return nil, ErrAuthorNotFound
	}

	return author, nil
}

// Delete removes an author. Deletion is blocked while any book still
// references the author; reassign those books first.
func (as *AuthorService) Delete(authorID int64) error {
	count, err := as.repo.CountBooksByAuthor(authorID)
	if err != nil {
		return &StorageError{Op: "delete author", Err: err}
	}
	if count > 0 {
		return ErrAuthorInUse
	}

	found, err := as.repo.DeleteAuthor(authorID)
	if err != nil {
		return &StorageError{Op: "delete author", Err: err}
	}
	if !found {
		return ErrAuthorNotFound
	}

	return nil
}
