package models

type Author struct {
	ID      int64  `json:"author_id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Book struct {
	ID       int64  `json:"book_id"`
	Title    string `json:"title"`
	AuthorID int64  `json:"author_id"`
	Quantity int    `json:"quantity"`
}

// BookDetail is a book row joined with its author.
type BookDetail struct {
	Book
	AuthorName    string `json:"author_name"`
	AuthorCountry string `json:"author_country"`
}

type CreateBookRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	AuthorID int64  `json:"author_id" validate:"required,gt=0"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// UpdateBookRequest carries a partial update; nil fields are left unchanged.
type UpdateBookRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	AuthorID *int64  `json:"author_id,omitempty" validate:"omitempty,gt=0"`
	Quantity *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

type CreateAuthorRequest struct {
	Name    string `json:"name" validate:"required,max=100,propername"`
	Country string `json:"country" validate:"omitempty,max=100,propername"`
}

type UpdateAuthorRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100,propername"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100,propername"`
}
