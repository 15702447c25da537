package service

import (
	"errors"

	"github.com/emzola/bookstore/data"
	"github.com/emzola/bookstore/data/dto"
	"github.com/emzola/bookstore/internal/validator"
	"github.com/emzola/bookstore/repository"
)

type books interface {
	CreateBook(requestBody dto.CreateBookRequestBody) (*data.Book, error)
	GetBook(bookID int64) (*data.Book, error)
	ListBooks(author string) ([]data.Book, error)
	UpdateBook(bookID int64, requestBody dto.UpdateBookRequestBody) (*data.Book, error)
	DeleteBook(bookID int64) error
}

// CreateBook service creates a new book. All four fields are required; the
// id is assigned by the repository.
func (s *service) CreateBook(requestBody dto.CreateBookRequestBody) (*data.Book, error) {
	book := &data.Book{
		Author:      requestBody.Author,
		Title:       requestBody.Title,
		Description: requestBody.Description,
		Genre:       requestBody.Genre,
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, ErrFailedValidation
	}
	err := s.repo.CreateBook(book)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetBook service retrieves the details of a book.
func (s *service) GetBook(bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// ListBooks service retrieves the list of books in insertion order. A
// non-empty author narrows the list to case-insensitive substring matches;
// an author filter that matches nothing is a not-found condition.
func (s *service) ListBooks(author string) ([]data.Book, error) {
	books, err := s.repo.GetAllBooks(author)
	if err != nil {
		return nil, err
	}
	if author != "" && len(books) == 0 {
		return nil, ErrRecordNotFound
	}
	return books, nil
}

// UpdateBook service updates the details of a specific book. Only fields
// that are present and non-empty in the request body overwrite the stored
// values; the id itself is never modifiable.
func (s *service) UpdateBook(bookID int64, requestBody dto.UpdateBookRequestBody) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	// Update only fields with new data
	if requestBody.Author != nil && *requestBody.Author != "" {
		book.Author = *requestBody.Author
	}
	if requestBody.Title != nil && *requestBody.Title != "" {
		book.Title = *requestBody.Title
	}
	if requestBody.Description != nil && *requestBody.Description != "" {
		book.Description = *requestBody.Description
	}
	if requestBody.Genre != nil && *requestBody.Genre != "" {
		book.Genre = *requestBody.Genre
	}
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// DeleteBook service deletes a book.
func (s *service) DeleteBook(bookID int64) error {
	err := s.repo.DeleteBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}
