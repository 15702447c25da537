package data

import (
	"github.com/emzola/bookstore/internal/validator"
)

// Book defines a book model.
type Book struct {
	ID          int64  `json:"id"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
}

// ValidateBook checks that all required book fields are provided.
func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Author != "", "author", "must be provided")
	v.Check(book.Title != "", "title", "must be provided")
	v.Check(book.Description != "", "description", "must be provided")
	v.Check(book.Genre != "", "genre", "must be provided")
}
