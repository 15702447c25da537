package repository

import (
	"strings"

	"github.com/emzola/bookstore/data"
)

type books interface {
	CreateBook(book *data.Book) error
	GetBook(bookID int64) (*data.Book, error)
	GetAllBooks(author string) ([]data.Book, error)
	UpdateBook(book *data.Book) error
	DeleteBook(bookID int64) error
}

// CreateBook assigns the next id to a book and appends it to the sequence.
// IDs come from a monotonic counter, so an id is never reused after the
// record that held it is deleted.
func (r *repository) CreateBook(book *data.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	book.ID = r.nextID
	r.nextID++
	r.books = append(r.books, *book)
	return nil
}

// GetBook retrieves a book by its id via a linear scan of the sequence.
func (r *repository) GetBook(bookID int64) (*data.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.books {
		if r.books[i].ID == bookID {
			book := r.books[i]
			return &book, nil
		}
	}
	return nil, ErrRecordNotFound
}

// GetAllBooks retrieves all books in insertion order. When author is
// non-empty, only books whose author field contains it as a case-insensitive
// substring are returned.
func (r *repository) GetAllBooks(author string) ([]data.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	books := make([]data.Book, 0, len(r.books))
	for _, book := range r.books {
		if author != "" && !strings.Contains(strings.ToLower(book.Author), strings.ToLower(author)) {
			continue
		}
		books = append(books, book)
	}
	return books, nil
}

// UpdateBook replaces the stored record that matches the book's id. The
// record keeps its position in the sequence.
func (r *repository) UpdateBook(book *data.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].ID == book.ID {
			r.books[i] = *book
			return nil
		}
	}
	return ErrRecordNotFound
}

// DeleteBook removes the book with the given id from the sequence. The
// relative order of the remaining records is preserved.
func (r *repository) DeleteBook(bookID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].ID == bookID {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}
