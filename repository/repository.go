package repository

import (
	"sync"

	"github.com/emzola/bookstore/data"
)

type Repository interface {
	books
}

// repository defines the app's repository layer. Books live in an ordered
// in-memory sequence for the lifetime of the process; a single mutex guards
// every scan and mutation.
type repository struct {
	mu     sync.RWMutex
	books  []data.Book
	nextID int64
}

// New creates a new instance of Repository seeded with the given books.
func New(seed []data.Book) *repository {
	r := &repository{
		books:  make([]data.Book, len(seed)),
		nextID: 1,
	}
	copy(r.books, seed)
	for _, book := range seed {
		if book.ID >= r.nextID {
			r.nextID = book.ID + 1
		}
	}
	return r
}
