// Package dto contains the request body shapes accepted by the API.
package dto

// CreateBookRequestBody defines the request body for creating a book.
type CreateBookRequestBody struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
}

// UpdateBookRequestBody defines the request body for updating a book.
// Pointer fields distinguish absent fields from empty ones so that partial
// updates leave omitted fields unchanged.
type UpdateBookRequestBody struct {
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Genre       *string `json:"genre"`
}
