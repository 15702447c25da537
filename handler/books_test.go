package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emzola/bookstore/config"
	"github.com/emzola/bookstore/data"
	"github.com/emzola/bookstore/internal/jsonlog"
	"github.com/emzola/bookstore/repository"
	"github.com/emzola/bookstore/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(cfg config.Config) *Handler {
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	repo := repository.New(data.Seed())
	return New(cfg, logger, service.New(cfg, logger, repo))
}

func newTestRoutes(t *testing.T) http.Handler {
	t.Helper()
	var cfg config.Config
	cfg.Server.Env = "test"
	return newTestHandler(cfg).Routes()
}

func doRequest(t *testing.T, routes http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	return rec
}

func doRequestWith(t *testing.T, routes http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestWelcome(t *testing.T) {
	routes := newTestRoutes(t)
	rec := doRequest(t, routes, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "Welcome to the Bookstore API")
}

func TestListBooks(t *testing.T) {
	t.Run("returns the full sequence", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodGet, "/books", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var books []data.Book
		decodeBody(t, rec, &books)
		require.Len(t, books, 3)
		assert.Equal(t, int64(1), books[0].ID)
		assert.Equal(t, int64(3), books[2].ID)
	})

	t.Run("filters by author case-insensitively", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodGet, "/books?author=garc%C3%ADa", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var books []data.Book
		decodeBody(t, rec, &books)
		require.Len(t, books, 1)
		assert.Equal(t, "Gabriel García Márquez", books[0].Author)
	})

	t.Run("responds 404 when the author matches nothing", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodGet, "/books?author=austen", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		var payload map[string]string
		decodeBody(t, rec, &payload)
		assert.Equal(t, "no books found for the specified author", payload["message"])
	})
}

func TestShowBook(t *testing.T) {
	t.Run("existing id", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodGet, "/books/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var book data.Book
		decodeBody(t, rec, &book)
		assert.Equal(t, int64(1), book.ID)
		assert.Equal(t, "Gabriel García Márquez", book.Author)
	})

	t.Run("unknown id", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodGet, "/books/99", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		var payload map[string]string
		decodeBody(t, rec, &payload)
		assert.Equal(t, "book not found", payload["error"])
	})

	t.Run("non-numeric id behaves like a missing record", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodGet, "/books/abc", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		var payload map[string]string
		decodeBody(t, rec, &payload)
		assert.Equal(t, "book not found", payload["error"])
	})
}

func TestCreateBook(t *testing.T) {
	t.Run("creates a record with the next id", func(t *testing.T) {
		routes := newTestRoutes(t)
		body := `{"author":"A","title":"T","description":"D","genre":"G"}`
		rec := doRequest(t, routes, http.MethodPost, "/books", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/books/4", rec.Header().Get("Location"))
		var book data.Book
		decodeBody(t, rec, &book)
		assert.Equal(t, data.Book{ID: 4, Author: "A", Title: "T", Description: "D", Genre: "G"}, book)

		// Listing immediately afterwards includes the new record.
		rec = doRequest(t, routes, http.MethodGet, "/books", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var books []data.Book
		decodeBody(t, rec, &books)
		require.Len(t, books, 4)
		assert.Equal(t, int64(4), books[3].ID)
	})

	t.Run("responds 400 when a field is missing and leaves the store unchanged", func(t *testing.T) {
		routes := newTestRoutes(t)
		body := `{"author":"A","title":"T","description":"D"}`
		rec := doRequest(t, routes, http.MethodPost, "/books", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var payload map[string]string
		decodeBody(t, rec, &payload)
		assert.Equal(t, "missing required fields: author, title, description, genre", payload["message"])

		rec = doRequest(t, routes, http.MethodGet, "/books", "")
		var books []data.Book
		decodeBody(t, rec, &books)
		assert.Len(t, books, 3)
	})

	t.Run("responds 400 when a field is empty", func(t *testing.T) {
		routes := newTestRoutes(t)
		body := `{"author":"A","title":"T","description":"D","genre":""}`
		rec := doRequest(t, routes, http.MethodPost, "/books", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("responds 400 on a malformed body", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodPost, "/books", `{"author":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateBook(t *testing.T) {
	t.Run("overwrites only provided non-empty fields", func(t *testing.T) {
		routes := newTestRoutes(t)
		body := `{"title":"Animal Farm","author":""}`
		rec := doRequest(t, routes, http.MethodPut, "/books/2", body)

		require.Equal(t, http.StatusOK, rec.Code)
		var book data.Book
		decodeBody(t, rec, &book)
		assert.Equal(t, int64(2), book.ID)
		assert.Equal(t, "Animal Farm", book.Title)
		assert.Equal(t, "George Orwell", book.Author)
		assert.Equal(t, "Dystopian Fiction", book.Genre)
	})

	t.Run("unknown id", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodPut, "/books/99", `{"title":"Nope"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var payload map[string]string
		decodeBody(t, rec, &payload)
		assert.Equal(t, "book not found", payload["message"])
	})

	t.Run("rejects bodies carrying unknown keys such as id", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodPut, "/books/2", `{"id":9,"title":"Nope"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("removes the record", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodDelete, "/books/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var payload map[string]string
		decodeBody(t, rec, &payload)
		assert.Equal(t, "book deleted successfully", payload["message"])

		rec = doRequest(t, routes, http.MethodGet, "/books/1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		routes := newTestRoutes(t)
		rec := doRequest(t, routes, http.MethodDelete, "/books/99", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		var payload map[string]string
		decodeBody(t, rec, &payload)
		assert.Equal(t, "book not found", payload["message"])
	})
}

func TestHealthcheck(t *testing.T) {
	routes := newTestRoutes(t)
	rec := doRequest(t, routes, http.MethodGet, "/healthcheck", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Status     string            `json:"status"`
		SystemInfo map[string]string `json:"system_info"`
	}
	decodeBody(t, rec, &payload)
	assert.Equal(t, "available", payload.Status)
	assert.Equal(t, "test", payload.SystemInfo["environment"])
}

func TestMethodNotAllowed(t *testing.T) {
	routes := newTestRoutes(t)
	rec := doRequest(t, routes, http.MethodPost, "/books/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	routes := newTestRoutes(t)
	rec := doRequest(t, routes, http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var payload map[string]string
	decodeBody(t, rec, &payload)
	assert.Equal(t, "the requested resource could not be found", payload["message"])
}
