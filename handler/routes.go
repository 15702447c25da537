package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/", h.welcomeHandler)

	router.HandlerFunc(http.MethodGet, "/books", h.listBooksHandler)
	router.HandlerFunc(http.MethodPost, "/books", h.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books/:bookId", h.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/books/:bookId", h.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:bookId", h.deleteBookHandler)

	router.HandlerFunc(http.MethodGet, "/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	return h.recoverPanic(h.metrics(h.enableCORS(h.rateLimit(h.requestID(router)))))
}
