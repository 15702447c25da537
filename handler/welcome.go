package handler

import (
	"fmt"
	"net/http"
)

// welcomeHandler greets visitors with a static plain-text message.
func (h *Handler) welcomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "Welcome to the Bookstore API")
}
