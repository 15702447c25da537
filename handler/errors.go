package handler

import (
	"fmt"
	"net/http"
)

func (h *Handler) logError(r *http.Request, err error) {
	properties := map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
	}
	if id := h.contextGetRequestID(r); id != "" {
		properties["request_id"] = id
	}
	h.logger.PrintError(err, properties)
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := envelope{"message": message}
	err := h.encodeJSON(w, status, env, nil)
	if err != nil {
		h.logError(r, err)
		w.WriteHeader(500)
	}
}

func (h *Handler) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	h.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (h *Handler) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	h.errorResponse(w, r, http.StatusNotFound, message)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	h.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (h *Handler) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (h *Handler) missingRequiredFieldsResponse(w http.ResponseWriter, r *http.Request) {
	message := "missing required fields: author, title, description, genre"
	h.errorResponse(w, r, http.StatusBadRequest, message)
}

func (h *Handler) bookNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "book not found"
	h.errorResponse(w, r, http.StatusNotFound, message)
}

// bookNotFoundErrorResponse reports a failed lookup by id. Unlike every
// other error payload, clients of the show endpoint expect the reason under
// an "error" key, so this responder does not go through errorResponse.
func (h *Handler) bookNotFoundErrorResponse(w http.ResponseWriter, r *http.Request) {
	env := envelope{"error": "book not found"}
	err := h.encodeJSON(w, http.StatusNotFound, env, nil)
	if err != nil {
		h.logError(r, err)
		w.WriteHeader(500)
	}
}

func (h *Handler) noBooksFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "no books found for the specified author"
	h.errorResponse(w, r, http.StatusNotFound, message)
}

func (h *Handler) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "rate limit exceeded"
	h.errorResponse(w, r, http.StatusTooManyRequests, message)
}

func (h *Handler) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	message := "invalid authentication credentials"
	h.errorResponse(w, r, http.StatusUnauthorized, message)
}
