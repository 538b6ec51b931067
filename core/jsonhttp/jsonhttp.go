// Package jsonhttp provides convenience functions for responding
// to HTTP requests with JSON messages in a unified shape.
package jsonhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// DefaultContentTypeHeader is the value for the Content-Type header
	// on all JSON responses.
	DefaultContentTypeHeader = "application/json; charset=utf-8"

	// ErrInternalError is returned when a marshaling of the response fails.
	ErrInternalError = errors.New("marshal json response")
)

// StatusResponse is the default response body for status messages.
type StatusResponse struct {
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Respond writes the response with the provided status code and a body
// constructed from the response argument. If response is nil, the standard
// status text is used as the message. If response is a string or an error,
// it is used as the message in a StatusResponse body.
func Respond(w http.ResponseWriter, statusCode int, response interface{}) {
	if response == nil {
		response = StatusResponse{
			Message: http.StatusText(statusCode),
			Code:    statusCode,
		}
	} else {
		switch message := response.(type) {
		case string:
			response = StatusResponse{
				Message: message,
				Code:    statusCode,
			}
		case error:
			response = StatusResponse{
				Message: message.Error(),
				Code:    statusCode,
			}
		}
	}
	b, err := json.Marshal(response)
	if err != nil {
		Respond(w, http.StatusInternalServerError, ErrInternalError)
		return
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", DefaultContentTypeHeader)
	}
	w.WriteHeader(statusCode)
	fmt.Fprintln(w, string(b))
}

// Continue writes a response with status code 100.
func Continue(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusContinue, response)
}

// OK writes a response with status code 200.
func OK(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusOK, response)
}

// Created writes a response with status code 201.
func Created(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusCreated, response)
}

// Accepted writes a response with status code 202.
func Accepted(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusAccepted, response)
}

// BadRequest writes a response with status code 400.
func BadRequest(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusBadRequest, response)
}

// Unauthorized writes a response with status code 401.
func Unauthorized(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusUnauthorized, response)
}

// Forbidden writes a response with status code 403.
func Forbidden(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusForbidden, response)
}

// NotFound writes a response with status code 404.
func NotFound(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusNotFound, response)
}

// MethodNotAllowed writes a response with status code 405.
func MethodNotAllowed(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusMethodNotAllowed, response)
}

// InternalServerError writes a response with status code 500.
func InternalServerError(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusInternalServerError, response)
}

// ServiceUnavailable writes a response with status code 503.
func ServiceUnavailable(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusServiceUnavailable, response)
}
