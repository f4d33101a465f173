// Package http provides helpers for writing JSON responses.
//
// The wire format is deliberately bare: success responses carry the entity
// JSON itself, validation failures carry {"<field>": "<message>"}, and other
// failures carry {"error": "<message>"}. The service's HTTP contract fixes
// these bodies, so there is no envelope.
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "recordkeeper/internal/platform/errors"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody maps an error to the wire body for its status
// Validation errors with a field become {"<field>": "<message>"}
func ErrorBody(err error) any {
	if e, ok := perr.As(err); ok && e.Code() == perr.ErrorCodeValidation && e.Field() != "" {
		return map[string]string{e.Field(): e.Message()}
	}
	if e, ok := perr.As(err); ok {
		return map[string]string{"error": e.Message()}
	}
	return map[string]string{"error": err.Error()}
}

// RespondError maps a project error to status and body and writes it
func RespondError(w stdhttp.ResponseWriter, _ *stdhttp.Request, err error) {
	JSON(w, perr.HTTPStatus(err), ErrorBody(err))
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response with no body
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps an error to status and wire body
func Error(err error) Response {
	return Response{Status: perr.HTTPStatus(err), Body: ErrorBody(err)}
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if resp.Body == nil || status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, resp.Body)
}
