// Package httpbind binds gorilla/mux route variables and query parameters
// into strong types.
//
//	r.HandleFunc("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//		id, err := httpbind.PathParam[UserID](r, "id")
//		if err != nil {
//			httpbind.WriteError(w, err)
//			return
//		}
//		...
//	})
package httpbind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/authcorp/libs/go/strongof/option"
	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

// Source names where a bound value came from.
type Source string

const (
	SourcePath   Source = "path"
	SourceQuery  Source = "query"
	SourceHeader Source = "header"
)

// ErrMissing is wrapped by a BindError for a required value that is absent.
var ErrMissing = errors.New("missing value")

// BindError describes a request value that could not be bound.
type BindError struct {
	Source Source `json:"source"`
	Name   string `json:"name"`
	Value  string `json:"value,omitempty"`
	Err    error  `json:"-"`
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s parameter %q: %v", e.Source, e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *BindError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code a handler should answer with.
func (e *BindError) HTTPStatus() int {
	return http.StatusBadRequest
}

type formatValidator interface {
	IsValidFormat() bool
}

// PathParam binds the mux route variable name.
func PathParam[S any, PS strong.TextSetter[S]](r *http.Request, name string) (S, error) {
	raw, ok := mux.Vars(r)[name]
	return bind[S, PS](SourcePath, name, raw, ok)
}

// QueryParam binds the first query parameter name, which must be present.
func QueryParam[S any, PS strong.TextSetter[S]](r *http.Request, name string) (S, error) {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return bind[S, PS](SourceQuery, name, "", false)
	}
	return bind[S, PS](SourceQuery, name, values[0], true)
}

// OptionalQueryParam binds the query parameter name when present.
func OptionalQueryParam[S any, PS strong.TextSetter[S]](r *http.Request, name string) (option.Option[S], error) {
	if !r.URL.Query().Has(name) {
		return option.None[S](), nil
	}
	s, err := QueryParam[S, PS](r, name)
	if err != nil {
		return option.None[S](), err
	}
	return option.Some(s), nil
}

// HeaderParam binds the request header name, which must be present.
func HeaderParam[S any, PS strong.TextSetter[S]](r *http.Request, name string) (S, error) {
	values := r.Header.Values(name)
	if len(values) == 0 {
		return bind[S, PS](SourceHeader, name, "", false)
	}
	return bind[S, PS](SourceHeader, name, values[0], true)
}

func bind[S any, PS strong.TextSetter[S]](source Source, name, raw string, present bool) (S, error) {
	var s S
	if !present {
		return s, &BindError{Source: source, Name: name, Err: ErrMissing}
	}
	echo := raw
	if validation.IsPersonalData(s) {
		echo = ""
	}
	if err := PS(&s).UnmarshalText([]byte(raw)); err != nil {
		var zero S
		return zero, &BindError{Source: source, Name: name, Value: echo, Err: err}
	}
	if fv, ok := any(s).(formatValidator); ok && !fv.IsValidFormat() {
		var zero S
		verr := &validation.ValidationError{
			Field:   name,
			Message: "has an invalid format",
			Code:    validation.CodeFormat,
		}
		if echo != "" {
			verr.Value = echo
		}
		return zero, &BindError{Source: source, Name: name, Value: echo, Err: verr}
	}
	return s, nil
}

type errorResponse struct {
	Code    string     `json:"code"`
	Message string     `json:"message"`
	Details *BindError `json:"details,omitempty"`
}

// WriteError answers with a JSON error body. A BindError yields its status
// and details; anything else is an internal error.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	resp := errorResponse{Code: "INTERNAL_ERROR", Message: err.Error()}

	var bindErr *BindError
	if errors.As(err, &bindErr) {
		status = bindErr.HTTPStatus()
		resp.Code = "BAD_REQUEST"
		resp.Details = bindErr
		if errors.Is(err, validation.ErrInvalid) {
			resp.Code = "VALIDATION_ERROR"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
