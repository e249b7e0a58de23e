package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "bad request", err: BadRequest("bad input"), status: http.StatusBadRequest},
		{name: "unauthorized", err: Unauthorized("invalid credentials"), status: http.StatusUnauthorized},
		{name: "forbidden", err: Forbidden("admin access required"), status: http.StatusForbidden},
		{name: "not found", err: NotFound("book not found"), status: http.StatusNotFound},
		{name: "conflict", err: Conflict("book already in basket"), status: http.StatusConflict},
		{name: "internal", err: Internal("query failed", errors.New("boom")), status: http.StatusInternalServerError},
		{name: "unclassified", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestWrappedErrorKeepsKind(t *testing.T) {
	err := fmt.Errorf("adding favorite: %w", Conflict("book already in favorites"))

	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
	assert.Equal(t, "book already in favorites", MessageOf(err))
}

func TestMessageOfUnclassified(t *testing.T) {
	// Raw error text must not leak to clients
	msg := MessageOf(errors.New("pq: connection refused"))
	assert.Equal(t, "internal server error", msg)
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Internal("query failed", cause)

	assert.ErrorIs(t, err, cause)
}
