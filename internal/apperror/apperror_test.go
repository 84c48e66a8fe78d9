package apperror

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := NotFound("page %d not found", 42)
	wrapped := fmt.Errorf("failed to get page: %w", err)

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrConflict))
	assert.Equal(t, "NOT_FOUND: page 42 not found", err.Error())
}

func TestError_WrapKeepsCause(t *testing.T) {
	err := ErrConflict.Wrap(sql.ErrNoRows)

	assert.True(t, errors.Is(err, ErrConflict))
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.Nil(t, ErrConflict.Err, "sentinel must not be mutated")
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", NotFound("x"), http.StatusNotFound},
		{"validation", fmt.Errorf("ctx: %w", Validation("bad")), http.StatusBadRequest},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"forbidden", Forbidden("no"), http.StatusForbidden},
		{"unauthorized", Unauthorized("no"), http.StatusUnauthorized},
		{"cycle", CyclicHierarchy("loop"), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusOf(tt.err))
		})
	}
}

func TestFrom(t *testing.T) {
	e := From(errors.New("boom"))
	assert.Equal(t, CodeInternal, e.Code)

	e = From(fmt.Errorf("wrap: %w", Forbidden("not owner")))
	assert.Equal(t, CodeForbidden, e.Code)
	assert.Equal(t, "not owner", e.Message)
}
