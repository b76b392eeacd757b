package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"CONFLICT", http.StatusConflict},
		{"INVALID_STATE", http.StatusUnprocessableEntity},
		{"INVALID_INPUT", http.StatusBadRequest},
		{"INVALID_DATE", http.StatusBadRequest},
		{"INVALID_COMPANY", http.StatusBadRequest},
		{"GENERATION_FAILED", http.StatusInternalServerError},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeValidation, http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 21, 2, 10)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(21), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
