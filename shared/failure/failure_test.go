package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("totalCost must be greater than or equal to pretaxCost")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "totalCost must be greater than or equal to pretaxCost",
		},
		{
			name:     "bad request formatted",
			err:      failure.BadRequestf("elite status %s does not belong to hotel chain %s", "globalist", "marriott"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "elite status globalist does not belong to hotel chain marriott",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("checkOut must be after checkIn"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "checkOut must be after checkIn",
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("database connection failed")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "database connection failed",
		},
		{
			name:     "not found",
			err:      failure.NotFound("booking not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "booking not found",
		},
		{
			name:     "conflict formatted",
			err:      failure.Conflictf("hotel chain is used by %d bookings", 3),
			wantCode: http.StatusConflict,
			wantMsg:  "hotel chain is used by 3 bookings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			require.ErrorAs(t, tt.err, &f)

			assert.Equal(t, tt.wantCode, f.Code)
			assert.Equal(t, tt.wantMsg, f.Error())
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure error", input: failure.BadRequestFromString("test"), expected: http.StatusBadRequest},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to delete point type: %w", failure.Conflict("in use")),
			expected: http.StatusConflict,
		},
		{name: "regular error", input: errors.New("regular error"), expected: http.StatusInternalServerError},
		{name: "nil error", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestIsClientError(t *testing.T) {
	assert.True(t, failure.IsClientError(failure.NotFound("missing")))
	assert.False(t, failure.IsClientError(failure.InternalError(errors.New("boom"))))
	assert.False(t, failure.IsClientError(errors.New("boom")))
}
