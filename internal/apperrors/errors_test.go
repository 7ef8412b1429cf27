package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestFieldErrorUnwrapsToValidation(t *testing.T) {
	err := fmt.Errorf("creating lead: %w", apperrors.NewFieldError("amount", "must be a non-negative integer"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var fe *apperrors.FieldError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "amount", fe.Field)
	assert.Equal(t, "amount: must be a non-negative integer", fe.Error())
}

func TestFieldErrorWithoutField(t *testing.T) {
	fe := apperrors.NewFieldError("", "invalid request body")
	assert.Equal(t, "invalid request body", fe.Error())
}

func TestAppErrorWraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to insert lead", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to insert lead: connection refused", err.Error())
	assert.Equal(t, "failed to insert lead", apperrors.NewAppError(500, "failed to insert lead", nil).Error())
}

func TestNewUpstreamError(t *testing.T) {
	err := apperrors.NewUpstreamError("rate card responded with status %d", 502)

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Contains(t, err.Error(), "502")
}
