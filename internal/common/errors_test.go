package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	err := NewAppError("CATALOG_ERROR", "catalog rejected", ErrValidation)

	assert.EqualError(t, err, "CATALOG_ERROR: catalog rejected: validation failed")
	assert.ErrorIs(t, err, ErrValidation)

	bare := NewAppError("CATALOG_ERROR", "catalog rejected", nil)
	assert.EqualError(t, bare, "CATALOG_ERROR: catalog rejected")
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "load catalog"))

	wrapped := WrapError(ErrNotFound, "load catalog")
	assert.EqualError(t, wrapped, "load catalog: resource not found")
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}
