package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndAs(t *testing.T) {
	err := New(CodeNotFound, "order not found")
	assert.Equal(t, "NOT_FOUND: order not found", err.Error())

	typed := As(err)
	require.NotNil(t, typed)
	assert.Equal(t, CodeNotFound, typed.Code())
	assert.Equal(t, "order not found", typed.Message())
}

func TestAsThroughWrapping(t *testing.T) {
	inner := New(CodeValidation, "bad input")
	wrapped := fmt.Errorf("handling request: %w", inner)

	typed := As(wrapped)
	require.NotNil(t, typed)
	assert.Equal(t, CodeValidation, typed.Code())

	assert.Nil(t, As(errors.New("plain")))
	assert.Nil(t, As(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeDependency, cause, "query orders")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeDependency, err.Code())

	// nil cause degrades to a plain typed error
	assert.NotNil(t, Wrap(CodeInternal, nil, "boom"))
}

func TestWithDetails(t *testing.T) {
	err := New(CodeUnknownField, "unknown order fields").
		WithDetails(map[string]any{"fields": []string{"iban"}})
	require.NotNil(t, err.Details())
}

func TestMetadataFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, MetadataFor(CodeNotFound).HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeUnknownField).HTTPStatus)
	assert.Equal(t, http.StatusConflict, MetadataFor(CodeIdempotency).HTTPStatus)
	assert.True(t, MetadataFor(CodeDependency).Retryable)

	// unknown codes fall back to internal
	assert.Equal(t, http.StatusInternalServerError, MetadataFor(Code("NOPE")).HTTPStatus)
}

func TestDumpChain(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeDependency, cause, "write evidence file")

	dump := Dump(err)
	assert.Equal(t, CodeDependency, dump.Code)
	assert.Equal(t, "DEPENDENCY_ERROR: write evidence file", dump.TopMessage)
	require.Len(t, dump.Chain, 2)
	assert.Empty(t, dump.PGCode)

	assert.Equal(t, ErrorDump{}, Dump(nil))
}
