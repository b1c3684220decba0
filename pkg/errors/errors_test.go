package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeEntityNotFound, "entity not found")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeEntityNotFound, err.Code)
	assert.Equal(t, "[SCR_001] entity not found", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeDatabaseError, "query failed").WithDetail("entity_id=E-1")
	assert.Equal(t, "[COMMON_012] query failed: entity_id=E-1", err.Error())

	var nilErr *AppError
	assert.Nil(t, nilErr.WithDetail("ignored"))
}

func TestWrap(t *testing.T) {
	t.Run("NilCause", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	})

	t.Run("WrapsCause", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := Wrap(cause, ErrCodeDatabaseError, "failed to load profile")
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, IsCode(err, ErrCodeDatabaseError))
	})

	t.Run("PreservesCodeOnUnknown", func(t *testing.T) {
		inner := New(ErrCodeEntityNotFound, "not found")
		err := Wrap(inner, CodeUnknown, "adding context")
		assert.Equal(t, ErrCodeEntityNotFound, err.Code)
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodeNotFound, "x")))
	assert.True(t, IsNotFound(New(ErrCodeEntityNotFound, "x")))
	assert.True(t, IsNotFound(Wrap(New(ErrCodeEntityNotFound, "x"), ErrCodeInternal, "outer")))
	assert.False(t, IsNotFound(New(ErrCodeInternal, "x")))
	assert.False(t, IsNotFound(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrCodeCacheError, GetCode(New(ErrCodeCacheError, "x")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeEntityNotFound, http.StatusNotFound},
		{ErrCodeEntityIDInvalid, http.StatusBadRequest},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeReferenceDataInvalid, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.HTTPStatus(), "code %s", tt.code)
	}
}
