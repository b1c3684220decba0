package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDValidate(t *testing.T) {
	assert.NoError(t, ID("E-100424").Validate())
	assert.Error(t, ID("").Validate())
	assert.Error(t, ID("has space").Validate())
	assert.Error(t, ID(" leading").Validate())
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NoError(t, a.Validate())
	assert.NotEqual(t, a, b)
}

func TestGenerateID(t *testing.T) {
	id := GenerateID("asm")
	assert.True(t, strings.HasPrefix(id, "asm_"))
	assert.NotContains(t, id[4:], "-")
}

func TestResponseEnvelopes(t *testing.T) {
	ok := NewSuccessResponse("payload")
	assert.True(t, ok.Success)
	assert.Equal(t, "payload", ok.Data)
	assert.Nil(t, ok.Error)

	fail := NewErrorResponse("SCR_001", "entity not found")
	assert.False(t, fail.Success)
	assert.Equal(t, "SCR_001", fail.Error.Code)
}
