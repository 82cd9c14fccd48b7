package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefineAndCreate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, Define(r))

	c, err := r.Create(ElementName)
	require.NoError(t, err)
	assert.Equal(t, ElementName, c.Host().Name())
	assert.Equal(t, []string{ElementName}, r.Names())

	other, err := r.Create(ElementName)
	require.NoError(t, err)
	assert.NotSame(t, c, other)
}

func TestRegistryRejectsRedefinition(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, Define(r))
	require.ErrorIs(t, Define(r), ErrAlreadyDefined)
}

func TestRegistryUnknownElement(t *testing.T) {
	_, err := NewRegistry().Create("task-list")
	require.ErrorIs(t, err, ErrUnknownElement)
}
