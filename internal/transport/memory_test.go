package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minitel/internal/transport"
)

func TestMemoryRecordsWrites(t *testing.T) {
	mem := transport.NewMemory()
	require.NoError(t, mem.WriteByte('a'))
	require.NoError(t, mem.WriteByte('b'))

	assert.Equal(t, []byte("ab"), mem.Take())
	assert.Empty(t, mem.Written)
}

func TestMemoryFailAfter(t *testing.T) {
	mem := transport.NewMemory()
	mem.FailAfter(2)

	assert.NoError(t, mem.WriteByte(1))
	assert.NoError(t, mem.WriteByte(2))
	assert.ErrorIs(t, mem.WriteByte(3), transport.ErrInjected)
	assert.Equal(t, []byte{1, 2}, mem.Written)

	mem.Heal()
	assert.NoError(t, mem.WriteByte(4))
}

func TestMemoryInput(t *testing.T) {
	mem := transport.NewMemory()

	_, ok, err := mem.ReadAvailable()
	assert.NoError(t, err)
	assert.False(t, ok)

	mem.Feed('x', 'y')
	b, ok, err := mem.ReadAvailable()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, byte('x'), b)

	b, ok, _ = mem.ReadAvailable()
	assert.True(t, ok)
	assert.Equal(t, byte('y'), b)

	mem.ReadErr = transport.ErrClosed
	_, ok, err = mem.ReadAvailable()
	assert.False(t, ok)
	assert.ErrorIs(t, err, transport.ErrClosed)
}
