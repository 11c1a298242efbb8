package mem_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tinyforth/zforth/internal/mem"
)

func TestArena_LoadStor(t *testing.T) {
	a := mem.NewArena(16)
	require.EqualValues(t, 16, a.Size())

	require.NoError(t, a.Stor(4, []byte{1, 2, 3}))
	buf := make([]byte, 3)
	require.NoError(t, a.LoadInto(4, buf))
	require.Equal(t, []byte{1, 2, 3}, buf)

	b, err := a.Load(5)
	require.NoError(t, err)
	require.Equal(t, byte(2), b)
}

func TestArena_OutOfBounds(t *testing.T) {
	a := mem.NewArena(8)

	_, err := a.Load(8)
	require.Error(t, err)
	var lim mem.LimitError
	require.ErrorAs(t, err, &lim)
	require.Equal(t, "load", lim.Op)

	require.Error(t, a.Stor(6, []byte{1, 2, 3}))
	require.Error(t, a.LoadInto(6, make([]byte, 3)))
}

func TestArena_Reset(t *testing.T) {
	a := mem.NewArena(4)
	require.NoError(t, a.Stor(0, []byte{1, 2, 3, 4}))
	a.Reset()
	buf := make([]byte, 4)
	require.NoError(t, a.LoadInto(0, buf))
	require.Equal(t, []byte{0, 0, 0, 0}, buf)
}
