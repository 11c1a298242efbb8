package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarCellRoundTrip(t *testing.T) {
	for _, v := range []Cell{0, 1, 42, 127, 128, 129, 1000, 16383, -1, -500, 16384, 1e6, 0.5, -3.25} {
		buf := encodeVarCell(v)
		got, n, ok := decodeVarCell(buf)
		require.True(t, ok, "decode %v", buf)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got, "round trip of %v", v)
	}
}

func TestVarCellWidths(t *testing.T) {
	cases := []struct {
		v    Cell
		want int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 9},
		{-1, 9},
		{0.5, 9},
	}
	for _, c := range cases {
		buf := encodeVarCell(c.v)
		assert.Lenf(t, buf, c.want, "encodeVarCell(%v)", c.v)
		assert.Equal(t, c.want, varCellLen(c.v))
	}
}

func TestVarCellMSB(t *testing.T) {
	for v := Cell(0); v < 128; v++ {
		buf := encodeVarCell(v)
		require.Len(t, buf, 1)
		assert.Zero(t, buf[0]&0x80, "MSB must be clear for %v", v)
	}
	for _, v := range []Cell{128, 200, 16383} {
		buf := encodeVarCell(v)
		require.Len(t, buf, 2)
		assert.Equal(t, byte(0x80), buf[0]&0xC0, "top two bits must read 10 for %v", v)
	}
}

func TestRawCellBytesAlwaysFixedWidth(t *testing.T) {
	for _, v := range []Cell{0, 1, 127, 128, 16384, -9} {
		buf := rawCellBytes(v)
		assert.Len(t, buf, 1+cellRawWidth)
		assert.Equal(t, byte(0xFF), buf[0])
		got, n, ok := decodeVarCell(buf)
		require.True(t, ok)
		assert.Equal(t, 1+cellRawWidth, n)
		assert.Equal(t, v, got)
	}
}

func TestTypedCellRoundTrip(t *testing.T) {
	sizes := []MemSize{SizeCELL, SizeU8, SizeU16, SizeU32, SizeS8, SizeS16, SizeS32}
	for _, size := range sizes {
		buf, ok := encodeTypedCell(42, size)
		require.True(t, ok, "size %v", size)
		got, ok := decodeTypedCell(buf, size)
		require.True(t, ok)
		assert.Equal(t, Cell(42), got, "size %v", size)
	}
}

func TestEncodeTypedCellRejectsVAR(t *testing.T) {
	_, ok := encodeTypedCell(1, SizeVAR)
	assert.False(t, ok)
}
