package gocrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitMask(t *testing.T) {
	require.Equal(t, uint64(0xff), bitMask(8))
	require.Equal(t, uint64(0xffff), bitMask(16))
	require.Equal(t, MaxValue, bitMask(64))
}

func TestBitSwap(t *testing.T) {
	require.Equal(t, uint64(0x01), bitSwap(0x80, 8))
	require.Equal(t, uint64(0x80), bitSwap(0x01, 8))
	require.Equal(t, uint64(0), bitSwap(0, 8))
	require.Equal(t, MaxValue, bitSwap(MaxValue, 64))
}

func TestByteSwap64(t *testing.T) {
	require.Equal(t, uint64(0x0807060504030201), byteSwap64(0x0102030405060708))
}
