package gocrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableCacheSharesTablesAcrossEngines(t *testing.T) {
	a, err := New(WithName("crc-32-iso-hdlc"), WithMethod(MethodWordwise))
	require.NoError(t, err)
	b, err := New(WithName("crc-32-iso-hdlc"), WithMethod(MethodWordwise))
	require.NoError(t, err)

	require.Same(t, a.bytewise, b.bytewise)
	require.Same(t, a.wordwise, b.wordwise)
}

func TestTableCacheBuildsIndependentTablesPerConfig(t *testing.T) {
	a, err := New(WithName("crc-32-iso-hdlc"), WithMethod(MethodBytewise))
	require.NoError(t, err)
	b, err := New(WithName("crc-32-bzip2"), WithMethod(MethodBytewise))
	require.NoError(t, err)

	require.NotSame(t, a.bytewise, b.bytewise)
	require.NotEqual(t, *a.bytewise, *b.bytewise)
}

func TestTableCacheBytewiseThenWordwiseReusesBytewise(t *testing.T) {
	cache := newTableLRU(defaultMaxTables)
	bytewise := cache.bytewiseTableFor(32, 0x04C11DB7, true)
	sharedBytewise, wordwise := cache.wordwiseTableFor(32, 0x04C11DB7, true)

	require.Same(t, bytewise, sharedBytewise)
	require.NotNil(t, wordwise)
}
