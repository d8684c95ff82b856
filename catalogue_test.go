package gocrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupCanonical(t *testing.T) {
	p, err := Lookup("crc-32-iso-hdlc")
	require.NoError(t, err)
	require.Equal(t, uint8(32), p.Width)
	require.Equal(t, uint64(0x04C11DB7), p.Poly)
	require.True(t, p.RefIn)
	require.True(t, p.RefOut)
}

func TestLookupAlias(t *testing.T) {
	byAlias, err := Lookup("xmodem")
	require.NoError(t, err)
	byCanonical, err := Lookup("crc-16-xmodem")
	require.NoError(t, err)
	require.Equal(t, byCanonical, byAlias)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("definitely-not-a-crc")
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, KindKey, cfgErr.Kind)
}

func TestTemplatesAvailableIsMutableCopy(t *testing.T) {
	templates := TemplatesAvailable()
	require.NotEmpty(t, templates)
	original := templates["crc-32-iso-hdlc"]
	mutated := original
	mutated.Width = 1
	templates["crc-32-iso-hdlc"] = mutated

	again, ok := canonicalParams["crc-32-iso-hdlc"]
	require.True(t, ok)
	require.Equal(t, original, again)
}

func TestCatalogueNamesSortedForBinarySearch(t *testing.T) {
	for i := 1; i < len(catalogueNames); i++ {
		require.LessOrEqual(t, catalogueNames[i-1].alias, catalogueNames[i].alias)
	}
}

func TestCatalogueCheckValuesMatchLookup(t *testing.T) {
	check := []byte("123456789")
	for name, want := range catalogueCheck {
		params, ok := canonicalParams[name]
		require.True(t, ok, name)
		if params.Width > 64 {
			continue
		}
		got, err := Sum(params, check)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
}
