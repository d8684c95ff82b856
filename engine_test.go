package gocrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToCRC32(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	require.Equal(t, uint8(32), e.Width())
	require.Equal(t, "crc-32", e.Name())

	e.Update([]byte("123456789"))
	require.Equal(t, uint64(0xCBF43926), e.Uint64())
}

func TestNewNameWithOverride(t *testing.T) {
	e, err := New(WithName("crc-32-iso-hdlc"), WithXorOut(0))
	require.NoError(t, err)
	require.Equal(t, uint64(0), e.XorOut())
	require.Equal(t, uint64(0x04C11DB7), e.Poly())
}

func TestNewRejectsInvalidParams(t *testing.T) {
	_, err := New(WithWidth(0), WithPoly(1))
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "width", cfgErr.Field)
}

func TestNewWithDataMatchesUpdate(t *testing.T) {
	viaData, err := New(WithName("crc-32-iso-hdlc"), WithData([]byte("123456789")))
	require.NoError(t, err)

	viaUpdate, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	viaUpdate.Update([]byte("123456789"))

	require.Equal(t, viaUpdate.Uint64(), viaData.Uint64())
}

func TestClearDefault(t *testing.T) {
	e, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	before := e.Uint64()
	e.Update([]byte("some data"))
	require.NotEqual(t, before, e.Uint64())
	require.NoError(t, e.Clear())
	require.Equal(t, before, e.Uint64())
}

func TestClearWithInit(t *testing.T) {
	e, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	require.NoError(t, e.Clear(0xffffffff))
	e.Update([]byte("123456789"))
	got := e.Uint64()

	fresh, err := New(WithName("crc-32-iso-hdlc"), WithInit(0xffffffff))
	require.NoError(t, err)
	fresh.Update([]byte("123456789"))
	require.Equal(t, fresh.Uint64(), got)
}

func TestClearRejectsOutOfRangeInit(t *testing.T) {
	e, err := New(WithName("crc-8-smbus"))
	require.NoError(t, err)
	err = e.Clear(0x1ff)
	require.Error(t, err)
}

func TestCopyIsIndependent(t *testing.T) {
	e, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	e.Update([]byte("shared prefix"))

	clone := e.Copy()
	e.Update([]byte(" original tail"))
	clone.Update([]byte(" clone tail"))

	require.NotEqual(t, e.Uint64(), clone.Uint64())
}

func TestUpdateWordMatchesUpdate(t *testing.T) {
	viaBytes, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	viaBytes.Update([]byte{0x41})

	viaWord, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	viaWord.UpdateWord(0x41, 8)

	require.Equal(t, viaBytes.Uint64(), viaWord.Uint64())
}

func TestZeroBytesMatchesUpdateOfZeroes(t *testing.T) {
	viaZero, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	viaZero.Update([]byte("prefix"))
	viaZero.ZeroBytes(300)

	viaUpdate, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	viaUpdate.Update([]byte("prefix"))
	viaUpdate.Update(make([]byte, 300))

	require.Equal(t, viaUpdate.Uint64(), viaZero.Uint64())
}

func TestZeroBitsWithSubByteRemainder(t *testing.T) {
	viaZero, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	viaZero.ZeroBits(19) // 2 bytes + 3 bits

	viaWord, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	viaWord.Update(make([]byte, 2))
	viaWord.UpdateWord(0, 3)

	require.Equal(t, viaWord.Uint64(), viaZero.Uint64())
}

func TestDigestSizeAndHexDigest(t *testing.T) {
	e, err := New(WithName("crc-16-xmodem"))
	require.NoError(t, err)
	require.Equal(t, 2, e.DigestSize())
	e.Update([]byte("123456789"))
	require.Equal(t, "31c3", e.HexDigest())
}

func TestUsedForSecurityIsRecordedButInert(t *testing.T) {
	withFlag, err := New(WithName("crc-32-iso-hdlc"), WithUsedForSecurity(true))
	require.NoError(t, err)
	require.True(t, withFlag.UsedForSecurity())

	without, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	require.False(t, without.UsedForSecurity())

	withFlag.Update([]byte("123456789"))
	without.Update([]byte("123456789"))
	require.Equal(t, without.Uint64(), withFlag.Uint64())
}
