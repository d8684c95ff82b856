package gocrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumNameCheckValues(t *testing.T) {
	check := []byte("123456789")
	tests := []struct {
		name     string
		expected uint64
	}{
		{"crc-32-iso-hdlc", 0xCBF43926},
		{"crc-16-xmodem", 0x31C3},
		{"crc-16-modbus", 0x4B37},
		{"crc-64-xz", 0x995DC9BBDF1939FA},
		{"crc-8-smbus", 0xF4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SumName(tt.name, check)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestSumMatchesSumName(t *testing.T) {
	params, err := Lookup("crc-32-iso-hdlc")
	require.NoError(t, err)

	viaParams, err := Sum(params, []byte("123456789"))
	require.NoError(t, err)

	viaName, err := SumName("crc-32-iso-hdlc", []byte("123456789"))
	require.NoError(t, err)

	require.Equal(t, viaName, viaParams)
}

func TestSumNameUnknown(t *testing.T) {
	_, err := SumName("not-a-real-crc", []byte("x"))
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, KindKey, cfgErr.Kind)
}
