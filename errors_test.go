package gocrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigErrorFields(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		field  string
	}{
		{"width zero", Params{Width: 0, Poly: 1}, "width"},
		{"width too large", Params{Width: 65, Poly: 1}, "width"},
		{"poly zero", Params{Width: 8, Poly: 0}, "poly"},
		{"poly out of range", Params{Width: 8, Poly: 0x1FF}, "poly"},
		{"init out of range", Params{Width: 8, Poly: 1, Init: 0x1FF}, "init"},
		{"xorout out of range", Params{Width: 8, Poly: 1, XorOut: 0x1FF}, "xorout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			require.Equal(t, tt.field, cfgErr.Field)
			require.Equal(t, KindOverflow, cfgErr.Kind)
		})
	}
}

func TestConfigErrorValidWidthBoundaries(t *testing.T) {
	require.NoError(t, (Params{Width: 1, Poly: 1}).validate())
	require.NoError(t, (Params{Width: 64, Poly: 1}).validate())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "overflow", KindOverflow.String())
	require.Equal(t, "type", KindType.String())
	require.Equal(t, "key", KindKey.String())
	require.Equal(t, "runtime", KindRuntime.String())
}
