package gocrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamsValidateOrdersFieldChecks(t *testing.T) {
	// poly is checked before init, so a params with both poly and init out
	// of range reports poly first.
	err := (Params{Width: 8, Poly: 0x1ff, Init: 0x1ff}).validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "poly", cfgErr.Field)
}

func TestParamsValidateAcceptsCatalogueEntries(t *testing.T) {
	for name, params := range canonicalParams {
		require.NoError(t, params.validate(), name)
	}
}
