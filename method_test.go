package gocrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMethodString(t *testing.T) {
	require.Equal(t, "bitwise", MethodBitwise.String())
	require.Equal(t, "bytewise", MethodBytewise.String())
	require.Equal(t, "wordwise", MethodWordwise.String())
}
