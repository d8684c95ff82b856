package gocrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// kernelAgreementNames covers the three reflection combinations the
// catalogue contains (refin/refout both false, both true, and refin=false
// with refout=true; no entry has refin=true with refout=false) and widths
// that aren't a multiple of 8, so the bitwise, bytewise and wordwise
// kernels are compared across both input orientations and a
// non-byte-aligned register.
var kernelAgreementNames = []string{
	"crc-32-iso-hdlc", // refin=true, refout=true
	"crc-32-bzip2",    // refin=false, refout=false
	"crc-12-umts",     // refin=false, refout=true, width=12
	"crc-14-darc",     // refin=true, refout=true, width=14
	"crc-8-smbus",     // refin=false, refout=false, width=8
}

func TestKernelsAgreeAcrossCatalogue(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x00},
		[]byte("1"),
		[]byte("123456789"),
		make([]byte, 1),
		make([]byte, 7),
		make([]byte, 8),
		make([]byte, 9),
		make([]byte, 17),
		make([]byte, 64),
		make([]byte, 257),
	}
	for i := range payloads[9] {
		payloads[9][i] = byte(i)
	}
	for i := range payloads[10] {
		payloads[10][i] = byte(i * 3)
	}

	for _, name := range kernelAgreementNames {
		params, err := Lookup(name)
		require.NoError(t, err)

		for _, payload := range payloads {
			bitwise, err := New(WithWidth(params.Width), WithPoly(params.Poly), WithInit(params.Init),
				WithRefIn(params.RefIn), WithRefOut(params.RefOut), WithXorOut(params.XorOut),
				WithMethod(MethodBitwise))
			require.NoError(t, err)
			bytewise, err := New(WithWidth(params.Width), WithPoly(params.Poly), WithInit(params.Init),
				WithRefIn(params.RefIn), WithRefOut(params.RefOut), WithXorOut(params.XorOut),
				WithMethod(MethodBytewise))
			require.NoError(t, err)
			wordwise, err := New(WithWidth(params.Width), WithPoly(params.Poly), WithInit(params.Init),
				WithRefIn(params.RefIn), WithRefOut(params.RefOut), WithXorOut(params.XorOut),
				WithMethod(MethodWordwise))
			require.NoError(t, err)

			bitwise.Update(payload)
			bytewise.Update(payload)
			wordwise.Update(payload)

			require.Equal(t, bitwise.Uint64(), bytewise.Uint64(), "%s bytewise len=%d", name, len(payload))
			require.Equal(t, bitwise.Uint64(), wordwise.Uint64(), "%s wordwise len=%d", name, len(payload))
		}
	}
}

func TestKernelsAgreeAcrossSplitUpdates(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i)
	}

	whole, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	whole.Update(data)

	split, err := New(WithName("crc-32-iso-hdlc"))
	require.NoError(t, err)
	split.Update(data[:1])
	split.Update(data[1:8])
	split.Update(data[8:9])
	split.Update(data[9:300])

	require.Equal(t, whole.Uint64(), split.Uint64())
}
