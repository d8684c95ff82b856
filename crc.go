package gocrc

// Sum is a one-shot convenience wrapper: it builds an Engine from params,
// feeds it data, and returns the digest, without exposing the Engine
// itself. It is the fastest way to checksum one byte string against a
// known configuration.
func Sum(params Params, data []byte) (uint64, error) {
	e, err := New(WithWidth(params.Width), WithPoly(params.Poly), WithInit(params.Init),
		WithRefIn(params.RefIn), WithRefOut(params.RefOut), WithXorOut(params.XorOut))
	if err != nil {
		return 0, err
	}
	e.Update(data)
	return e.Uint64(), nil
}

// SumName is Sum against a catalogue or alias name instead of an explicit
// Params, e.g. SumName("crc-32", data) or SumName("xmodem", data).
func SumName(name string, data []byte) (uint64, error) {
	e, err := New(WithName(name), WithData(data))
	if err != nil {
		return 0, err
	}
	return e.Uint64(), nil
}
