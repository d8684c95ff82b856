package gocrc

// Method selects which update kernel an Engine uses to fold input bytes
// into its accumulator. All three compute identical digests; they trade
// setup cost and memory for throughput.
type Method int

const (
	// MethodBitwise processes one bit at a time. It needs no lookup table,
	// but it is the slowest by far.
	MethodBitwise Method = iota

	// MethodBytewise processes one byte at a time against a 256-entry
	// lookup table (slice-by-1).
	MethodBytewise

	// MethodWordwise processes eight bytes at a time against an
	// eight-times-256-entry lookup table (slice-by-8), falling back to
	// MethodBytewise for a trailing run of fewer than eight bytes. Words
	// are read with encoding/binary, so input alignment plays no part.
	MethodWordwise
)

func (m Method) String() string {
	switch m {
	case MethodBitwise:
		return "bitwise"
	case MethodBytewise:
		return "bytewise"
	case MethodWordwise:
		return "wordwise"
	default:
		return "unknown"
	}
}
