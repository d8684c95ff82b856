package gocrc

// ByteWidth is the number of bits in a byte, the unit Update consumes.
const ByteWidth = 8

// MaxWidth is the largest CRC register width this package supports.
const MaxWidth uint8 = 64

// MaxValue is the all-ones uint64, the widest possible register value.
const MaxValue uint64 = ^uint64(0)

// tableByteCount is the number of entries in a single-byte lookup table.
const tableByteCount = 256

// tableSliceCount is the number of byte-indexed tables a wordwise lookup
// table is built from, one per byte of the 64-bit accumulator.
const tableSliceCount = 8

// LongJobThreshold is the number of input bytes an Engine processes before
// releasing and re-acquiring its mutex during a single Update call, so a
// very large Update on one Engine doesn't starve other goroutines waiting
// on the same Engine.
const LongJobThreshold = 2048

// defaultName is the catalogue entry New builds when no name or Params are
// given, matching the original CRC module's default.
const defaultName = "crc-32"
