package gocrc

// buildBytewiseTable computes the 256-entry slice-by-1 table for poly/refin:
// table[b] is the accumulator that results from folding byte b into a
// zeroed accumulator, which is exactly what the per-byte update step below
// needs to fold one more byte in given the accumulator's current upper
// bits.
func buildBytewiseTable(poly uint64, refin bool) *[256]uint64 {
	table := new([256]uint64)
	for b := 0; b < tableByteCount; b++ {
		table[b] = updateWordRaw(0, poly, refin, uint64(b), ByteWidth)
	}
	return table
}

// updateBytewise folds data into the accumulator a byte at a time through
// e.bytewise.
func (e *Engine) updateBytewise(data []byte) {
	if len(data) == 0 {
		return
	}
	accum := e.accum
	table := e.bytewise
	if e.refin {
		for _, b := range data {
			upper := accum >> ByteWidth
			lower := table[(uint64(b)^accum)&0xff]
			accum = lower ^ upper
		}
	} else {
		for _, b := range data {
			lower := accum << ByteWidth
			upper := table[(uint64(b)^(accum>>(64-ByteWidth)))&0xff]
			accum = lower ^ upper
		}
	}
	e.accum = accum
	e.dirty = true
}
