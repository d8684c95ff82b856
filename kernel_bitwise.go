package gocrc

// updateWordRaw folds width bits of word (held in its low bits) into accum
// under the given internalized poly and reflection, one bit at a time; bits
// of word above width are ignored. It backs UpdateWord and the trailing
// bits of ZeroBits, and also generates every bytewise table entry, by
// calling it with accum zeroed and width fixed at ByteWidth.
func updateWordRaw(accum, poly uint64, refin bool, word uint64, width uint8) uint64 {
	if width == 0 {
		return accum
	}
	word &= bitMask(width)
	if refin {
		accum ^= word
		for i := uint8(0); i < width; i++ {
			if accum&1 != 0 {
				accum = (accum >> 1) ^ poly
			} else {
				accum >>= 1
			}
		}
	} else {
		accum ^= word << (64 - width)
		for i := uint8(0); i < width; i++ {
			if accum&topBit != 0 {
				accum = (accum << 1) ^ poly
			} else {
				accum <<= 1
			}
		}
	}
	return accum
}

const topBit = uint64(1) << 63

// updateWord feeds a single word of up to 64 bits, read from the low width
// bits of word, into the accumulator. It is the primitive UpdateWord
// exposes, and is always computed bitwise regardless of the Engine's
// configured Method, since no catalogue table is indexed by anything
// narrower than a full byte.
func (e *Engine) updateWord(word uint64, width uint8) {
	e.accum = updateWordRaw(e.accum, e.poly, e.refin, word, width)
	if width > 0 {
		e.dirty = true
	}
}

// updateBitwise folds data into the accumulator one bit at a time.
func (e *Engine) updateBitwise(data []byte) {
	if len(data) == 0 {
		return
	}
	accum := e.accum
	poly := e.poly
	if e.refin {
		for _, b := range data {
			accum ^= uint64(b)
			for i := 0; i < ByteWidth; i++ {
				if accum&1 != 0 {
					accum = (accum >> 1) ^ poly
				} else {
					accum >>= 1
				}
			}
		}
	} else {
		for _, b := range data {
			accum ^= uint64(b) << (64 - ByteWidth)
			for i := 0; i < ByteWidth; i++ {
				if accum&topBit != 0 {
					accum = (accum << 1) ^ poly
				} else {
					accum <<= 1
				}
			}
		}
	}
	e.accum = accum
	e.dirty = true
}
