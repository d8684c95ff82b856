package gocrc

import "encoding/binary"

// buildWordwiseTable expands a bytewise table into the eight-times-256
// slice-by-8 table. Each of the eight 256-entry slices is the bytewise
// table chained through that many extra zero bytes, so that folding in an
// 8-byte word reduces to one XOR of eight independent table lookups
// instead of eight dependent byte steps.
//
// The C implementation this is ported from keys its table layout to the
// host's native endianness, because it reads each 8-byte word through a
// raw pointer cast. This port always reads words with encoding/binary
// instead, which needs no such cast and is unaffected by host byte order,
// so the table is built as if the host were always little-endian and the
// accumulator is byte-swapped around the fast loop only when refin is
// false, matching that fixed convention.
func buildWordwiseTable(bytewise *[256]uint64, refin bool) *[tableSliceCount * tableByteCount]uint64 {
	table := new([tableSliceCount * tableByteCount]uint64)
	byteswap := !refin

	for b := 0; b < tableByteCount; b++ {
		accum := bytewise[b]
		value := accum
		if byteswap {
			value = byteSwap64(value)
		}
		table[b] = value

		for slice := 1; slice < tableSliceCount; slice++ {
			if refin {
				upper := accum >> ByteWidth
				accum = bytewise[accum&0xff] ^ upper
			} else {
				lower := accum << ByteWidth
				upper := bytewise[(accum>>(64-ByteWidth))&0xff]
				accum = lower ^ upper
			}
			value = accum
			if byteswap {
				value = byteSwap64(value)
			}
			table[slice*tableByteCount+b] = value
		}
	}
	return table
}

func wordwiseCombine(table *[tableSliceCount * tableByteCount]uint64, accum uint64) uint64 {
	return table[7*tableByteCount+((accum>>0)&0xff)] ^
		table[6*tableByteCount+((accum>>8)&0xff)] ^
		table[5*tableByteCount+((accum>>16)&0xff)] ^
		table[4*tableByteCount+((accum>>24)&0xff)] ^
		table[3*tableByteCount+((accum>>32)&0xff)] ^
		table[2*tableByteCount+((accum>>40)&0xff)] ^
		table[1*tableByteCount+((accum>>48)&0xff)] ^
		table[0*tableByteCount+((accum>>56)&0xff)]
}

// updateWordwise folds data into the accumulator eight bytes at a time
// through e.wordwise, falling back to updateBytewise for any trailing
// partial word.
func (e *Engine) updateWordwise(data []byte) {
	if len(data) == 0 {
		return
	}
	if len(data) >= 8 {
		accum := e.accum
		if !e.refin {
			accum = byteSwap64(accum)
		}
		table := e.wordwise
		for len(data) >= 8 {
			word := binary.LittleEndian.Uint64(data[:8])
			accum ^= word
			accum = wordwiseCombine(table, accum)
			data = data[8:]
		}
		if !e.refin {
			accum = byteSwap64(accum)
		}
		e.accum = accum
		e.dirty = true
	}
	if len(data) > 0 {
		e.updateBytewise(data)
	}
}
