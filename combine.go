package gocrc

// Combine computes the digest that Update would produce from the
// concatenation of two byte strings, given only the digest of the first
// (crc1), the digest of the second computed independently with this same
// configuration (crc2), and the length in bytes of the second string
// (len2). It never touches crc1's own length or either string's bytes.
//
// This works by linearity: crc2's register already carries the second
// string's bytes together with the configured initial value shifted
// through len2 bytes. What's missing is crc1's register shifted through
// len2 zero bytes in place of that initial value, which is computed by
// loading crc1's register XORed with the initial value into the
// accumulator and feeding it len2 zero bytes. XORing that into crc2's
// register cancels the initial value's contribution and reconstructs the
// same accumulator Update(s1 + s2) would have reached.
func (e *Engine) Combine(crc1, crc2 uint64, len2 uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	mask := bitMask(e.width)
	if crc1 > mask {
		return 0, &CombineError{Kind: KindOverflow, Operand: "crc1", Message: "crc1 out of range"}
	}
	if crc2 > mask {
		return 0, &CombineError{Kind: KindOverflow, Operand: "crc2", Message: "crc2 out of range"}
	}
	if len2 == 0 {
		return crc1, nil
	}

	dirtyBackup := e.dirty
	accumBackup := e.accum

	c1 := crc1 ^ e.xorout
	c2 := crc2 ^ e.xorout
	if e.refout {
		c1 = bitSwap(c1, e.width)
		c2 = bitSwap(c2, e.width)
	}

	e.accum = e.internalize(c1)
	e.accum ^= e.init
	e.zeroBytesLocked(len2)
	accum1 := e.accum

	e.accum = e.internalize(c2)
	accum2 := e.accum

	e.accum = accum1 ^ accum2
	e.dirty = true
	result := e.digestLocked()

	e.accum = accumBackup
	e.dirty = dirtyBackup
	return result, nil
}
