package gocrc

import "encoding/hex"

// digestLocked finalizes the accumulator into the external result, only
// when a call to Update since the last digest has left it dirty. Repeated
// calls to Digest, HexDigest or Uint64 with no intervening Update are
// therefore free after the first.
func (e *Engine) digestLocked() uint64 {
	if e.dirty {
		accum := e.accum
		if !e.refin {
			accum >>= 64 - uint(e.width)
		}
		if e.refin == e.refout {
			accum &= bitMask(e.width)
		} else {
			accum = bitSwap(accum, e.width)
		}
		e.result = accum ^ e.xorout
		e.dirty = false
	}
	return e.result
}

// Uint64 returns the current digest as a uint64, masked to Width bits.
func (e *Engine) Uint64() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.digestLocked()
}

// digestSize is the number of bytes Digest packs the result into: Width
// bits rounded up to a whole number of bytes.
func (e *Engine) digestSize() int {
	return int(e.width+ByteWidth-1) / ByteWidth
}

// Digest returns the current digest as a big-endian byte string, sized to
// hold Width bits.
func (e *Engine) Digest() []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	result := e.digestLocked()
	size := e.digestSize()
	out := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		out[i] = byte(result)
		result >>= ByteWidth
	}
	return out
}

// HexDigest returns Digest hex-encoded.
func (e *Engine) HexDigest() string {
	return hex.EncodeToString(e.Digest())
}
