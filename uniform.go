// uniform.go - Uniform public polynomial generation.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import "golang.org/x/crypto/sha3"

// uniformBlockBytes is the chunk size GenerateA reads from the XOF between
// exhaustion checks. About 75% of 14-bit candidates fall below q, so the N
// coefficients take roughly 2,730 bytes, about six blocks of this size.
// A streaming-rejection structure:
// read SHAKE-128 output in blocks and discard out-of-range candidates,
// here a 14-bit candidate width matched to q = 12289.
const uniformBlockBytes = 504 // a multiple of SHAKE-128's 168-byte rate

// GenerateA deterministically expands a public seed into the single public
// ring element `a` shared by both parties, via rejection sampling over a
// SHAKE-128 stream. Both the Initiator and the Responder call this with the
// same seed to agree on `a` without transmitting N*14 bits of it; the
// Initiator's message instead carries the much shorter seed.
func GenerateA(seed []byte) Poly {
	h := sha3.NewShake128()
	h.Write(seed)

	var p Poly
	buf := make([]byte, uniformBlockBytes)
	pos := 0
	filled := 0

	nextByte := func() byte {
		if pos == filled {
			if _, err := h.Read(buf); err != nil {
				panic("newhope: XOF read failed: " + err.Error())
			}
			pos = 0
			filled = len(buf)
		}
		b := buf[pos]
		pos++
		return b
	}

	for i := 0; i < N; {
		lo := nextByte()
		hi := nextByte()
		val := uint16(lo) | (uint16(hi&0x3f) << 8) // 14 low bits
		if val < Q {
			p[i] = uint32(val)
			i++
		}
	}
	return p
}
