// reconcile.go - Reconciliation: HelpRec, Rec, and the LDDecode lattice
// decoder they share.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import "golang.org/x/crypto/sha3"

// Reconciliation turns two ring elements that are close, but not equal, into
// an identical 256-bit string: the Responder runs HelpRec over its element
// to produce a public hint vector r (four values per coefficient-group, each
// in [0,4)) alongside its view of the shared secret, and the Initiator runs
// Rec over its own close-but-unequal element together with r to recover the
// same secret. The arithmetic follows the reconciliation formulas directly,
// keeping the same branchless, mask-based comparisons the rest of this
// package uses in reduce.go rather than a data-dependent if.

// sign returns all-ones (as int32, i.e. -1) if x < 0, else 0.
func sign(x int32) int32 { return x >> 31 }

// geq returns 1 if y >= t, else 0, without a data-dependent branch.
func geq(y, t int32) int32 {
	return sign(t-y-1) & 1
}

// absInt32 returns |x| without a data-dependent branch.
func absInt32(x int32) int32 {
	m := x >> 31
	return (x ^ m) - m
}

// mod4 reduces x to its representative in [0, 4).
func mod4(x int32) uint32 {
	return uint32(((x % 4) + 4) % 4)
}

// streamOutput expands seed and an 8-byte nonce (in which GetError sets the
// first byte and HelpRec the second to a small per-step index) into n
// pseudorandom bytes, standing in for
// the component design's keyed StreamOutput collaborator. Grounded on the
// same SHAKE absorb-then-squeeze pattern GetError and GenerateA use.
func streamOutput(seed []byte, nonce [8]byte, n int) []byte {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write(nonce[:])
	buf := make([]byte, n)
	if _, err := h.Read(buf); err != nil {
		panic("newhope: XOF read failed: " + err.Error())
	}
	return buf
}

// HelpRec produces the public reconciliation vector for x, using errorSeed
// and nonce to derive the randomness that breaks the tie between the two
// candidate decodings of each coefficient group.
func HelpRec(x *Poly, errorSeed []byte, nonce byte) Poly {
	var n8 [8]byte
	n8[1] = nonce
	randomBits := streamOutput(errorSeed, n8, 32)

	// Each threshold is the ceiling, not the floor, of the division: the
	// decision boundaries sit just above the exact fraction of Q.
	const (
		q4  = (Q + 3) / 4
		q2  = (Q + 1) / 2
		q34 = (3*Q + 3) / 4
		q54 = (5*Q + 3) / 4
		q32 = (3*Q + 1) / 2
		q74 = (7*Q + 3) / 4
	)

	var r Poly
	for i := 0; i < 256; i++ {
		bit := int32((randomBits[i/8] >> uint(i%8)) & 1)

		var y [4]int32
		for j := 0; j < 4; j++ {
			y[j] = 2*int32(x[i+256*j]) - bit
		}

		var v0, v1 [4]int32
		var norm int32
		for j := 0; j < 4; j++ {
			v0[j] = 4 - (geq(y[j], q4) + geq(y[j], q34) + geq(y[j], q54) + geq(y[j], q74))
			v1[j] = 3 - (geq(y[j], q2) + geq(y[j], Q) + geq(y[j], q32))
			norm += absInt32(2*y[j] - Q*v0[j])
		}

		m := sign(norm - Q) // all-ones iff norm < Q
		var chosen [4]int32
		for j := 0; j < 4; j++ {
			chosen[j] = (v0[j] & m) | (v1[j] &^ m)
		}
		normGEQ := int32(1) - (m & 1) // 1 iff norm >= Q (m is all-ones iff norm < Q)

		r[i] = mod4(chosen[0] - chosen[3])
		r[i+256] = mod4(chosen[1] - chosen[3])
		r[i+512] = mod4(chosen[2] - chosen[3])
		r[i+768] = mod4(2*chosen[3] + normGEQ)
	}
	return r
}

// ldDecode recovers a single bit from a four-coordinate lattice-decoding
// input, returning 1 when t lies close enough to the all-zero representative
// of the code's 0-class.
func ldDecode(t [4]int32) uint32 {
	const cneg = -8 * Q
	var norm int32
	for i := 0; i < 4; i++ {
		mask1 := sign(t[i])
		mask2 := sign(4*Q - absInt32(t[i]))
		value := (mask1 & (8*Q ^ cneg)) ^ cneg
		norm += absInt32(t[i] + (mask2 & value))
	}
	res := (sign(8*Q-norm) ^ 1) & 1
	return uint32(res)
}

// Rec recovers the 32-byte shared secret from x using the public
// reconciliation vector r produced by the peer's HelpRec.
func Rec(x *Poly, r *Poly) [SymSize]byte {
	var key [SymSize]byte
	for i := 0; i < 256; i++ {
		r768 := int32(r[i+768])
		t := [4]int32{
			8*int32(x[i]) - (2*int32(r[i])+r768)*Q,
			8*int32(x[i+256]) - (2*int32(r[i+256])+r768)*Q,
			8*int32(x[i+512]) - (2*int32(r[i+512])+r768)*Q,
			8*int32(x[i+768]) - r768*Q,
		}
		bit := ldDecode(t)
		key[i/8] |= byte(bit << uint(i%8))
	}
	return key
}
