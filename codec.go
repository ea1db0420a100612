// codec.go - Wire encoding of ring elements and protocol messages.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// Rather than work out a separate fixed byte grouping for 14-bit
// coefficients and another for the 2-bit reconciliation vector,
// packBits/unpackBits below carry a little-endian bit accumulator across
// the whole polynomial; Encode14 and EncodeRec below are thin
// instantiations of the same routine rather than two hand-derived byte
// layouts.

// packBits packs N coefficients, each assumed to fit in width bits, into a
// little-endian bitstream of exactly N*width/8 bytes.
func packBits(coeffs *[N]uint32, width uint) []byte {
	out := make([]byte, N*int(width)/8)
	var acc uint32
	var accBits uint
	oi := 0
	for i := 0; i < N; i++ {
		acc |= coeffs[i] << accBits
		accBits += width
		for accBits >= 8 {
			out[oi] = byte(acc)
			acc >>= 8
			accBits -= 8
			oi++
		}
	}
	return out
}

// unpackBits is the inverse of packBits.
func unpackBits(b []byte, width uint) [N]uint32 {
	var out [N]uint32
	var acc uint32
	var accBits uint
	bi := 0
	mask := uint32(1)<<width - 1
	for i := 0; i < N; i++ {
		for accBits < width {
			acc |= uint32(b[bi]) << accBits
			accBits += 8
			bi++
		}
		out[i] = acc & mask
		acc >>= width
		accBits -= width
	}
	return out
}

// Encode14 packs p at 14 bits per coefficient into polyBytes bytes.
func Encode14(p *Poly) []byte {
	return packBits((*[N]uint32)(p), 14)
}

// Decode14 is the inverse of Encode14.
func Decode14(b []byte) Poly {
	return Poly(unpackBits(b, 14))
}

// EncodeRec packs a reconciliation vector (coefficients in [0,4)) at 2 bits
// per coefficient into recBytes bytes.
func EncodeRec(r *Poly) []byte {
	return packBits((*[N]uint32)(r), 2)
}

// DecodeRec is the inverse of EncodeRec.
func DecodeRec(b []byte) Poly {
	return Poly(unpackBits(b, 2))
}

// EncodeA serializes the Initiator's message: the packed public polynomial
// b followed by the 32-byte seed used to regenerate the shared `a`.
func EncodeA(b *Poly, seed []byte) []byte {
	out := make([]byte, 0, MessageASize)
	out = append(out, Encode14(b)...)
	out = append(out, seed...)
	return out
}

// DecodeA is the inverse of EncodeA.
func DecodeA(msg []byte) (b Poly, seed []byte, err error) {
	if len(msg) != MessageASize {
		return Poly{}, nil, ErrInvalidMessageSize
	}
	b = Decode14(msg[:polyBytes])
	seed = append([]byte(nil), msg[polyBytes:]...)
	return b, seed, nil
}

// EncodeB serializes the Responder's message: the packed public polynomial
// u followed by the packed reconciliation vector.
func EncodeB(u *Poly, rec *Poly) []byte {
	out := make([]byte, 0, MessageBSize)
	out = append(out, Encode14(u)...)
	out = append(out, EncodeRec(rec)...)
	return out
}

// DecodeB is the inverse of EncodeB.
func DecodeB(msg []byte) (u Poly, rec Poly, err error) {
	if len(msg) != MessageBSize {
		return Poly{}, Poly{}, ErrInvalidMessageSize
	}
	u = Decode14(msg[:polyBytes])
	rec = DecodeRec(msg[polyBytes:])
	return u, rec, nil
}
