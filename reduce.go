// reduce.go - Modular reduction primitives.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

const (
	// montRLog is log2(R), the Montgomery radix used by montgomeryReduce,
	// chosen as R = 2^18 for q = 12289.
	montRLog = 18
	montRMask = (1 << montRLog) - 1
)

// montQInv satisfies montQInv == -q^-1 mod 2^montRLog, the constant
// montgomeryReduce needs. Derived once at init time via the extended
// Euclidean algorithm (numtheory.go) rather than transcribed by hand, to
// avoid silently shipping a wrong magic constant.
var montQInv = uint32((int64(1)<<montRLog - modInverse(Q, int64(1)<<montRLog)) & montRMask)

// montR2 is R^2 mod q, the constant used to lift a plain residue into the
// Montgomery domain via montgomeryReduce(montR2 * x); montMul (poly.go)
// uses it to carry a product back out of Montgomery form.
var montR2 = uint32(modExp(int64(1)<<montRLog, 2, Q))

// montgomeryReduce computes a value congruent to a * R^-1 mod q, where
// R = 2^montRLog.
func montgomeryReduce(a uint64) uint32 {
	u := (uint32(a) * montQInv) & montRMask
	t := a + uint64(u)*Q
	return uint32(t >> montRLog)
}

// barrettShift and barrettMul implement Barrett reduction for inputs well
// within uint32 range, using an explicit Barrett multiplier computed once
// by the Go compiler from q rather than a hand-tuned shift, so the
// technique needs no per-modulus tuning.
const (
	barrettShift = 32
	barrettMul   = (uint64(1) << barrettShift) / Q
)

// barrettReduce brings a, assumed to be a non-negative value comfortably
// within uint32 range, to within a small multiple of q.
func barrettReduce(a uint32) uint32 {
	u := (uint64(a) * barrettMul) >> barrettShift
	return a - uint32(u)*Q
}

// reduceOnce reduces x, assumed to satisfy 0 <= x < 2*Q, to its canonical
// representative in [0, Q). Branchless: the conditional subtraction is
// realized via an arithmetic-shift sign mask, never a data-dependent
// branch, per the component design's constant-time discipline.
func reduceOnce(x uint32) uint32 {
	d := int32(x) - Q
	mask := uint32(d >> 31) // all-ones iff d < 0, i.e. iff x < Q
	return uint32(d) + (mask & Q)
}

// twoReduce brings x, assumed to satisfy |x| < 12*Q (the RelaxedCoeff
// budget the NTT and pointwise operations produce), into [0, 2*Q). It
// first biases x to a non-negative value congruent mod Q, then reduces with
// a single barrettReduce: the standard one-step Barrett bound guarantees
// the quotient estimate is off by at most one for any dividend that fits in
// uint32, so the result always lands in [0, 2*Q) without a data-dependent
// loop or branch.
func twoReduce(x int32) uint32 {
	v := uint32(int64(x) + 12*Q)
	return barrettReduce(v)
}

// correction maps a coefficient from any signed representative within the
// RelaxedCoeff budget (|x| < 12*Q) to its canonical residue in [0, Q): the
// coarse twoReduce brings it to [0, 2*Q), then reduceOnce cancels any
// remaining over-subtraction.
func correction(x int32) uint32 {
	return reduceOnce(twoReduce(x))
}

// correctionPoly applies correction to every coefficient of p in place.
func correctionPoly(p *Poly) {
	for i := range p {
		p[i] = correction(int32(p[i]))
	}
}

// twoReducePoly applies twoReduce to every coefficient of p in place,
// bringing an NTT-inverse output (which invnttRef already leaves in
// [0, Q)) to [0, 2*Q) without fully canonicalizing to [0, Q).
func twoReducePoly(p *Poly) {
	for i := range p {
		p[i] = twoReduce(int32(p[i]))
	}
}

// smul multiplies every coefficient of p by the small positive constant k
// (3 and 81 are the only values the protocol uses), leaving the result as
// an un-reduced 32-bit relaxed coefficient; the caller is responsible for
// keeping subsequent operations within their stated reduction budget.
func smul(p *Poly, k uint32) {
	for i := range p {
		p[i] = p[i] * k
	}
}
