// poly.go - Ring element arithmetic over R_q = Z_q[X]/(X^N+1).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// Poly holds the N coefficients of a ring element, either in coefficient
// representation or, after NTTForward, in the NTT (evaluation) domain.
// Add, Sub, PMul, NTTForward and NTTInverse return coefficients in [0, Q)
// for inputs in [0, Q). smul leaves coefficients above Q, and PMulAdd on
// such an accumulator keeps them congruent mod Q but not below Q; KeyGenA
// and AgreeB bring those results back to [0, Q) with correctionPoly or
// NTTInverse. uint32 (wider than strictly needed for q = 12289) leaves
// headroom for these un-reduced values.
type Poly [N]uint32

// Zero overwrites every coefficient of p with zero. Every code path that
// finishes with an ephemeral secret polynomial - a noise sample, an
// ephemeral key's NTT image - calls Zero on it before returning.
func (p *Poly) Zero() {
	for i := range p {
		p[i] = 0
	}
}

// Add computes p = a + b coefficientwise, reduced to [0, Q).
func (p *Poly) Add(a, b *Poly) {
	for i := range p {
		p[i] = reduceOnce(a[i] + b[i])
	}
}

// Sub computes p = a - b coefficientwise, reduced to [0, Q).
func (p *Poly) Sub(a, b *Poly) {
	for i := range p {
		p[i] = reduceOnce(a[i] + Q - b[i])
	}
}

// montMul multiplies two plain-domain residues and returns their product
// mod Q, via a two-pass Montgomery reduction: a first reduction brings x*y
// down to a value congruent to x*y*R^-1, still within uint32 range, and a
// second reduction against R^2 mod Q (montR2) multiplies the R^-1 back out,
// leaving x*y mod Q without ever performing a division.
func montMul(x, y uint32) uint32 {
	s := montgomeryReduce(uint64(x) * uint64(y))
	return reduceOnce(montgomeryReduce(uint64(s) * uint64(montR2)))
}

// PMul computes p = a * b, a coefficientwise (Hadamard) product in the NTT
// domain; the caller is responsible for having already applied NTTForward
// to both operands, and for applying NTTInverse to the result if a
// coefficient-domain polynomial is required.
func (p *Poly) PMul(a, b *Poly) {
	for i := range p {
		p[i] = montMul(a[i], b[i])
	}
}

// PMulAdd computes p = p + a*b in the NTT domain. Used to accumulate
// a*s + e into a single polynomial without materializing the intermediate
// product.
func (p *Poly) PMulAdd(a, b *Poly) {
	for i := range p {
		p[i] = reduceOnce(p[i] + montMul(a[i], b[i]))
	}
}

// Copy sets p = a.
func (p *Poly) Copy(a *Poly) {
	*p = *a
}
