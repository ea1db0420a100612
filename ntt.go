// ntt.go - Negacyclic number-theoretic transform over R_q = Z_q[X]/(X^N+1).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// A fused bit-reversed-order zetas table shared across butterfly levels,
// keyed by a running counter, is a common optimization but easy to get
// subtly wrong when hand-derived for a new modulus and ring dimension.
// This file instead keeps each step explicit: a twist by powers of psi
// (the primitive 2N-th root of unity), a standard iterative Cooley-Tukey
// transform keyed by powers of omega = psi^2 (the primitive N-th root),
// and an untwist by powers of psi^-1 on the way back. The textbook
// iterative FFT - bit-reversal permutation followed by ascending butterfly
// stages - is the well-established negacyclic NTT construction used
// throughout the ring-LWE literature; splitting it into named steps costs
// little at N = 1024 and keeps each derivation step checkable in isolation.

var (
	psiPow      [N]uint32
	psiInvPow   [N]uint32
	omegaPow    [N]uint32
	omegaInvPow [N]uint32
	bitRevTable [N]uint16
	nInv        uint32
)

func init() {
	g := findGenerator()

	// psi is a primitive 2N-th root of unity mod Q: psi = g^((Q-1)/2N).
	psi := modExp(g, (Q-1)/(2*N), Q)
	psiInv := modInverse(psi, Q)
	omega := modExp(psi, 2, Q)
	omegaInv := modInverse(omega, Q)

	p, pInv := int64(1), int64(1)
	for i := 0; i < N; i++ {
		psiPow[i] = uint32(p)
		psiInvPow[i] = uint32(pInv)
		p = (p * psi) % Q
		pInv = (pInv * psiInv) % Q
	}

	w, wInv := int64(1), int64(1)
	for i := 0; i < N; i++ {
		omegaPow[i] = uint32(w)
		omegaInvPow[i] = uint32(wInv)
		w = (w * omega) % Q
		wInv = (wInv * omegaInv) % Q
	}

	for i := 0; i < N; i++ {
		bitRevTable[i] = bitReverse(uint16(i), logN)
	}

	nInv = uint32(modInverse(N, Q))
}

// bitReverse reverses the low `bits` bits of x.
func bitReverse(x uint16, bits int) uint16 {
	var r uint16
	for i := 0; i < bits; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

func mulmod(a, b uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) % Q)
}

// iterativeTransform runs the standard bit-reversal-permute-then-butterfly
// iterative DFT over a, using twiddlePow[k*N/length] as the length-th root
// of unity power required by each butterfly. It is the textbook in-place
// Cooley-Tukey transform: correct for both the forward (twiddlePow =
// omegaPow) and inverse (twiddlePow = omegaInvPow, with a final scale by
// N^-1 applied by the caller) directions.
func iterativeTransform(a *Poly, twiddlePow *[N]uint32) {
	for i := 0; i < N; i++ {
		j := bitRevTable[i]
		if i < int(j) {
			a[i], a[j] = a[j], a[i]
		}
	}

	for length := 2; length <= N; length <<= 1 {
		half := length / 2
		step := N / length
		for start := 0; start < N; start += length {
			idx := 0
			for j := 0; j < half; j++ {
				u := a[start+j]
				v := mulmod(a[start+j+half], twiddlePow[idx])
				a[start+j] = reduceOnce(u + v)
				a[start+j+half] = reduceOnce(u + Q - v)
				idx += step
			}
		}
	}
}

// nttRef transforms p from coefficient representation to the NTT
// (evaluation) domain in place. Pointwise multiplication of two NTT-domain
// polynomials corresponds to multiplication in R_q of their preimages.
// nttRef and invnttRef are named for their role: a plain, portable
// implementation that the hwaccel hooks fall back to and that any
// accelerated path must match exactly.
func nttRef(p *Poly) {
	for i := range p {
		p[i] = mulmod(p[i], psiPow[i])
	}
	iterativeTransform(p, &omegaPow)
}

// invnttRef transforms p from the NTT domain back to coefficient
// representation in place. It is the exact inverse of nttRef.
func invnttRef(p *Poly) {
	iterativeTransform(p, &omegaInvPow)
	for i := range p {
		p[i] = mulmod(mulmod(p[i], nInv), psiInvPow[i])
	}
}

// NTTForward transforms p from coefficient representation to the NTT
// domain in place, via whichever implementation nttFn currently selects.
func NTTForward(p *Poly) { nttFn(p) }

// NTTInverse transforms p from the NTT domain back to coefficient
// representation in place, via whichever implementation invnttFn currently
// selects.
func NTTInverse(p *Poly) { invnttFn(p) }
