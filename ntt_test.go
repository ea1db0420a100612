// ntt_test.go - Tests for the number-theoretic transform.

package newhope

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoly(rng *rand.Rand) Poly {
	var p Poly
	for i := range p {
		p[i] = uint32(rng.Intn(Q))
	}
	return p
}

// schoolbookMul computes a*b mod (X^N+1) mod Q the slow, obviously-correct
// way, for comparison against the NTT-based PMul.
func schoolbookMul(a, b *Poly) Poly {
	var wide [2 * N]int64
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			wide[i+j] += int64(a[i]) * int64(b[j])
		}
	}
	var out Poly
	for i := 0; i < N; i++ {
		out[i] = uint32(mod(wide[i]-wide[i+N], Q))
	}
	return out
}

func TestNTTRoundTrip(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		p := randomPoly(rng)
		orig := p
		NTTForward(&p)
		NTTInverse(&p)
		require.Equal(orig, p)
	}
}

func TestNTTMultiplicationMatchesSchoolbook(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 10; trial++ {
		a := randomPoly(rng)
		b := randomPoly(rng)
		want := schoolbookMul(&a, &b)

		aNTT, bNTT := a, b
		NTTForward(&aNTT)
		NTTForward(&bNTT)
		var prodNTT Poly
		prodNTT.PMul(&aNTT, &bNTT)
		NTTInverse(&prodNTT)

		require.Equal(want, prodNTT)
	}
}

func TestBitReverseInvolution(t *testing.T) {
	require := require.New(t)
	for i := 0; i < N; i++ {
		require.Equal(uint16(i), bitReverse(bitReverse(uint16(i), logN), logN))
	}
}
