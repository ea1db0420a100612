// numtheory.go - Modular arithmetic helpers used to derive NTT constants.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// The twiddle tables and Montgomery constants are, per the component design,
// "constants... the implementer must ship them or derive them at startup".
// This file derives them: it finds a generator of Z_q^*, builds a primitive
// 2N-th root of unity psi from it, and exposes the small number-theoretic
// primitives (modular exponentiation, modular inverse via the extended
// Euclidean algorithm) that ntt.go and reduce.go use to build their tables
// in an init function. Deriving these at program startup rather than
// transcribing 1024-entry literal tables follows the same technique the
// lattigo ring package uses in PrimitiveRoot/ModExp (subring.go) to build
// its own NTT parameters from a found generator.

// modExp computes base^exp mod m for m > 0, exp >= 0.
func modExp(base, exp, m int64) int64 {
	base %= m
	if base < 0 {
		base += m
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % m
		}
		base = (base * base) % m
		exp >>= 1
	}
	return result
}

// extendedGCD returns g = gcd(a, b) and x, y such that a*x + b*y = g.
func extendedGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := extendedGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// modInverse computes the multiplicative inverse of a modulo m.
func modInverse(a, m int64) int64 {
	g, x, _ := extendedGCD(a, m)
	if g != 1 && g != -1 {
		panic("newhope: modInverse: arguments not coprime")
	}
	x %= m
	if x < 0 {
		x += m
	}
	return x
}

// factorsOf12288 are the distinct prime factors of q-1 = 12289-1 = 12288 =
// 2^12 * 3, used by isPrimitiveRoot to test candidate generators of Z_q^*.
var factorsOf12288 = []int64{2, 3}

// isPrimitiveRoot reports whether g generates the full multiplicative group
// Z_q^*, of order q-1.
func isPrimitiveRoot(g int64) bool {
	const order = Q - 1
	for _, p := range factorsOf12288 {
		if modExp(g, order/p, Q) == 1 {
			return false
		}
	}
	return true
}

// findGenerator returns the smallest generator of Z_q^*.
func findGenerator() int64 {
	for g := int64(2); g < Q; g++ {
		if isPrimitiveRoot(g) {
			return g
		}
	}
	panic("newhope: no generator found mod Q")
}
