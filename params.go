// params.go - NewHope parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package newhope implements the NewHope Ring-Learning-With-Errors (R-LWE)
// key exchange of Alkim, Ducas, Poppelmann and Schwabe, instantiated over
// R_q = Z_q[X]/(X^N+1) with N = 1024 and q = 12289.
//
// Two parties, an Initiator and a Responder, derive a mutual 256-bit shared
// secret after a single round of message exchange: the Initiator calls
// KeyGenA to produce an ephemeral key pair and a message to send, the
// Responder calls AgreeB on that message to produce its own message and its
// view of the shared secret, and the Initiator calls AgreeA on the
// Responder's message to recover the same shared secret.
//
// The exchange is unauthenticated; binding it to an identity is the
// caller's responsibility.
package newhope

const (
	// SymSize is the size of the shared key and of the seeds used
	// throughout the protocol, in bytes.
	SymSize = 32

	// N is the ring dimension: R_q = Z_q[X]/(X^N + 1).
	N = 1024

	// logN is log2(N), the number of NTT butterfly levels.
	logN = 10

	// Q is the prime modulus.
	Q = 12289

	// polyBytes is the size of a polynomial packed at 14 bits/coefficient.
	polyBytes = 1792

	// recBytes is the size of a packed reconciliation vector (2 bits/coeff).
	recBytes = 256

	// MessageASize is the size in bytes of the Initiator's message: a
	// packed polynomial plus the 32-byte seed used to regenerate `a`.
	MessageASize = polyBytes + SymSize

	// MessageBSize is the size in bytes of the Responder's message: a
	// packed polynomial plus the packed reconciliation vector.
	MessageBSize = polyBytes + recBytes
)

// Params describes the fixed NewHope-1024 parameter set. NewHope as
// specified here has exactly one instantiation, unlike schemes with several
// interchangeable parameter sets selected by a module rank; Params lets
// callers query the message and shared-secret sizes through a value. The
// package's own code (KeyGenA, AgreeB, AgreeA and the codec) uses the
// package constants directly.
type Params struct{}

// NewHope1024 is the only supported parameter set.
var NewHope1024 = Params{}

// Name returns the name of the parameter set.
func (Params) Name() string { return "NewHope1024" }

// MessageASize returns the size in bytes of the Initiator's message.
func (Params) MessageASize() int { return MessageASize }

// MessageBSize returns the size in bytes of the Responder's message.
func (Params) MessageBSize() int { return MessageBSize }

// SharedSecretSize returns the size in bytes of the derived shared secret.
func (Params) SharedSecretSize() int { return SymSize }
