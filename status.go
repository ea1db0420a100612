// status.go - Error sentinels.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import "errors"

// A closed set of sentinel errors, rather than formatted ad-hoc errors, so
// callers can use errors.Is.
var (
	// ErrInvalidMessageSize is returned when a decoded protocol message does
	// not match the expected length for its kind.
	ErrInvalidMessageSize = errors.New("newhope: invalid message size")

	// ErrStateReused is returned when AgreeA is called twice against the
	// same Initiator state, or with a nil state. A zero-value
	// InitiatorState that KeyGenA did not create is not detected.
	ErrStateReused = errors.New("newhope: initiator state already consumed")
)
