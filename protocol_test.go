// protocol_test.go - End-to-end tests for KeyGenA, AgreeB, AgreeA.

package newhope

import (
	"crypto/subtle"
	"testing"

	"github.com/stretchr/testify/require"
)

const nTests = 100

func doTestExchange(t *testing.T) {
	require := require.New(t)

	state, msgA, err := KeyGenA(DefaultSuite{})
	require.NoError(err)
	require.Len(msgA, MessageASize)

	sharedB, msgB, err := AgreeB(DefaultSuite{}, msgA)
	require.NoError(err)
	require.Len(msgB, MessageBSize)

	sharedA, err := AgreeA(state, msgB)
	require.NoError(err)

	require.Equal(sharedA, sharedB)
}

func TestExchange(t *testing.T) {
	for i := 0; i < nTests; i++ {
		doTestExchange(t)
	}
}

func TestAgreeAStateIsSingleUse(t *testing.T) {
	require := require.New(t)

	state, msgA, err := KeyGenA(DefaultSuite{})
	require.NoError(err)

	_, msgB, err := AgreeB(DefaultSuite{}, msgA)
	require.NoError(err)

	_, err = AgreeA(state, msgB)
	require.NoError(err)

	_, err = AgreeA(state, msgB)
	require.ErrorIs(err, ErrStateReused)
}

func TestAgreeBRejectsMalformedMessage(t *testing.T) {
	require := require.New(t)

	_, _, err := AgreeB(DefaultSuite{}, make([]byte, MessageASize-1))
	require.ErrorIs(err, ErrInvalidMessageSize)
}

// TestAgreeAZeroizesStateOnFailure checks that a failed AgreeA call, here
// one given a malformed msgB, still leaves the Initiator's retained secret
// zeroized: AgreeA marks the state used and defers skA.Zero() before it even
// attempts to decode msgB, so a malformed message must not leave secret
// coefficients behind.
func TestAgreeAZeroizesStateOnFailure(t *testing.T) {
	require := require.New(t)

	state, _, err := KeyGenA(DefaultSuite{})
	require.NoError(err)

	zero := make([]byte, polyBytes)
	before := packBits((*[N]uint32)(&state.skA), 14)
	require.NotEqual(1, subtle.ConstantTimeCompare(before, zero))

	_, err = AgreeA(state, make([]byte, MessageBSize-1))
	require.ErrorIs(err, ErrInvalidMessageSize)

	after := packBits((*[N]uint32)(&state.skA), 14)
	require.Equal(1, subtle.ConstantTimeCompare(after, zero))
}

func TestBatchExchange(t *testing.T) {
	require := require.New(t)

	const batch = 8
	suitesA := make([]Suite, batch)
	suitesB := make([]Suite, batch)
	for i := range suitesA {
		suitesA[i] = DefaultSuite{}
		suitesB[i] = DefaultSuite{}
	}

	states, msgsA, err := BatchKeyGenA(suitesA)
	require.NoError(err)

	sharedB, msgsB, err := BatchAgreeB(suitesB, msgsA)
	require.NoError(err)

	sharedA, err := BatchAgreeA(states, msgsB)
	require.NoError(err)

	require.Equal(sharedA, sharedB)
}
