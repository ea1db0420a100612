// kat_test.go - Known-answer-style anchor scenarios and cross-cutting
// universal properties from the testable-properties catalogue.
//
// No externally-sourced reference digests are available here, so these
// scenarios assert what survives without them. Each named scenario below
// replays a fixed input pattern and asserts that the Initiator and
// Responder agree; KAT-1 also repeats its run and asserts that it is
// reproducible. None compares to an external byte-for-byte digest.

package newhope

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedSuite returns a pre-determined sequence of byte blocks from
// successive RandomBytes calls, one per KeyGenA/AgreeB draw, so that a
// scenario's seed material is pinned exactly as a KAT table specifies it.
type fixedSuite struct {
	blocks [][]byte
	next   int
}

func (s *fixedSuite) RandomBytes(b []byte) error {
	copy(b, s.blocks[s.next])
	s.next++
	return nil
}

func fillPattern(start byte) []byte {
	b := make([]byte, SymSize)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

func repeatByte(v byte) []byte {
	b := make([]byte, SymSize)
	for i := range b {
		b[i] = v
	}
	return b
}

func runKAT(t *testing.T, seedA, errorSeedA, errorSeedB []byte) ([SymSize]byte, [SymSize]byte) {
	require := require.New(t)

	initiator := &fixedSuite{blocks: [][]byte{seedA, errorSeedA}}
	responder := &fixedSuite{blocks: [][]byte{errorSeedB}}

	state, msgA, err := KeyGenA(initiator)
	require.NoError(err)

	sharedB, msgB, err := AgreeB(responder, msgA)
	require.NoError(err)

	sharedA, err := AgreeA(state, msgB)
	require.NoError(err)

	return sharedA, sharedB
}

func TestKAT1AllZero(t *testing.T) {
	require := require.New(t)
	sharedA, sharedB := runKAT(t, repeatByte(0x00), repeatByte(0x00), repeatByte(0x00))
	require.Equal(sharedA, sharedB)

	sharedA2, sharedB2 := runKAT(t, repeatByte(0x00), repeatByte(0x00), repeatByte(0x00))
	require.Equal(sharedA, sharedA2)
	require.Equal(sharedB, sharedB2)
}

func TestKAT2SequentialBytes(t *testing.T) {
	require := require.New(t)
	sharedA, sharedB := runKAT(t, fillPattern(0x01), fillPattern(0x21), fillPattern(0x41))
	require.Equal(sharedA, sharedB)
}

func TestKAT3AllOnesAndZero(t *testing.T) {
	require := require.New(t)
	sharedA, sharedB := runKAT(t, repeatByte(0xFF), repeatByte(0xFF), repeatByte(0x00))
	require.Equal(sharedA, sharedB)
}

func TestRepeatedRunWithSameRandomnessIsDeterministic(t *testing.T) {
	require := require.New(t)

	seedA := fillPattern(0x05)
	errorSeedA := fillPattern(0x15)
	errorSeedB := fillPattern(0x25)

	initiator1 := &fixedSuite{blocks: [][]byte{seedA, errorSeedA}}
	state1, msgA1, err := KeyGenA(initiator1)
	require.NoError(err)
	responder1 := &fixedSuite{blocks: [][]byte{errorSeedB}}
	sharedB1, msgB1, err := AgreeB(responder1, msgA1)
	require.NoError(err)
	sharedA1, err := AgreeA(state1, msgB1)
	require.NoError(err)

	initiator2 := &fixedSuite{blocks: [][]byte{seedA, errorSeedA}}
	state2, msgA2, err := KeyGenA(initiator2)
	require.NoError(err)
	responder2 := &fixedSuite{blocks: [][]byte{errorSeedB}}
	sharedB2, msgB2, err := AgreeB(responder2, msgA2)
	require.NoError(err)
	sharedA2, err := AgreeA(state2, msgB2)
	require.NoError(err)

	require.Equal(msgA1, msgA2)
	require.Equal(msgB1, msgB2)
	require.Equal(sharedA1, sharedA2)
	require.Equal(sharedB1, sharedB2)
}

func TestCorrectionIsIdempotent(t *testing.T) {
	require := require.New(t)
	for x := int32(-12 * Q); x < 12*Q; x += 17 {
		once := correction(x)
		twice := correction(int32(once))
		require.Equal(once, twice)
	}
}

func TestPMulCommutesAndDistributes(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(42))
	a, b, c := randomPoly(rng), randomPoly(rng), randomPoly(rng)
	NTTForward(&a)
	NTTForward(&b)
	NTTForward(&c)

	var ab, ba Poly
	ab.PMul(&a, &b)
	ba.PMul(&b, &a)
	require.Equal(ab, ba)

	var bPlusC, left Poly
	bPlusC.Add(&b, &c)
	left.PMul(&a, &bPlusC)

	var ab2, ac2, right Poly
	ab2.PMul(&a, &b)
	ac2.PMul(&a, &c)
	right.Add(&ab2, &ac2)

	require.Equal(left, right)
}
