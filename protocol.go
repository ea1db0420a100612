// protocol.go - Key exchange orchestration: KeyGenA, AgreeB, AgreeA.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// InitiatorState holds the Initiator's ephemeral secret, an NTT-domain
// secret polynomial, between KeyGenA and AgreeA. A state is single-use:
// AgreeA zeroizes it on every exit path, and a second call returns
// ErrStateReused.
type InitiatorState struct {
	skA  Poly
	used bool
}

// KeyGenA runs the Initiator's first protocol step: it samples an ephemeral
// key pair, and returns both the retained secret (in state) and the message
// to send to the Responder.
func KeyGenA(suite Suite) (state *InitiatorState, msgA []byte, err error) {
	seed := make([]byte, SymSize)
	errorSeed := make([]byte, SymSize)
	defer zeroize(errorSeed)
	if err := suite.RandomBytes(seed); err != nil {
		return nil, nil, err
	}
	if err := suite.RandomBytes(errorSeed); err != nil {
		return nil, nil, err
	}

	a := GenerateA(seed)

	skA := GetError(errorSeed, 0)
	e := GetError(errorSeed, 1)
	defer skA.Zero()
	defer e.Zero()

	NTTForward(&skA)
	NTTForward(&e)
	smul(&e, 3)

	var b Poly
	b.Copy(&e)
	b.PMulAdd(&a, &skA)
	correctionPoly(&b)

	state = &InitiatorState{skA: skA}
	msgA = EncodeA(&b, seed)
	return state, msgA, nil
}

// AgreeB runs the Responder's single protocol step: given the Initiator's
// message, it derives the shared secret and the message to send back.
func AgreeB(suite Suite, msgA []byte) (sharedB [SymSize]byte, msgB []byte, err error) {
	b, seed, err := DecodeA(msgA)
	if err != nil {
		return [SymSize]byte{}, nil, err
	}

	errorSeed := make([]byte, SymSize)
	defer zeroize(errorSeed)
	if err := suite.RandomBytes(errorSeed); err != nil {
		return [SymSize]byte{}, nil, err
	}

	a := GenerateA(seed)

	skB := GetError(errorSeed, 0)
	e := GetError(errorSeed, 1)
	defer skB.Zero()
	defer e.Zero()

	NTTForward(&skB)
	NTTForward(&e)
	smul(&e, 3)

	var u Poly
	u.Copy(&e)
	u.PMulAdd(&a, &skB)
	correctionPoly(&u)

	ePrime := GetError(errorSeed, 2)
	defer ePrime.Zero()
	NTTForward(&ePrime)
	smul(&ePrime, 81)

	var v Poly
	v.Copy(&ePrime)
	v.PMulAdd(&b, &skB)
	NTTInverse(&v)
	twoReducePoly(&v)
	correctionPoly(&v)
	defer v.Zero()

	r := HelpRec(&v, errorSeed, 3)
	defer r.Zero()
	sharedB = Rec(&v, &r)

	msgB = EncodeB(&u, &r)
	return sharedB, msgB, nil
}

// AgreeA runs the Initiator's second and final protocol step, consuming
// state to recover the shared secret the Responder derived in AgreeB.
func AgreeA(state *InitiatorState, msgB []byte) (sharedA [SymSize]byte, err error) {
	if state == nil || state.used {
		return [SymSize]byte{}, ErrStateReused
	}
	state.used = true
	defer state.skA.Zero()

	u, r, err := DecodeB(msgB)
	if err != nil {
		return [SymSize]byte{}, err
	}
	defer r.Zero()

	var w Poly
	w.PMul(&state.skA, &u)
	NTTInverse(&w)
	twoReducePoly(&w)
	correctionPoly(&w)
	defer w.Zero()

	sharedA = Rec(&w, &r)
	return sharedA, nil
}

// zeroize overwrites b with zeros; every exported function that allocates
// an error seed or secret buffer defers a call to it (or to Poly.Zero).
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
