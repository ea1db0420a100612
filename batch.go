// batch.go - Running independent key-exchange instances in parallel.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import "sync"

// Each of the three protocol operations can be applied across a batch of
// wholly independent exchanges, each with its own Suite and its own
// buffers. No instance reads or writes another instance's state, so no
// lock is required; a sync.WaitGroup is the only synchronization primitive
// involved.

// BatchKeyGenA runs KeyGenA once per entry in suites, concurrently.
func BatchKeyGenA(suites []Suite) ([]*InitiatorState, [][]byte, error) {
	n := len(suites)
	states := make([]*InitiatorState, n)
	msgs := make([][]byte, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range suites {
		i := i
		go func() {
			defer wg.Done()
			states[i], msgs[i], errs[i] = KeyGenA(suites[i])
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return states, msgs, nil
}

// BatchAgreeB runs AgreeB once per (suite, message) pair, concurrently.
// msgsA must be the same length as suites.
func BatchAgreeB(suites []Suite, msgsA [][]byte) ([][SymSize]byte, [][]byte, error) {
	n := len(suites)
	shared := make([][SymSize]byte, n)
	msgsB := make([][]byte, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range suites {
		i := i
		go func() {
			defer wg.Done()
			shared[i], msgsB[i], errs[i] = AgreeB(suites[i], msgsA[i])
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return shared, msgsB, nil
}

// BatchAgreeA runs AgreeA once per (state, message) pair, concurrently.
// states must be the same length as msgsB; each state is consumed exactly
// once, matching AgreeA's single-use contract.
func BatchAgreeA(states []*InitiatorState, msgsB [][]byte) ([][SymSize]byte, error) {
	n := len(states)
	shared := make([][SymSize]byte, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range states {
		i := i
		go func() {
			defer wg.Done()
			shared[i], errs[i] = AgreeA(states[i], msgsB[i])
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return shared, nil
}
