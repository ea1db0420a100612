// Command newhope-demo runs a single illustrative key exchange between an
// Initiator and a Responder in one process, and prints whether the two
// sides agreed on a shared secret. It is not a known-answer-test harness
// and carries no command-line flags; it exists to show the three
// operations wired together end to end.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/walterkilar/newhope"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "newhope-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	suite := newhope.DefaultSuite{}

	state, msgA, err := newhope.KeyGenA(suite)
	if err != nil {
		return fmt.Errorf("KeyGenA: %w", err)
	}
	fmt.Printf("Initiator -> Responder: %d bytes\n", len(msgA))

	sharedB, msgB, err := newhope.AgreeB(suite, msgA)
	if err != nil {
		return fmt.Errorf("AgreeB: %w", err)
	}
	fmt.Printf("Responder -> Initiator: %d bytes\n", len(msgB))

	sharedA, err := newhope.AgreeA(state, msgB)
	if err != nil {
		return fmt.Errorf("AgreeA: %w", err)
	}

	if !bytes.Equal(sharedA[:], sharedB[:]) {
		return fmt.Errorf("shared secrets disagree")
	}
	fmt.Printf("shared secret: %x\n", sharedA)
	return nil
}
