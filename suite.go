// suite.go - Pluggable randomness source.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import (
	"crypto/rand"
	"io"
)

// Suite supplies the one primitive the protocol needs but does not define
// itself: a source of uniformly random bytes for seeds. The
// expansion of those seeds into polynomials (GenerateA, GetError, HelpRec)
// is specified in full and always goes through SHAKE; only the initial
// entropy is pluggable, separating a deterministic expansion layer from the
// io.Reader it seeds from.
type Suite interface {
	// RandomBytes fills b with uniformly random bytes.
	RandomBytes(b []byte) error
}

// DefaultSuite sources randomness from crypto/rand.
type DefaultSuite struct{}

// RandomBytes fills b using crypto/rand.Reader.
func (DefaultSuite) RandomBytes(b []byte) error {
	_, err := io.ReadFull(rand.Reader, b)
	return err
}
