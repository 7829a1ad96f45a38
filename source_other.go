//go:build !linux

package randinit

import (
	cryptorand "crypto/rand"
	"io"
)

// OSSource returns the platform entropy source. Outside Linux the
// crypto/rand reader is used directly.
func OSSource() (io.Reader, error) {
	return cryptorand.Reader, nil
}
