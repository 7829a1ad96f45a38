//go:build linux

package randinit

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// OSSource returns the platform entropy source: getrandom(2) when the
// kernel supports it, otherwise the urandom device.
func OSSource() (io.Reader, error) {
	var probe [1]byte
	_, err := unix.Getrandom(probe[:], unix.GRND_NONBLOCK)
	if err == nil || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
		return getrandomReader{}, nil
	}
	// Old kernel without the system call.
	return DeviceSource(defaultDevice)
}

// getrandomReader reads from the kernel CSPRNG via getrandom(2). The
// call never returns short for requests up to 256 bytes, so larger
// requests are chunked to keep a pending signal from surfacing as a
// short read.
type getrandomReader struct{}

func (getrandomReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		c := len(p) - n
		if c > 256 {
			c = 256
		}
		m, err := unix.Getrandom(p[n:n+c], 0)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return n, err
		}
		n += m
	}
	return n, nil
}
