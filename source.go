package randinit

import (
	"fmt"
	"io"
	"os"
)

// defaultDevice is the classical kernel entropy device.
const defaultDevice = "/dev/urandom"

// DeviceSource opens an entropy device file for reading. The handle is
// held for the life of the process; the tool exits immediately after the
// header is written, so no explicit close is required.
func DeviceSource(path string) (io.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("randinit: open %s: %w", path, err)
	}
	return f, nil
}
