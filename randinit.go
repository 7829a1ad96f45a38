// Package randinit generates headers of filtered random constants for
// seeding a kernel random-pool implementation.
//
// The generator reads raw entropy from the operating system, rejects
// statistically degenerate 32-bit words (extreme Hamming weights, or any
// byte with all bits clear or all bits set), and prints the survivors as
// C array initializers. A build system redirects the output to a header
// file, compiles it into the consumer, and deletes the file afterwards so
// every build carries a fresh seed.
//
// Example usage:
//
//	gen, err := randinit.New(randinit.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := gen.WriteHeader(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package randinit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrShortRead is returned when the entropy source delivers fewer
	// bytes than requested. Short reads are unrecoverable: the tool runs
	// once per build and a degraded seed must fail the build.
	ErrShortRead = errors.New("short read from entropy source")

	// ErrRetryLimit is returned when a word could not be replaced with
	// an acceptable one within Config.MaxRetries attempts.
	ErrRetryLimit = errors.New("replacement retry limit exceeded")
)

// Config supplies the parameters for a Generator.
type Config struct {
	// Source is the entropy source. When nil, the platform default
	// returned by OSSource is used.
	Source io.Reader

	// Extended additionally emits the auxiliary hash constants block and
	// the derived counter declaration.
	Extended bool

	// MaxRetries caps how many replacement words may be drawn for a
	// single array position before giving up. Zero means no cap, which
	// matches the historical behavior: the replacement loop is unbounded
	// in principle and terminates only with overwhelming probability for
	// any reasonable entropy source.
	MaxRetries int
}

// Generator produces blocks of filtered random words and writes them as
// C array literals. It is not safe for concurrent use; the tool is a
// single-threaded run-to-completion procedure.
type Generator struct {
	src        io.Reader
	extended   bool
	maxRetries int

	replaced int // words re-drawn because the filter rejected them
}

// New returns a Generator for the given configuration. When cfg.Source
// is nil the platform entropy source is opened; failure to open it is
// fatal to the caller, there is no degraded mode.
func New(cfg Config) (*Generator, error) {
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("randinit: negative MaxRetries: %d", cfg.MaxRetries)
	}
	src := cfg.Source
	if src == nil {
		var err error
		src, err = OSSource()
		if err != nil {
			return nil, fmt.Errorf("randinit: no entropy source: %w", err)
		}
	}
	return &Generator{
		src:        src,
		extended:   cfg.Extended,
		maxRetries: cfg.MaxRetries,
	}, nil
}

// Block returns nwords filtered random 32-bit words. The whole block is
// read from the source in a single request, then words failing the
// acceptance filter are replaced in order, each with freshly read 4-byte
// words, until the filter passes. Every returned word satisfies Accept.
func (g *Generator) Block(nwords int) ([]uint32, error) {
	if nwords <= 0 {
		return nil, fmt.Errorf("randinit: invalid block size: %d", nwords)
	}

	buf := make([]byte, 4*nwords)
	if err := g.fill(buf); err != nil {
		return nil, err
	}
	words := make([]uint32, nwords)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}

	var scratch [4]byte
	for i, w := range words {
		for tries := 0; !Accept(w); tries++ {
			if g.maxRetries > 0 && tries >= g.maxRetries {
				return nil, fmt.Errorf("randinit: word %d: %w", i, ErrRetryLimit)
			}
			if err := g.fill(scratch[:]); err != nil {
				return nil, err
			}
			w = binary.LittleEndian.Uint32(scratch[:])
			g.replaced++
		}
		words[i] = w
	}

	log.Debugf("block of %d words complete, %d replacements so far",
		nwords, g.replaced)
	return words, nil
}

// fill reads exactly len(p) bytes from the source. Anything less is a
// short read and unrecoverable.
func (g *Generator) fill(p []byte) error {
	n, err := io.ReadFull(g.src, p)
	if err != nil {
		return fmt.Errorf("randinit: read %d of %d bytes (%v): %w",
			n, len(p), err, ErrShortRead)
	}
	return nil
}
