package randinit

import "golang.org/x/crypto/blake2b"

// Blake2Source is a deterministic byte stream produced by repeatedly
// hashing a 64-byte state with Blake2b-512. Given the same seed it
// yields the same stream, which makes generator behavior reproducible in
// tests and in the command's diagnostic seed mode. It must never back a
// production build; the whole point of the tool is a different header
// every compile.
type Blake2Source struct {
	data [64]byte // current Blake2b-512 output
	pos  int      // position in current output (0-63)
}

// NewBlake2Source returns a source whose stream is fully determined by
// seed. The seed is hashed once to form the initial state.
func NewBlake2Source(seed []byte) *Blake2Source {
	s := &Blake2Source{
		pos: 64, // force initial generation
	}
	hash := blake2b.Sum512(seed)
	copy(s.data[:], hash[:])
	return s
}

// generate produces the next 64 bytes of the stream by hashing the
// current state.
func (s *Blake2Source) generate() {
	hash := blake2b.Sum512(s.data[:])
	copy(s.data[:], hash[:])
	s.pos = 0
}

// Read fills p with the next bytes of the stream. It never fails.
func (s *Blake2Source) Read(p []byte) (int, error) {
	for i := range p {
		if s.pos >= len(s.data) {
			s.generate()
		}
		p[i] = s.data[s.pos]
		s.pos++
	}
	return len(p), nil
}
