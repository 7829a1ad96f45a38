package randinit

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"golang.org/x/crypto/chacha20"
)

// maxCipherRead is how many bytes may be produced from one key before
// the cipher is rekeyed from the seed source.
const maxCipherRead = 4 * 1024 * 1024

// PRNG is a ChaCha20 stream keyed from an entropy source. It serves as
// an optional whitening layer between the kernel source and the filter:
// replacement reads draw from the keystream instead of going back to the
// kernel for every rejected word. Not safe for concurrent use.
type PRNG struct {
	seedSrc io.Reader
	key     [chacha20.KeySize]byte
	nonce   [chacha20.NonceSize]byte
	cipher  *chacha20.Cipher
	read    int
}

// NewPRNG returns a PRNG keyed from seed.
func NewPRNG(seed io.Reader) (*PRNG, error) {
	p := &PRNG{seedSrc: seed}
	if err := p.reseed(); err != nil {
		return nil, fmt.Errorf("randinit: prng seed: %w", err)
	}
	return p, nil
}

// reseed draws a fresh key from the seed source, mixes it with the
// current keystream, and restarts the cipher under an incremented nonce.
func (p *PRNG) reseed() error {
	if _, err := io.ReadFull(p.seedSrc, p.key[:]); err != nil {
		return err
	}
	if p.cipher != nil {
		p.cipher.XORKeyStream(p.key[:], p.key[:])
	}
	cipher, err := chacha20.NewUnauthenticatedCipher(p.key[:], p.nonce[:])
	if err != nil {
		return err
	}
	p.cipher = cipher
	p.incNonce()
	p.read = 0
	return nil
}

// incNonce treats the nonce as a 96-bit little endian counter.
func (p *PRNG) incNonce() {
	n0 := binary.LittleEndian.Uint32(p.nonce[0:4])
	n1 := binary.LittleEndian.Uint32(p.nonce[4:8])
	n2 := binary.LittleEndian.Uint32(p.nonce[8:12])

	var carry uint32
	n0, carry = bits.Add32(n0, 1, 0)
	n1, carry = bits.Add32(n1, 0, carry)
	n2, _ = bits.Add32(n2, 0, carry)

	binary.LittleEndian.PutUint32(p.nonce[0:4], n0)
	binary.LittleEndian.PutUint32(p.nonce[4:8], n1)
	binary.LittleEndian.PutUint32(p.nonce[8:12], n2)
}

// Read fills s with keystream bytes, rekeying once the read volume
// crosses maxCipherRead. Read fails only if reseeding from the seed
// source fails.
func (p *PRNG) Read(s []byte) (n int, err error) {
	for p.read+len(s) > maxCipherRead {
		l := maxCipherRead - p.read
		p.cipher.XORKeyStream(s[:l], s[:l])
		if err := p.reseed(); err != nil {
			return n, err
		}
		n += l
		s = s[l:]
	}
	p.cipher.XORKeyStream(s, s)
	p.read += len(s)
	n += len(s)
	return n, nil
}
