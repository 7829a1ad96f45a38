package randinit

import (
	"bytes"
	"io"
	"testing"
)

func TestPRNGDeterministicFromSeedSource(t *testing.T) {
	a, err := NewPRNG(NewBlake2Source([]byte("prng seed")))
	if err != nil {
		t.Fatalf("NewPRNG() error = %v", err)
	}
	b, _ := NewPRNG(NewBlake2Source([]byte("prng seed")))
	c, _ := NewPRNG(NewBlake2Source([]byte("other seed")))

	buf1 := make([]byte, 128)
	buf2 := make([]byte, 128)
	buf3 := make([]byte, 128)
	a.Read(buf1)
	b.Read(buf2)
	c.Read(buf3)

	if !bytes.Equal(buf1, buf2) {
		t.Error("identical seed sources should produce identical keystreams")
	}
	if bytes.Equal(buf1, buf3) {
		t.Error("different seed sources should produce different keystreams")
	}
}

func TestPRNGAdvances(t *testing.T) {
	p, err := NewPRNG(NewBlake2Source([]byte("advance")))
	if err != nil {
		t.Fatalf("NewPRNG() error = %v", err)
	}
	first := make([]byte, 64)
	second := make([]byte, 64)
	p.Read(first)
	p.Read(second)
	if bytes.Equal(first, second) {
		t.Error("successive reads should differ")
	}
}

func TestPRNGSeedSourceFailure(t *testing.T) {
	_, err := NewPRNG(io.LimitReader(NewBlake2Source([]byte("x")), 8))
	if err == nil {
		t.Fatal("NewPRNG() with an exhausted seed source should fail")
	}
}

func TestPRNGReseedAcrossReadLimit(t *testing.T) {
	p, err := NewPRNG(NewBlake2Source([]byte("reseed")))
	if err != nil {
		t.Fatalf("NewPRNG() error = %v", err)
	}

	// Force the next read to straddle the rekey boundary.
	p.read = maxCipherRead - 8
	buf := make([]byte, 64)
	n, err := p.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != len(buf) {
		t.Fatalf("Read() = %d, want %d", n, len(buf))
	}
	if p.read != len(buf)-8 {
		t.Errorf("post-reseed read count = %d, want %d", p.read, len(buf)-8)
	}
}

func TestPRNGReseedFailureAcrossReadLimit(t *testing.T) {
	seed := io.LimitReader(NewBlake2Source([]byte("one key only")), 32)
	p, err := NewPRNG(seed)
	if err != nil {
		t.Fatalf("NewPRNG() error = %v", err)
	}

	p.read = maxCipherRead
	buf := make([]byte, 16)
	if _, err := p.Read(buf); err == nil {
		t.Fatal("Read() across the rekey boundary should fail when the seed source is exhausted")
	}
}
