package randinit

// Bounds on the Hamming weight of an acceptable word. A weight near 16
// gives close to even odds that combining the word with another value by
// addition, xor, or multiplication flips any given bit. The bias applied
// here is deliberately weak; rejecting more would make the output easier
// to guess.
const (
	minWeight = 8
	maxWeight = 32 - minWeight
)

// Accept reports whether w is suitable for seeding. A word is accepted
// when its Hamming weight lies in [8, 24] and each of its four bytes has
// at least one zero bit and at least one one bit (no 0x00 or 0xff byte).
func Accept(w uint32) bool {
	if h := HammingWeight(w); h < minWeight || h > maxWeight {
		return false
	}
	for i := 0; i < 4; i++ {
		switch byte(w >> (8 * i)) {
		case 0x00, 0xff:
			return false
		}
	}
	return true
}

// HammingWeight returns the number of set bits in w using Kernighan's
// method, clearing the lowest set bit until the word is zero.
func HammingWeight(w uint32) int {
	h := 0
	for ; w != 0; h++ {
		w &= w - 1
	}
	return h
}
