package randinit

import (
	"fmt"
	"io"
)

// Pool geometry shared with the consuming random driver. The preamble
// prints these values so the consumer can assert that both sides were
// built with the same configuration.
const (
	// InputPoolShift is log2 of the input pool size in bits.
	InputPoolShift = 12

	// InputPoolWords and OutputPoolWords are the pool sizes in 32-bit
	// words.
	InputPoolWords  = 1 << (InputPoolShift - 5)
	OutputPoolShift = 10
	OutputPoolWords = 1 << (OutputPoolShift - 5)

	// TotalPoolWords covers the input pool and two output pools.
	TotalPoolWords = InputPoolWords + 2*OutputPoolWords
)

// Extended-mode geometry: eight 128-bit rows of hash constants, two per
// pool, plus eight extra words of counter state appended to the same
// array and exposed to the consumer as a derived pointer.
const (
	arrayRows    = 8
	ArrayWords   = 4 * arrayRows
	counterWords = 8
)

// wordsPerLine is the array literal layout width.
const wordsPerLine = 8

// WriteHeader writes the complete generated header: a comment line, the
// preamble defines, the pool seed block, and, in extended mode, the
// auxiliary constants block with its derived counter declaration. The
// output format is byte-compatible with the original C generator.
func (g *Generator) WriteHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "/* File generated by genrandinit */\n\n"+
		"#define INPUT_POOL_WORDS %d\n"+
		"#define OUTPUT_POOL_WORDS %d\n"+
		"#define INPUT_POOL_SHIFT %d\n\n",
		InputPoolWords, OutputPoolWords, InputPoolShift)
	if err != nil {
		return err
	}

	if err := g.WriteBlock(w, "pools", TotalPoolWords); err != nil {
		return err
	}
	if !g.extended {
		return nil
	}

	if _, err := fmt.Fprintf(w, "#define ARRAY_WORDS %d\n\n", ArrayWords); err != nil {
		return err
	}
	if err := g.WriteBlock(w, "constants", ArrayWords+counterWords); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "static u32 *counter = constants + ARRAY_WORDS ;\n")
	return err
}

// WriteBlock generates one block of nwords filtered words and writes it
// as a C array literal named name: hexadecimal values, eight per line,
// closed with "} ;".
func (g *Generator) WriteBlock(w io.Writer, name string, nwords int) error {
	words, err := g.Block(nwords)
	if err != nil {
		return err
	}
	return writeArray(w, name, words)
}

func writeArray(w io.Writer, name string, words []uint32) error {
	if _, err := fmt.Fprintf(w, "static u32 %s[] = {\n", name); err != nil {
		return err
	}
	for i, v := range words {
		sep := ", "
		switch {
		case i == len(words)-1:
			sep = " } ;\n"
		case i%wordsPerLine == wordsPerLine-1:
			sep = ",\n"
		}
		if _, err := fmt.Fprintf(w, "0x%08x%s", v, sep); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
