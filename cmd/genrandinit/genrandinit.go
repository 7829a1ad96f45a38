// genrandinit writes a header of filtered random constants to standard
// output for compilation into a kernel random-pool implementation.
//
// The invoking build system is expected to redirect stdout to a file,
// include that file from the consumer source, and delete it after the
// build so every compile gets a fresh seed. Exit status is 0 on success
// and 1 on any fatal error; callers must check the status rather than
// the output, since a failure can leave partial output behind.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decred/slog"
	"github.com/opd-ai/go-randinit"

	flags "github.com/jessevdk/go-flags"
)

type config struct {
	Extended   bool   `short:"x" long:"extended" description:"also emit the auxiliary hash constants block and counter declaration"`
	Device     string `short:"d" long:"device" description:"read entropy from this device instead of the platform default"`
	PRNG       bool   `long:"prng" description:"draw words from a ChaCha20 stream keyed from the entropy source"`
	Seed       string `long:"seed" description:"deterministic seed for diagnosing output format; never use for real builds"`
	MaxRetries int    `long:"max-retries" description:"abort if a single word needs more than this many replacements (0 = no limit)"`
	Verbose    bool   `short:"v" long:"verbose" description:"log replacement statistics to stderr"`
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS]"
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.Verbose {
		backend := slog.NewBackend(os.Stderr)
		logger := backend.Logger("GENR")
		logger.SetLevel(slog.LevelDebug)
		randinit.UseLogger(logger)
	}

	src, err := entropySource(&cfg)
	if err != nil {
		fatalf("genrandinit: %v, cannot continue\n", err)
	}

	gen, err := randinit.New(randinit.Config{
		Source:     src,
		Extended:   cfg.Extended,
		MaxRetries: cfg.MaxRetries,
	})
	if err != nil {
		fatalf("genrandinit: %v, cannot continue\n", err)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := gen.WriteHeader(out); err != nil {
		fatalf("genrandinit: %v, cannot continue\n", err)
	}
	if err := out.Flush(); err != nil {
		fatalf("genrandinit: write stdout: %v\n", err)
	}
}

// entropySource resolves the configured source: a deterministic
// diagnostic stream, an explicit device, the optional PRNG whitening
// layer, or nil for the platform default.
func entropySource(cfg *config) (io.Reader, error) {
	var src io.Reader
	switch {
	case cfg.Seed != "":
		src = randinit.NewBlake2Source([]byte(cfg.Seed))
	case cfg.Device != "":
		var err error
		src, err = randinit.DeviceSource(cfg.Device)
		if err != nil {
			return nil, err
		}
	}
	if cfg.PRNG {
		seed := src
		if seed == nil {
			var err error
			seed, err = randinit.OSSource()
			if err != nil {
				return nil, err
			}
		}
		return randinit.NewPRNG(seed)
	}
	return src, nil
}
