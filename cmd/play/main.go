package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/memtrack"
	"github.com/wippyai/variant/result"
)

func main() {
	var (
		scriptFile  = flag.String("script", "", "Path to YAML op script")
		fuzzOps     = flag.Int("fuzz", 0, "Apply N random operations and check invariants")
		seed        = flag.Uint64("seed", 1, "Seed for -fuzz")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging to stderr")
	)
	flag.Parse()

	if !*interactive && *scriptFile == "" && *fuzzOps <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: play -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       play -script <file.yaml>")
		fmt.Fprintln(os.Stderr, "       play -fuzz <n> [-seed <s>]")
		os.Exit(1)
	}

	if err := run(*scriptFile, *fuzzOps, *seed, *interactive, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scriptFile string, fuzzOps int, seed uint64, interactive, verbose bool) error {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer func() { _ = l.Sync() }()
		variant.SetLogger(l)
		result.SetLogger(l)
	}

	tracker := memtrack.New()
	variant.SetTracker(tracker)

	switch {
	case interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(tracker)
	case scriptFile != "":
		return runScript(scriptFile, tracker)
	default:
		return runFuzz(fuzzOps, seed, tracker)
	}
}

// finish destroys the session's values and reports what is still alive.
// Anything outstanding at this point leaked.
func finish(s *session) error {
	s.destroyAll()
	if leaked := s.tracker.Report(variant.Logger()); leaked > 0 {
		return fmt.Errorf("%d leaked payload(s)", leaked)
	}
	return nil
}
