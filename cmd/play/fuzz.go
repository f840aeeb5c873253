package main

import (
	"fmt"

	"github.com/wippyai/variant/memtrack"
	"github.com/wippyai/variant/randutil"
	"github.com/wippyai/variant/strutil"
)

// runFuzz applies n seeded random operations and checks the container's
// invariants after every one: the op must succeed, and the number of live
// payloads can never exceed the number of values.
func runFuzz(n int, seed uint64, tr *memtrack.Tracker) error {
	fmt.Printf("Fuzzing %d ops (seed %d)\n", n, seed)

	s := newSession(tr)
	r := randutil.New(seed)

	counts := make(map[string]int)
	s.Events.Subscribe(func(e Event) { counts[e.Op]++ })

	for i := 0; i < n; i++ {
		line := s.randomOp(r)
		if _, err := s.Apply(line); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, line, err)
		}
		if live := s.tracker.Live(); live > len(s.names) {
			return fmt.Errorf("op %d (%s): %d live payloads across %d values",
				i+1, line, live, len(s.names))
		}
	}

	for _, op := range []string{"assign", "copy", "move", "swap", "reset"} {
		fmt.Printf("  %-6s %d\n", op, counts[op])
	}
	fmt.Printf("  final  %s\n", s.show())
	return finish(s)
}

func (s *session) randomOp(r *randutil.Rand) string {
	name := randutil.Pick(r, s.names)
	ops := []string{"assign", "assign", "copy", "move", "swap", "reset"}
	switch randutil.Pick(r, ops) {
	case "assign":
		switch randutil.Pick(r, []string{"int", "float", "string"}) {
		case "int":
			return strutil.Format("assign {0} int {1}", name, r.IntBetween(-999, 999))
		case "float":
			return strutil.Format("assign {0} float {1}", name, r.Float64())
		default:
			return strutil.Format("assign {0} string s{1}", name, r.Uint32())
		}
	case "copy":
		return strutil.Format("copy {0} {1}", name, randutil.Pick(r, s.names))
	case "move":
		return strutil.Format("move {0} {1}", name, randutil.Pick(r, s.names))
	case "swap":
		return strutil.Format("swap {0} {1}", name, randutil.Pick(r, s.names))
	default:
		return "reset " + name
	}
}
