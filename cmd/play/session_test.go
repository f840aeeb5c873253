package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/variant"
	verrors "github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/memtrack"
	"github.com/wippyai/variant/randutil"
)

func TestApplyCommands(t *testing.T) {
	s := newSession(memtrack.New())

	steps := []struct {
		line string
		want string
	}{
		{"assign a int 5", "a = variant(int: 5)"},
		{"as a int", "a as int = 5"},
		{"is a int", "is a int = true"},
		{"is a string", "is a string = false"},
		{"assign a float 5.5", "a = variant(float64: 5.5)"},
		{"assign b string hello world", "b = variant(string: hello world)"},
		{"as b string", `b as string = "hello world"`},
		{"copy a b", "a = variant(string: hello world), b = variant(string: hello world)"},
		{"swap a b", "a = variant(string: hello world), b = variant(string: hello world)"},
		{"reset a", "a = variant(empty)"},
		{"as a int", "a does not hold int (holds empty)"},
		{"move a b", "a = variant(string: hello world), b = variant(string: )"},
		{"show", "a = variant(string: hello world), b = variant(string: )"},
	}
	for _, st := range steps {
		got, err := s.Apply(st.line)
		if err != nil {
			t.Fatalf("Apply(%q) error: %v", st.line, err)
		}
		if got != st.want {
			t.Errorf("Apply(%q) = %q, want %q", st.line, got, st.want)
		}
	}
}

func TestApplyWhitespaceTolerant(t *testing.T) {
	s := newSession(memtrack.New())

	got, err := s.Apply("  assign   a  int   7 ")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got != "a = variant(int: 7)" {
		t.Errorf("Apply = %q", got)
	}
}

func TestApplyErrors(t *testing.T) {
	s := newSession(memtrack.New())

	tests := []struct {
		name string
		line string
		kind verrors.Kind
	}{
		{"unknown command", "frobnicate a", verrors.KindInvalidInput},
		{"unknown value", "assign z int 1", verrors.KindInvalidInput},
		{"unknown type", "assign a bytes 1", verrors.KindInvalidInput},
		{"bad int literal", "assign a int five", verrors.KindParse},
		{"bad float literal", "assign a float x", verrors.KindParse},
		{"missing args", "assign a", verrors.KindInvalidInput},
		{"empty line", "", verrors.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Apply(tt.line)
			if err == nil {
				t.Fatalf("Apply(%q) succeeded", tt.line)
			}
			verr, ok := err.(*verrors.Error)
			if !ok {
				t.Fatalf("error type %T, want *errors.Error", err)
			}
			if verr.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", verr.Kind, tt.kind)
			}
		})
	}
}

func TestApplyNotifiesObservers(t *testing.T) {
	s := newSession(memtrack.New())
	var events []string
	s.Events.Subscribe(func(e Event) { events = append(events, e.Op+" "+e.Target) })

	mustApply(t, s, "assign a int 1")
	mustApply(t, s, "copy b a")
	mustApply(t, s, "is a int") // queries do not notify
	mustApply(t, s, "reset a")

	want := []string{"assign a", "copy b", "reset a"}
	if strings.Join(events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", events, want)
	}
}

func TestStepExpect(t *testing.T) {
	s := newSession(memtrack.New())

	mustStep(t, s, Step{Op: "assign", Target: "a", Type: "int", Value: "5"})
	mustStep(t, s, Step{Op: "expect", Target: "a", Type: "int", Value: "5"})
	mustStep(t, s, Step{Op: "copy", Target: "b", From: "a"})
	mustStep(t, s, Step{Op: "expect", Target: "b", Type: "int", Value: "5"})
	mustStep(t, s, Step{Op: "reset", Target: "a"})
	mustStep(t, s, Step{Op: "expect", Target: "a", Type: "empty"})

	if _, err := s.step(Step{Op: "expect", Target: "b", Type: "int", Value: "99"}); err == nil {
		t.Error("expect with wrong value passed")
	}
	if _, err := s.step(Step{Op: "expect", Target: "b", Type: "string", Value: "5"}); err == nil {
		t.Error("expect with wrong type passed")
	}
	if _, err := s.step(Step{Op: "launch", Target: "b"}); err == nil {
		t.Error("unknown step op passed")
	}
}

func TestRunScriptDemo(t *testing.T) {
	if err := runScript(filepath.Join("testdata", "demo.yaml"), memtrack.New()); err != nil {
		t.Fatalf("demo script failed: %v", err)
	}
}

func TestRunScriptFailure(t *testing.T) {
	script := `
name: failing
steps:
  - op: assign
    target: a
    type: int
    value: "1"
  - op: expect
    target: a
    type: int
    value: "2"
`
	path := filepath.Join(t.TempDir(), "fail.yaml")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runScript(path, memtrack.New()); err == nil {
		t.Error("failing script reported success")
	}
}

func TestRunScriptBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("steps: {not a list"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := runScript(path, memtrack.New())
	if err == nil {
		t.Fatal("malformed YAML accepted")
	}
	verr, ok := err.(*verrors.Error)
	if !ok || verr.Kind != verrors.KindParse {
		t.Errorf("error = %v, want parse kind", err)
	}
}

func TestRandomOpsHoldInvariants(t *testing.T) {
	tr := memtrack.New()
	variant.SetTracker(tr)
	defer variant.SetTracker(nil)

	s := newSession(tr)
	r := randutil.New(99)

	for i := 0; i < 500; i++ {
		line := s.randomOp(r)
		if _, err := s.Apply(line); err != nil {
			t.Fatalf("op %d (%q): %v", i+1, line, err)
		}
		if live := tr.Live(); live > len(s.names) {
			t.Fatalf("op %d (%q): %d live payloads across %d values",
				i+1, line, live, len(s.names))
		}
	}

	s.destroyAll()
	if live := tr.Live(); live != 0 {
		t.Errorf("%d payloads leaked after destroying all values", live)
	}
}

func mustApply(t *testing.T, s *session, line string) {
	t.Helper()
	if _, err := s.Apply(line); err != nil {
		t.Fatalf("Apply(%q): %v", line, err)
	}
}

func mustStep(t *testing.T, s *session, st Step) {
	t.Helper()
	if _, err := s.step(st); err != nil {
		t.Fatalf("step %+v: %v", st, err)
	}
}
