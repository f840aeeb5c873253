package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/memtrack"
	"github.com/wippyai/variant/strutil"
)

// Script is the YAML schema for -script mode.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one scripted operation. Op selects which fields apply:
//
//	- op: assign   target: a   type: int   value: "5"
//	- op: expect   target: a   type: int   value: "5"
//	- op: expect   target: a   type: empty
//	- op: copy     target: b   from: a     (likewise move, swap)
//	- op: reset    target: a
type Step struct {
	Op     string `yaml:"op"`
	Target string `yaml:"target"`
	From   string `yaml:"from,omitempty"`
	Type   string `yaml:"type,omitempty"`
	Value  string `yaml:"value,omitempty"`
}

func runScript(path string, tr *memtrack.Tracker) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return errors.ParseFailed("script "+path, err)
	}
	if script.Name != "" {
		fmt.Printf("Script: %s\n", script.Name)
	}

	s := newSession(tr)
	applied := 0
	s.Events.Subscribe(func(Event) { applied++ })

	failures := 0
	for i, step := range script.Steps {
		msg, err := s.step(step)
		if err != nil {
			failures++
			fmt.Printf("  %2d FAIL %v\n", i+1, err)
			continue
		}
		fmt.Printf("  %2d ok   %s\n", i+1, msg)
	}
	fmt.Printf("%d steps, %d failed, %d mutations applied\n",
		len(script.Steps), failures, applied)

	if err := finish(s); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d step(s) failed", failures)
	}
	return nil
}

func (s *session) step(st Step) (string, error) {
	switch st.Op {
	case "assign":
		return s.Apply(strutil.Format("assign {0} {1} {2}", st.Target, st.Type, st.Value))
	case "copy", "move", "swap":
		return s.Apply(strutil.Format("{0} {1} {2}", st.Op, st.Target, st.From))
	case "reset":
		return s.Apply("reset " + st.Target)
	case "expect":
		return s.expect(st)
	default:
		return "", errors.InvalidInput(errors.OpScript, "unknown step op: "+st.Op)
	}
}

func (s *session) expect(st Step) (string, error) {
	v, err := s.value(st.Target)
	if err != nil {
		return "", err
	}

	if st.Type == "empty" {
		if !v.IsEmpty() {
			return "", errors.InvalidInput(errors.OpScript,
				st.Target+" = "+v.String()+", want empty")
		}
		return st.Target + " is empty", nil
	}

	match := false
	switch st.Type {
	case "int":
		want, perr := strconv.Atoi(st.Value)
		if perr != nil {
			return "", errors.ParseFailed("int literal "+strconv.Quote(st.Value), perr)
		}
		if p, ok := variant.TryAs[int](v); ok && *p == want {
			match = true
		}
	case "float":
		want, perr := strconv.ParseFloat(st.Value, 64)
		if perr != nil {
			return "", errors.ParseFailed("float literal "+strconv.Quote(st.Value), perr)
		}
		if p, ok := variant.TryAs[float64](v); ok && *p == want {
			match = true
		}
	case "string":
		if p, ok := variant.TryAs[string](v); ok && *p == st.Value {
			match = true
		}
	default:
		return "", errors.InvalidInput(errors.OpScript,
			"unknown expect type: "+st.Type+" (have int, float, string, empty)")
	}

	if !match {
		return "", errors.InvalidInput(errors.OpScript,
			st.Target+" = "+v.String()+", want "+st.Type+" "+st.Value)
	}
	return st.Target + " = " + v.String() + " as expected", nil
}
