package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/delegate"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/memtrack"
	"github.com/wippyai/variant/strutil"
)

// Event describes one applied mutation, for log panes and op counters.
type Event struct {
	Op     string
	Target string
	Detail string
}

// session owns the demo registry and its named values. Every play mode
// (interactive, script, fuzz) drives the same command vocabulary through
// Apply; observers subscribe to Events for the mutations that happen.
type session struct {
	reg     *variant.Registry
	names   []string
	vals    map[string]*variant.Value
	tracker *memtrack.Tracker
	Events  delegate.Dispatcher[Event]
}

func newSession(tr *memtrack.Tracker) *session {
	reg := variant.MustRegistry(
		variant.Alt[int](),
		variant.Alt[float64](),
		variant.Alt[string](),
	)
	s := &session{
		reg:     reg,
		names:   []string{"a", "b"},
		vals:    make(map[string]*variant.Value),
		tracker: tr,
	}
	for _, n := range s.names {
		s.vals[n] = variant.New(reg)
	}
	return s
}

// Apply executes one command line and returns its rendering.
func (s *session) Apply(line string) (string, error) {
	fields := strings.Split(strutil.Collapse(line), " ")
	if len(fields) == 0 || fields[0] == "" {
		return "", errors.InvalidInput(errors.OpScript, "empty command")
	}
	op, args := fields[0], fields[1:]

	switch op {
	case "assign":
		if len(args) < 3 {
			return "", usage("assign <a|b> <int|float|string> <literal>")
		}
		return s.assign(args[0], args[1], strings.Join(args[2:], " "))

	case "as":
		if len(args) != 2 {
			return "", usage("as <a|b> <int|float|string>")
		}
		return s.access(args[0], args[1])

	case "is":
		if len(args) != 2 {
			return "", usage("is <a|b> <int|float|string>")
		}
		return s.query(args[0], args[1])

	case "copy", "move", "swap":
		if len(args) != 2 {
			return "", usage(op + " <dst> <src>")
		}
		return s.transfer(op, args[0], args[1])

	case "reset":
		if len(args) != 1 {
			return "", usage("reset <a|b>")
		}
		return s.reset(args[0])

	case "show":
		return s.show(), nil

	case "layout":
		l := s.reg.Layout()
		return fmt.Sprintf("alternatives=%d tag=%dB payload@%d size=%dB align=%dB",
			s.reg.Len(), l.TagSize, l.PayloadOffset, l.Size, l.Align), nil

	case "leaks":
		return fmt.Sprintf("%d live payload(s), %d tracked total",
			s.tracker.Live(), s.tracker.TotalTracked()), nil

	case "help":
		return "assign <v> <type> <lit> | as <v> <type> | is <v> <type> | " +
			"copy/move/swap <dst> <src> | reset <v> | show | layout | leaks | quit", nil

	default:
		return "", errors.InvalidInput(errors.OpScript, "unknown command: "+op)
	}
}

func (s *session) value(name string) (*variant.Value, error) {
	v, ok := s.vals[name]
	if !ok {
		return nil, errors.InvalidInput(errors.OpScript,
			"unknown value: "+name+" (have "+strings.Join(s.names, ", ")+")")
	}
	return v, nil
}

func (s *session) assign(name, typ, literal string) (string, error) {
	v, err := s.value(name)
	if err != nil {
		return "", err
	}
	switch typ {
	case "int":
		n, perr := strconv.Atoi(literal)
		if perr != nil {
			return "", errors.ParseFailed("int literal "+strconv.Quote(literal), perr)
		}
		variant.Assign(v, n)
	case "float":
		f, perr := strconv.ParseFloat(literal, 64)
		if perr != nil {
			return "", errors.ParseFailed("float literal "+strconv.Quote(literal), perr)
		}
		variant.Assign(v, f)
	case "string":
		variant.Assign(v, literal)
	default:
		return "", errors.InvalidInput(errors.OpScript,
			"unknown type: "+typ+" (have int, float, string)")
	}
	s.Events.Notify(Event{Op: "assign", Target: name, Detail: typ + " " + literal})
	return name + " = " + v.String(), nil
}

func (s *session) access(name, typ string) (string, error) {
	v, err := s.value(name)
	if err != nil {
		return "", err
	}
	var (
		rendered string
		ok       bool
	)
	switch typ {
	case "int":
		var p *int
		if p, ok = variant.TryAs[int](v); ok {
			rendered = strconv.Itoa(*p)
		}
	case "float":
		var p *float64
		if p, ok = variant.TryAs[float64](v); ok {
			rendered = strconv.FormatFloat(*p, 'g', -1, 64)
		}
	case "string":
		var p *string
		if p, ok = variant.TryAs[string](v); ok {
			rendered = strconv.Quote(*p)
		}
	default:
		return "", errors.InvalidInput(errors.OpScript,
			"unknown type: "+typ+" (have int, float, string)")
	}
	if !ok {
		return name + " does not hold " + typ + " (holds " + v.TypeName() + ")", nil
	}
	return name + " as " + typ + " = " + rendered, nil
}

func (s *session) query(name, typ string) (string, error) {
	v, err := s.value(name)
	if err != nil {
		return "", err
	}
	var is bool
	switch typ {
	case "int":
		is = variant.Is[int](v)
	case "float":
		is = variant.Is[float64](v)
	case "string":
		is = variant.Is[string](v)
	default:
		return "", errors.InvalidInput(errors.OpScript,
			"unknown type: "+typ+" (have int, float, string)")
	}
	return fmt.Sprintf("is %s %s = %v", name, typ, is), nil
}

func (s *session) transfer(op, dstName, srcName string) (string, error) {
	dst, err := s.value(dstName)
	if err != nil {
		return "", err
	}
	src, err := s.value(srcName)
	if err != nil {
		return "", err
	}
	switch op {
	case "copy":
		dst.CopyFrom(src)
	case "move":
		dst.MoveFrom(src)
	case "swap":
		dst.Swap(src)
	}
	s.Events.Notify(Event{Op: op, Target: dstName, Detail: "from " + srcName})
	return dstName + " = " + dst.String() + ", " + srcName + " = " + src.String(), nil
}

func (s *session) reset(name string) (string, error) {
	v, err := s.value(name)
	if err != nil {
		return "", err
	}
	v.Reset()
	s.Events.Notify(Event{Op: "reset", Target: name})
	return name + " = " + v.String(), nil
}

func (s *session) show() string {
	parts := make([]string, 0, len(s.names))
	for _, n := range s.names {
		parts = append(parts, n+" = "+s.vals[n].String())
	}
	return strings.Join(parts, ", ")
}

// destroyAll resets every value so the leak report only names real leaks.
func (s *session) destroyAll() {
	for _, n := range s.names {
		s.vals[n].Reset()
	}
}

func usage(u string) *errors.Error {
	return errors.InvalidInput(errors.OpScript, "usage: "+u)
}
