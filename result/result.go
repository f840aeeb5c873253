// Package result provides a two-alternative tagged value specialized for
// fallible operations: a Result holds either a success payload of type T
// or an error payload of type E.
//
// Unlike the general-purpose variant.Value, a Result discriminates
// positionally rather than by type, so T and E may be the same Go type:
// Result[string, string] is legal and its two alternatives stay distinct.
// The misuse policy matches the core container: accessing the wrong
// alternative is a caller bug and fails fatally with a structured
// diagnostic instead of returning corrupted data.
package result

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/variant/errors"
)

// Discriminant states. The zero tag is the empty state so that a zero
// Result is empty by construction.
const (
	tagEmpty uint8 = iota
	tagOk
	tagErr
)

// Result holds either a success payload of type T or an error payload of
// type E. The zero Result is empty and answers false to both IsOk and
// HasError; empty results arise from default construction and from
// moved-from states.
type Result[T, E any] struct {
	tag uint8
	box any
}

// Ok returns a Result holding the success payload v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{tag: tagOk, box: v}
}

// Err returns a Result holding the error payload e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{tag: tagErr, box: e}
}

// IsOk reports whether r holds a success payload.
func (r Result[T, E]) IsOk() bool { return r.tag == tagOk }

// HasError reports whether r holds an error payload.
func (r Result[T, E]) HasError() bool { return r.tag == tagErr }

// Get returns the success payload. Calling Get on a Result that is not ok
// is a contract violation: the diagnostic is logged and the call panics.
func (r Result[T, E]) Get() T {
	switch r.tag {
	case tagOk:
		return r.box.(T)
	case tagErr:
		fatal(errors.TagMismatch(errors.OpAccess, "ok", "error"))
	default:
		fatal(errors.EmptyValue(errors.OpAccess, "ok"))
	}
	panic("unreachable")
}

// GetOrDefault returns the success payload when r is ok, and fallback
// otherwise, including for the empty state. It never fails.
func (r Result[T, E]) GetOrDefault(fallback T) T {
	if r.tag != tagOk {
		return fallback
	}
	return r.box.(T)
}

// GetError returns the error payload. Calling GetError on a Result that
// does not hold an error is a contract violation and fails fatally.
func (r Result[T, E]) GetError() E {
	switch r.tag {
	case tagErr:
		return r.box.(E)
	case tagOk:
		fatal(errors.TagMismatch(errors.OpAccess, "error", "ok"))
	default:
		fatal(errors.EmptyValue(errors.OpAccess, "error"))
	}
	panic("unreachable")
}

// String renders the result's state for diagnostics.
func (r Result[T, E]) String() string {
	switch r.tag {
	case tagOk:
		return fmt.Sprintf("result(ok: %v)", r.box)
	case tagErr:
		return fmt.Sprintf("result(err: %v)", r.box)
	default:
		return "result(empty)"
	}
}

func fatal(err *errors.Error) {
	Logger().Error("contract violation", zap.Error(err))
	panic(err)
}
