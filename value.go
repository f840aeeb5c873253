package variant

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/abi"
	"github.com/wippyai/variant/internal/cell"
)

// Value is a tagged value: it owns one storage cell bound to a fixed
// registry and is, at any observable instant, either empty or holding
// exactly one live payload of one alternative. The tag never names an
// alternative with no live payload and vice versa; every mutation destroys
// the current payload before constructing the next one.
//
// Values are plain single-owner types: no operation blocks, suspends, or
// synchronizes. Sharing one across goroutines requires external locking.
type Value struct {
	reg  *Registry
	cell cell.Cell
}

// New returns an empty value over r.
func New(r *Registry) *Value {
	if r == nil {
		fatal(errors.InvalidInput(errors.OpDefine, "nil registry"))
	}
	return &Value{reg: r}
}

// Of returns a value holding v as alternative T.
func Of[T any](r *Registry, v T) *Value {
	out := New(r)
	Assign(out, v)
	return out
}

// Assign destroys the current payload, if any, then constructs x as the
// live alternative. Assigning a type outside the registry is a contract
// violation; it panics before any state changes, so the effect is
// all-or-nothing.
func Assign[T any](v *Value, x T) {
	idx := IndexOf[T](v.reg)
	if idx == NotFound {
		fatal(errors.NotRegistered(errors.OpAssign, abi.TypeName(typeOf[T]())))
	}
	v.Reset()
	v.cell.Construct(v.reg.table, idx, x)
	v.cell.SetTrack(track(v.reg.table[idx].Name))
}

// Is reports whether the live alternative is T. A type outside the
// registry is never live, so asking about one reports false; the lookup
// sentinel keeps a miss from ever aliasing index 0.
func Is[T any](v *Value) bool {
	return v.cell.Tag() == IndexOf[T](v.reg)
}

// As returns a direct pointer to the live payload as alternative T. It
// fails fatally, with a logged panic carrying the structured diagnostic,
// when the value is empty, the live alternative is not T, or T is outside
// the registry. The pointer is invalidated by any later mutating call on v:
// the payload behind it may have been destroyed and replaced even though
// nothing visibly reallocated.
func As[T any](v *Value) *T {
	idx := IndexOf[T](v.reg)
	if idx == NotFound {
		fatal(errors.NotRegistered(errors.OpAccess, abi.TypeName(typeOf[T]())))
	}
	tag := v.cell.Tag()
	if tag == Empty {
		fatal(errors.EmptyValue(errors.OpAccess, v.reg.TypeName(idx)))
	}
	if tag != idx {
		fatal(errors.TagMismatch(errors.OpAccess, v.reg.TypeName(idx), v.reg.TypeName(tag)))
	}
	return v.cell.Box().(*T)
}

// TryAs returns a pointer to the live payload when the live alternative is
// T. It never fails: probing an empty value, another alternative, or a
// type outside the registry reports false.
func TryAs[T any](v *Value) (*T, bool) {
	idx := IndexOf[T](v.reg)
	if idx == NotFound || v.cell.Tag() != idx {
		return nil, false
	}
	return v.cell.Box().(*T), true
}

// Tag returns the live alternative's index, or Empty.
func (v *Value) Tag() Index { return v.cell.Tag() }

// IsEmpty reports whether v holds no payload.
func (v *Value) IsEmpty() bool { return v.cell.IsEmpty() }

// TypeName returns the live alternative's type name, or "empty".
func (v *Value) TypeName() string { return v.reg.TypeName(v.cell.Tag()) }

// Registry returns the alternative set v is bound to.
func (v *Value) Registry() *Registry { return v.reg }

// Reset destroys the current payload, if any, leaving v empty. Resetting
// an empty value runs no destroy op, so a second Reset in a row is a
// no-op.
func (v *Value) Reset() {
	if v.cell.IsEmpty() {
		return
	}
	id := v.cell.TrackID()
	v.cell.Destroy(v.reg.table)
	release(id)
}

// Clone returns a new value holding a deep copy of v's payload, via the
// alternative's Clone method when the payload type has one. The source is
// unaffected; cloning an empty value yields an empty value.
func (v *Value) Clone() *Value {
	out := New(v.reg)
	out.cell.CopyFrom(v.reg.table, &v.cell)
	if !out.cell.IsEmpty() {
		out.cell.SetTrack(track(v.reg.table[out.cell.Tag()].Name))
	}
	return out
}

// CopyFrom replaces v's state with a deep copy of other's. Self-assignment
// is an explicit no-op; both values must be bound to the same registry.
func (v *Value) CopyFrom(other *Value) {
	if v == other {
		return
	}
	v.mustShareRegistry(other, errors.OpCopy)
	v.Reset()
	v.cell.CopyFrom(v.reg.table, &other.cell)
	if !v.cell.IsEmpty() {
		v.cell.SetTrack(track(v.reg.table[v.cell.Tag()].Name))
	}
}

// MoveFrom replaces v's state with other's payload value. The source stays
// holding the same alternative with its payload reset to the type's zero
// value: the moved-from state, valid but unspecified. Self-move is a
// no-op; both values must be bound to the same registry.
func (v *Value) MoveFrom(other *Value) {
	if v == other {
		return
	}
	v.mustShareRegistry(other, errors.OpMove)
	v.Reset()
	v.cell.MoveFrom(v.reg.table, &other.cell)
	if !v.cell.IsEmpty() {
		v.cell.SetTrack(track(v.reg.table[v.cell.Tag()].Name))
	}
}

// Swap exchanges the full state of v and other, tag and payload both,
// with no partially-swapped state observable. Payload boxes change owners
// without their contents relocating, so the exchange is sound for every
// alternative type, including ones holding interior pointers.
func (v *Value) Swap(other *Value) {
	if v == other {
		return
	}
	v.mustShareRegistry(other, errors.OpSwap)
	v.cell.Swap(&other.cell)
}

// String renders the value's state for diagnostics.
func (v *Value) String() string {
	if v.cell.IsEmpty() {
		return "variant(empty)"
	}
	return fmt.Sprintf("variant(%s: %v)", v.TypeName(), reflect.ValueOf(v.cell.Box()).Elem().Interface())
}

func (v *Value) mustShareRegistry(other *Value, op errors.Op) {
	if other == nil {
		fatal(errors.InvalidInput(op, "nil value"))
	}
	if v.reg != other.reg {
		fatal(errors.RegistryMismatch(op))
	}
}

// fatal logs a contract violation and panics with the structured error.
// Violations are caller bugs with no recoverable path; they crash loudly
// rather than return corrupted data.
func fatal(err *errors.Error) {
	Logger().Error("contract violation", zap.Error(err))
	panic(err)
}
