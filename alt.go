package variant

import (
	"reflect"

	"github.com/wippyai/variant/internal/abi"
	"github.com/wippyai/variant/internal/cell"
)

// Disposer is implemented by payload types that must release resources
// when their containing value destroys them. Dispose runs exactly once per
// live payload, at destruction, whether through Reset, an assignment over
// the payload, or an overwrite via CopyFrom/MoveFrom. A move leaves the
// source payload as the type's zero value and that payload is still
// disposed later, so for pointer alternatives Dispose must tolerate a nil
// receiver.
type Disposer interface {
	Dispose()
}

// Alternative describes one member of an alternative set: the type
// identity, size, and alignment captured at definition time, plus the
// compiled operation table entry for constructing, cloning, moving, and
// destroying payloads of that type.
type Alternative struct {
	typ   reflect.Type
	size  uintptr
	align uintptr
	ops   cell.Ops
}

// Type returns the alternative's type identity.
func (a Alternative) Type() reflect.Type { return a.typ }

// Size returns the in-memory size of the alternative's type.
func (a Alternative) Size() uintptr { return a.size }

// Align returns the alignment of the alternative's type.
func (a Alternative) Align() uintptr { return a.align }

// Alt compiles the descriptor for alternative type T. The typed operations
// are captured as closures over the concrete T, so nothing on the
// assign/access/copy/move/destroy paths consults reflection afterwards.
//
// Two optional protocols refine the compiled ops. A payload implementing
// Disposer has Dispose invoked when it is destroyed. A payload with a
// Clone() T method (value or pointer receiver) is deep-copied through it;
// other payloads are copied shallowly as values.
func Alt[T any]() Alternative {
	t := typeOf[T]()
	return Alternative{
		typ:   t,
		size:  t.Size(),
		align: uintptr(t.Align()),
		ops: cell.Ops{
			Name: abi.TypeName(t),
			Construct: func(v any) any {
				x := v.(T)
				return &x
			},
			Clone: func(box any) any {
				src := box.(*T)
				if c, ok := any(*src).(interface{ Clone() T }); ok {
					out := c.Clone()
					return &out
				}
				if c, ok := any(src).(interface{ Clone() T }); ok {
					out := c.Clone()
					return &out
				}
				out := *src
				return &out
			},
			Move: func(box any) any {
				src := box.(*T)
				out := *src
				var zero T
				*src = zero
				return &out
			},
			Destroy: func(box any) {
				src := box.(*T)
				// The payload value itself may implement Disposer (covers
				// interface and pointer alternatives); otherwise the box
				// pointer covers value types with pointer receivers.
				if d, ok := any(*src).(Disposer); ok {
					d.Dispose()
				} else if d, ok := any(src).(Disposer); ok {
					d.Dispose()
				}
				var zero T
				*src = zero
			},
		},
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
