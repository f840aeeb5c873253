package variant

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/abi"
	"github.com/wippyai/variant/internal/cell"
)

// Index identifies an alternative within a registry. Valid indices follow
// declaration order starting at zero; the reserved values below are
// distinct from every valid index and from each other.
type Index = cell.Tag

const (
	// Empty is the tag of a value holding no live payload.
	Empty = cell.Empty
	// NotFound is returned by index lookups for types outside the set. It
	// is deliberately distinct from index 0, so a lookup miss can never be
	// mistaken for the first alternative.
	NotFound = cell.NotFound
)

// Registry is the compiled, immutable metadata for one closed set of
// alternative types: the declaration-ordered descriptors, the
// type-to-index map, the operation table storage cells dispatch through,
// and the aggregate layout. A registry never changes after construction
// and is safe for concurrent readers.
type Registry struct {
	alts     []Alternative
	byType   map[reflect.Type]Index
	table    cell.Table
	maxSize  uintptr
	maxAlign uintptr
	layout   Layout
}

// NewRegistry compiles an alternative set. A set with no members or with a
// repeated type is rejected with a definition error; no value can ever be
// created over a rejected set.
func NewRegistry(alts ...Alternative) (*Registry, error) {
	if len(alts) == 0 {
		return nil, errors.EmptySet()
	}

	r := &Registry{
		alts:   alts,
		byType: make(map[reflect.Type]Index, len(alts)),
		table:  make(cell.Table, 0, len(alts)),
	}

	maxAlign := uintptr(1)
	maxSize := uintptr(0)

	for i, a := range alts {
		if a.typ == nil {
			return nil, errors.InvalidInput(errors.OpDefine, "alternative descriptor not built with Alt")
		}
		if first, dup := r.byType[a.typ]; dup {
			return nil, errors.DuplicateAlternative(abi.TypeName(a.typ), int(first), i)
		}
		r.byType[a.typ] = Index(i)
		r.table = append(r.table, a.ops)

		if a.size > maxSize {
			maxSize = a.size
		}
		if a.align > maxAlign {
			maxAlign = a.align
		}
	}

	r.maxSize = maxSize
	r.maxAlign = maxAlign
	r.layout = computeLayout(len(alts), maxSize, maxAlign)

	Logger().Debug("alternative set compiled",
		zap.Int("alternatives", len(alts)),
		zap.Uintptr("max_size", maxSize),
		zap.Uintptr("max_align", maxAlign))

	return r, nil
}

// MustRegistry is NewRegistry panicking on definition errors.
func MustRegistry(alts ...Alternative) *Registry {
	r, err := NewRegistry(alts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of alternatives in the set.
func (r *Registry) Len() int { return len(r.alts) }

// MaxSize returns the maximum payload size across the alternatives.
func (r *Registry) MaxSize() uintptr { return r.maxSize }

// MaxAlignment returns the maximum payload alignment across the
// alternatives.
func (r *Registry) MaxAlignment() uintptr { return r.maxAlign }

// Layout returns the dense tag+payload footprint metadata for the set.
func (r *Registry) Layout() Layout { return r.layout }

// IndexOf returns the index of the alternative with type identity t, or
// NotFound when t is outside the set.
func (r *Registry) IndexOf(t reflect.Type) Index {
	if i, ok := r.byType[t]; ok {
		return i
	}
	return NotFound
}

// IndexOf returns the index of alternative T in r, or NotFound.
func IndexOf[T any](r *Registry) Index {
	return r.IndexOf(typeOf[T]())
}

// TypeName returns the name of the alternative at index i, or the reserved
// tag's rendering for Empty, NotFound, and out-of-range indices.
func (r *Registry) TypeName(i Index) string {
	if i >= 0 && int(i) < len(r.alts) {
		return r.table[i].Name
	}
	return i.String()
}
