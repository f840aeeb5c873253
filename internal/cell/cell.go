// Package cell implements the storage cell backing a tagged value: the
// currently-live tag plus the single owned payload box, with all payload
// operations dispatched through a tag-indexed operation table supplied by
// the registry. The unchecked accessor lives here, behind internal/, so it
// can never be part of the public surface.
package cell

import "strconv"

// Tag identifies the currently live alternative. Valid alternative tags are
// non-negative registry indices; the reserved values below never collide
// with them or with each other.
type Tag int

const (
	// Empty marks a cell holding no live payload.
	Empty Tag = -1
	// NotFound is the lookup-miss sentinel; it is never a stored tag.
	NotFound Tag = -2
)

func (t Tag) String() string {
	switch t {
	case Empty:
		return "empty"
	case NotFound:
		return "not-found"
	}
	return strconv.Itoa(int(t))
}

// Ops is one alternative's operation table entry, compiled once at registry
// definition time. Construct boxes a copy of an incoming value. Clone deep
// copies a box. Move transfers the value into a fresh box, leaving the
// source box holding the type's zero value. Destroy releases the payload
// (running its Dispose hook if any) and zeroes the box contents.
type Ops struct {
	Name      string
	Construct func(v any) any
	Clone     func(box any) any
	Move      func(box any) any
	Destroy   func(box any)
}

// Table holds one Ops entry per alternative, indexed by tag.
type Table []Ops

// Cell is a storage cell: tag + owned payload box + lifetime-tracking id.
// The zero Cell is empty. Invariant: the box is nil exactly when no payload
// is live, and the tag is meaningful only while the box is non-nil.
//
// Preconditions on Construct, CopyFrom, and MoveFrom (destination must be
// empty) are guaranteed by the facade, which always destroys before it
// constructs; the cell does not re-check them.
type Cell struct {
	tag   Tag
	box   any
	track uint64
}

// Tag returns the live alternative's tag, or Empty.
func (c *Cell) Tag() Tag {
	if c.box == nil {
		return Empty
	}
	return c.tag
}

// IsEmpty reports whether no payload is live.
func (c *Cell) IsEmpty() bool {
	return c.box == nil
}

// Box returns the owned payload box without checking the tag. Callers must
// have verified the tag; this is the unchecked accessor the facade's
// checked accessors sit on top of.
func (c *Cell) Box() any {
	return c.box
}

// TrackID returns the lifetime-tracking id recorded for the live payload.
func (c *Cell) TrackID() uint64 {
	return c.track
}

// SetTrack records the lifetime-tracking id for the live payload.
func (c *Cell) SetTrack(id uint64) {
	c.track = id
}

// Construct places a copy of v into the cell as alternative tag.
func (c *Cell) Construct(t Table, tag Tag, v any) {
	c.box = t[tag].Construct(v)
	c.tag = tag
}

// Destroy releases the live payload through the tag-indexed destroy op and
// leaves the cell empty. Calling it on an empty cell is a no-op, so a
// second call in a row does nothing.
func (c *Cell) Destroy(t Table) {
	if c.box == nil {
		return
	}
	t[c.tag].Destroy(c.box)
	c.box = nil
	c.tag = Empty
	c.track = 0
}

// CopyFrom deep-copies other's payload into the cell, dispatching on
// other's tag. An empty source leaves the cell empty.
func (c *Cell) CopyFrom(t Table, other *Cell) {
	if other.box == nil {
		return
	}
	c.box = t[other.tag].Clone(other.box)
	c.tag = other.tag
}

// MoveFrom transfers other's payload value into the cell, dispatching on
// other's tag. The source cell stays live with its payload reset to the
// alternative's zero value; an empty source leaves the cell empty.
func (c *Cell) MoveFrom(t Table, other *Cell) {
	if other.box == nil {
		return
	}
	c.box = t[other.tag].Move(other.box)
	c.tag = other.tag
}

// Swap exchanges the full state of two cells. Payload boxes change owners
// without the payloads themselves moving, so no payload operation runs and
// no partially-swapped state exists.
func (c *Cell) Swap(other *Cell) {
	c.tag, other.tag = other.tag, c.tag
	c.box, other.box = other.box, c.box
	c.track, other.track = other.track, c.track
}
