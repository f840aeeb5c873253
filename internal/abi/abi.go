package abi

import "reflect"

// AlignTo rounds offset up to the next multiple of align.
// An align of zero leaves the offset unchanged.
func AlignTo(offset, align uintptr) uintptr {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// TagSize returns the width in bytes of a tag field able to address
// numCases alternatives: 1 byte for <=256, 2 for <=65536, else 4.
func TagSize(numCases int) uintptr {
	if numCases <= 256 {
		return 1
	} else if numCases <= 65536 {
		return 2
	}
	return 4
}

// TypeName returns a printable name for t, guarding against nil.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
