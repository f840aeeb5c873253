package variant

import "github.com/wippyai/variant/internal/abi"

// Layout describes the dense tag+payload footprint of an alternative set:
// the C-style in-memory shape a cell over the set would occupy, with the
// tag field first and the payload region aligned after it. The storage
// cell boxes payloads rather than embedding them, so this is metadata; it
// backs the registry's MaxSize/MaxAlignment contract and sizes
// fixed-footprint encodings built on top of the registry.
type Layout struct {
	TagSize       uintptr // tag field width: 1, 2 or 4 bytes by case count
	PayloadOffset uintptr // payload start: tag width rounded up to the set's alignment
	Size          uintptr // total footprint, rounded up to Align
	Align         uintptr // max(tag width, payload alignment)
}

func computeLayout(numCases int, maxSize, maxAlign uintptr) Layout {
	tagSize := abi.TagSize(numCases)

	align := maxAlign
	if tagSize > align {
		align = tagSize
	}

	payloadOffset := abi.AlignTo(tagSize, align)
	totalSize := abi.AlignTo(payloadOffset+maxSize, align)

	return Layout{
		TagSize:       tagSize,
		PayloadOffset: payloadOffset,
		Size:          totalSize,
		Align:         align,
	}
}
