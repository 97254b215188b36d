package logos

import (
	"reflect"
	"unsafe"
)

// Source is the set of buffer types a Lexer can read. A ~string source is
// text: offsets used as cut points must fall on UTF-8 character boundaries.
// A ~[]byte source is raw bytes and every offset is a legal cut point.
//
// Sources are never copied and never mutated; every view handed out by this
// package aliases the original buffer.
type Source interface {
	~string | ~[]byte
}

// Chunk is the set of fixed-width units a matcher can read from a source in
// one step: a single byte, or a byte window of one of the supported widths.
// Reading a window lets a matcher compare several bytes at once without
// per-byte bounds checks; wider comparisons are made from several windows.
type Chunk interface {
	byte | [2]byte | [3]byte | [4]byte | [5]byte | [6]byte | [7]byte | [8]byte | [16]byte
}

// Read performs a bounds-checked fixed-width read at a byte offset. The
// second result is false if the read would cross either end of the buffer;
// a true result guarantees the chunk came entirely from within it.
func Read[C Chunk, S Source](src S, offset int) (C, bool) {
	var chunk C
	if offset < 0 || offset+chunkWidth(chunk) > len(src) {
		return chunk, false
	}
	return ReadUnchecked[C](src, offset), true
}

// ReadUnchecked performs a fixed-width read at a byte offset with no bounds
// checks. The caller must already have proven the read in-bounds, by Read,
// TestAhead or an explicit length check; anything else reads out of bounds.
func ReadUnchecked[C Chunk, S Source](src S, offset int) C {
	return *(*C)(unsafe.Add(sourceData(src), offset))
}

// Slice returns the subview of src between lo and hi. The second result is
// false if the range is out of bounds, inverted, or (for text sources) cuts
// a multi-byte character.
func Slice[S Source](src S, lo, hi int) (S, bool) {
	text := isText[S]()
	if lo < 0 || lo > hi || hi > len(src) {
		var zero S
		return zero, false
	}
	if !boundaryAt(src, lo, text) || !boundaryAt(src, hi, text) {
		var zero S
		return zero, false
	}
	return src[lo:hi], true
}

// SliceUnchecked returns the subview of src between lo and hi with no
// checks. The caller must guarantee 0 <= lo <= hi <= len(src) and, for text
// sources, that both offsets are character boundaries.
func SliceUnchecked[S Source](src S, lo, hi int) S {
	return sliceRaw(src, lo, hi, isText[S]())
}

// IsBoundary reports whether index is a legal cut point for the source kind:
// any offset within [0, len] for raw sources, and for text sources only
// offsets that do not land inside a multi-byte character.
func IsBoundary[S Source](src S, index int) bool {
	return boundaryAt(src, index, isText[S]())
}

// FindBoundary returns the nearest legal cut point at or after index. It is
// the identity on raw sources and on any boundary; inside a multi-byte
// character it advances to the character's end. Offsets past the end of the
// buffer clamp to len(src).
func FindBoundary[S Source](src S, index int) int {
	return nextBoundary(src, index, isText[S]())
}

func boundaryAt[S Source](src S, index int, text bool) bool {
	if index < 0 || index > len(src) {
		return false
	}
	if index == len(src) || !text {
		return true
	}
	return src[index]&0xC0 != 0x80
}

func nextBoundary[S Source](src S, index int, text bool) int {
	if index >= len(src) {
		return len(src)
	}
	for !boundaryAt(src, index, text) {
		index++
	}
	return index
}

func sliceRaw[S Source](src S, lo, hi int, text bool) S {
	data := unsafe.Add(sourceData(src), lo)
	if text {
		s := unsafe.String((*byte)(data), hi-lo)
		return *(*S)(unsafe.Pointer(&s))
	}
	b := unsafe.Slice((*byte)(data), hi-lo)
	return *(*S)(unsafe.Pointer(&b))
}

// sourceData returns the buffer's data pointer. String and slice headers
// both lead with it.
func sourceData[S Source](src S) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&src))
}

// isText reports whether S is a text source. The constraint is two-kinded,
// so anything that is not a string is raw bytes.
func isText[S Source]() bool {
	var zero S
	return reflect.TypeOf(zero).Kind() == reflect.String
}

// chunkWidth reports a chunk's width in bytes. The constraint is a closed
// set, so the switch is total.
func chunkWidth[C Chunk](c C) int {
	switch any(c).(type) {
	case byte:
		return 1
	case [2]byte:
		return 2
	case [3]byte:
		return 3
	case [4]byte:
		return 4
	case [5]byte:
		return 5
	case [6]byte:
		return 6
	case [7]byte:
		return 7
	case [8]byte:
		return 8
	case [16]byte:
		return 16
	default:
		panic("unreachable")
	}
}
