package logos_test

import (
	"testing"

	"github.com/kaylynn234/logos"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	src := "hello, world!!!!"

	b, ok := logos.Read[byte](src, 0)
	require.True(t, ok)
	require.Equal(t, byte('h'), b)

	b, ok = logos.Read[byte](src, 15)
	require.True(t, ok)
	require.Equal(t, byte('!'), b)

	w, ok := logos.Read[[4]byte](src, 7)
	require.True(t, ok)
	require.Equal(t, [4]byte{'w', 'o', 'r', 'l'}, w)

	all, ok := logos.Read[[16]byte](src, 0)
	require.True(t, ok)
	require.Equal(t, src, string(all[:]))
}

func TestReadOutOfBounds(t *testing.T) {
	src := "hello, world!!!!"

	_, ok := logos.Read[byte](src, -1)
	require.False(t, ok)

	_, ok = logos.Read[byte](src, 16)
	require.False(t, ok)

	// The window starts in bounds but would run off the end.
	_, ok = logos.Read[[2]byte](src, 15)
	require.False(t, ok)

	_, ok = logos.Read[[16]byte](src, 1)
	require.False(t, ok)
}

func TestReadUnchecked(t *testing.T) {
	src := "hello, world!!!!"
	for offset := 0; offset+2 <= len(src); offset++ {
		checked, ok := logos.Read[[2]byte](src, offset)
		require.True(t, ok)
		require.Equal(t, checked, logos.ReadUnchecked[[2]byte](src, offset), "offset %d", offset)
	}
}

func TestReadBytes(t *testing.T) {
	src := []byte{0x50, 0x41, 0x43, 0x4b, 0xff, 0x00}

	magic, ok := logos.Read[[4]byte](src, 0)
	require.True(t, ok)
	require.Equal(t, [4]byte{'P', 'A', 'C', 'K'}, magic)

	b, ok := logos.Read[byte](src, 4)
	require.True(t, ok)
	require.Equal(t, byte(0xff), b)

	_, ok = logos.Read[[4]byte](src, 3)
	require.False(t, ok)
}

func TestSlice(t *testing.T) {
	src := "aé☃"

	sub, ok := logos.Slice(src, 1, 3)
	require.True(t, ok)
	require.Equal(t, "é", sub)

	sub, ok = logos.Slice(src, 0, 6)
	require.True(t, ok)
	require.Equal(t, src, sub)

	sub, ok = logos.Slice(src, 3, 3)
	require.True(t, ok)
	require.Equal(t, "", sub)
}

func TestSliceRejects(t *testing.T) {
	src := "aé☃"

	for _, bounds := range [][2]int{
		{-1, 3}, // out of range
		{0, 7},  // out of range
		{3, 1},  // inverted
		{2, 3},  // lo splits "é"
		{1, 2},  // hi splits "é"
		{4, 4},  // empty, but inside "☃"
	} {
		_, ok := logos.Slice(src, bounds[0], bounds[1])
		require.False(t, ok, "slice %d..%d", bounds[0], bounds[1])
	}

	// Raw sources have no characters to split.
	sub, ok := logos.Slice([]byte(src), 2, 4)
	require.True(t, ok)
	require.Equal(t, []byte{0xa9, 0xe2}, sub)
}

func TestSliceUncheckedAliases(t *testing.T) {
	buf := []byte("alpha beta")
	sub := logos.SliceUnchecked(buf, 0, 5)
	require.Equal(t, []byte("alpha"), sub)

	// The subview shares the buffer rather than copying it.
	buf[0] = 'A'
	require.Equal(t, []byte("Alpha"), sub)
}

func TestIsBoundary(t *testing.T) {
	src := "aé☃" // 1, 2 and 3 bytes

	want := map[int]bool{-1: false, 0: true, 1: true, 2: false, 3: true, 4: false, 5: false, 6: true, 7: false}
	for index, ok := range want {
		require.Equal(t, ok, logos.IsBoundary(src, index), "index %d", index)
	}

	raw := []byte(src)
	for index := 0; index <= len(raw); index++ {
		require.True(t, logos.IsBoundary(raw, index), "index %d", index)
	}
}

func TestFindBoundary(t *testing.T) {
	src := "aé☃"

	want := map[int]int{0: 0, 1: 1, 2: 3, 3: 3, 4: 6, 5: 6, 6: 6, 9: 6}
	for index, next := range want {
		require.Equal(t, next, logos.FindBoundary(src, index), "index %d", index)
	}

	raw := []byte(src)
	require.Equal(t, 2, logos.FindBoundary(raw, 2))
	require.Equal(t, 6, logos.FindBoundary(raw, 9))
}
