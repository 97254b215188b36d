package logos_test

import (
	"testing"

	"github.com/kaylynn234/logos"
	"github.com/stretchr/testify/require"
)

// code is the outside-of-strings mode: single letters, and the quote that
// enters string mode.
type code int

const (
	codeLetter code = iota
	codeQuote
)

func (code) Lex(l *logos.Lexer[code, string]) {
	b, ok := logos.ReadAhead[byte](l, 0)
	if !ok {
		l.End()
		return
	}
	l.BumpUnchecked(1)
	switch {
	case b == '"':
		l.Set(codeQuote)
	case b >= 'a' && b <= 'z':
		l.Set(codeLetter)
	default:
		l.Fail()
	}
}

// lit is the inside-of-strings mode: whole characters, and the quote that
// leaves string mode.
type lit int

const (
	litChar lit = iota
	litQuote
)

func (lit) Lex(l *logos.Lexer[lit, string]) {
	b, ok := logos.ReadAhead[byte](l, 0)
	if !ok {
		l.End()
		return
	}
	l.BumpUnchecked(1)
	if b == '"' {
		l.Set(litQuote)
		return
	}
	for logos.TestAhead(l, 0, func(b byte) bool { return b&0xC0 == 0x80 }) {
		l.BumpUnchecked(1)
	}
	l.Set(litChar)
}

func TestMorph(t *testing.T) {
	outer := logos.New[code](`a"xéy"b`)

	r, ok := outer.Next()
	require.True(t, ok)
	require.Equal(t, res(codeLetter), r)
	require.Equal(t, logos.Span{Start: 0, End: 1}, outer.Span())

	r, ok = outer.Next()
	require.True(t, ok)
	require.Equal(t, res(codeQuote), r)

	// The opening quote switches modes. The new lexer picks up exactly
	// where the old one stopped.
	inner := logos.Morph[lit](outer)
	require.Equal(t, logos.Span{Start: 1, End: 2}, inner.Span())
	require.Equal(t, `"`, inner.Slice())

	assertInner := func(want lit, slice string, span logos.Span) {
		t.Helper()
		r, ok := inner.Next()
		require.True(t, ok)
		require.Equal(t, res(want), r)
		require.Equal(t, slice, inner.Slice())
		require.Equal(t, span, inner.Span())
	}
	assertInner(litChar, "x", logos.Span{Start: 2, End: 3})
	assertInner(litChar, "é", logos.Span{Start: 3, End: 5})
	assertInner(litChar, "y", logos.Span{Start: 5, End: 6})
	assertInner(litQuote, `"`, logos.Span{Start: 6, End: 7})

	// The closing quote switches back.
	back := logos.Morph[code](inner)
	assertLex(t, back, []expect[code, string]{
		{res(codeLetter), "b", logos.Span{Start: 7, End: 8}},
	})
}

func TestMorphKeepsState(t *testing.T) {
	seen := 0
	lex := logos.WithExtras[counting]("ab", &seen)
	_, ok := lex.Next()
	require.True(t, ok)

	morphed := logos.Morph[code](lex)
	require.Same(t, &seen, morphed.Extras)
	require.Equal(t, lex.Source(), morphed.Source())
	require.Equal(t, lex.Span(), morphed.Span())
	require.Equal(t, lex.Remainder(), morphed.Remainder())
}
