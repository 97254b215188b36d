package logos_test

import (
	"testing"

	"github.com/kaylynn234/logos"
	"github.com/stretchr/testify/require"
)

// expect is one expected pull: the produced item plus the slice and span the
// lexer should report alongside it.
type expect[T any, S logos.Source] struct {
	result logos.Result[T]
	slice  S
	span   logos.Span
}

// res builds a successful Result.
func res[T any](token T) logos.Result[T] {
	return logos.Result[T]{Value: token}
}

// resErr builds a failed Result.
func resErr[T any](err error) logos.Result[T] {
	return logos.Result[T]{Err: err}
}

// assertLex drains lex, comparing every produced item and the slice and span
// reported with it, then checks the stream is exhausted.
func assertLex[T any, S logos.Source](t *testing.T, lex *logos.Lexer[T, S], want []expect[T, S]) {
	t.Helper()
	for i, w := range want {
		r, ok := lex.Next()
		require.True(t, ok, "stream ended before item %d", i)
		require.Equal(t, w.result, r, "item %d", i)
		require.Equal(t, w.slice, lex.Slice(), "slice of item %d", i)
		require.Equal(t, w.span, lex.Span(), "span of item %d", i)
	}
	_, more := lex.Next()
	require.False(t, more, "expected an exhausted stream")
}

// word is the keyword grammar most tests drive: the words "alpha", "beta"
// and "gamma", ASCII spaces as trivia, anything else an error.
type word int

const (
	alpha word = iota
	beta
	gamma
)

func (word) Lex(l *logos.Lexer[word, string]) {
	b, ok := logos.ReadAhead[byte](l, 0)
	if !ok {
		l.End()
		return
	}
	switch b {
	case ' ':
		l.BumpUnchecked(1)
		logos.ApplySkip(l, logos.Skip{})
	case 'a':
		matchWord(l, "alpha", alpha)
	case 'b':
		matchWord(l, "beta", beta)
	case 'g':
		matchWord(l, "gamma", gamma)
	default:
		l.BumpUnchecked(1)
		l.Fail()
	}
}

// matchWord consumes kw byte by byte, emitting tok on a full match and
// failing from wherever the match stopped otherwise.
func matchWord(l *logos.Lexer[word, string], kw string, tok word) {
	for i := 0; i < len(kw); i++ {
		b, ok := logos.ReadAhead[byte](l, 0)
		if !ok || b != kw[i] {
			l.Fail()
			return
		}
		l.BumpUnchecked(1)
	}
	l.Set(tok)
}
