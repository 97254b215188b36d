package logos

// Skip is returned by callbacks to discard the current match. The lexer
// drops the matched span as trivia and continues scanning from its end.
type Skip struct{}

// Filter is returned by callbacks that decide per match whether to keep it:
// either it accepts the match with a payload, or it skips the match
// entirely. The zero value with Skip set is the skipping case; Accept builds
// the other.
type Filter[C any] struct {
	Value C
	Skip  bool
}

// Accept builds a Filter that accepts the match with the given payload.
func Accept[C any](value C) Filter[C] {
	return Filter[C]{Value: value}
}

type outputKind uint8

const (
	outputSkip outputKind = iota
	outputConstruct
	outputEmit
	outputError
)

// Output is the normalized callback outcome: skip the match, construct a
// token from a payload, emit a fully formed token as-is, or fail with an
// error. Callbacks that need to choose between all four cases return one
// directly; every other supported return shape collapses into it through
// exactly one of the Apply functions.
type Output[C, T any] struct {
	kind  outputKind
	value C
	token T
	err   error
}

// SkipOutput returns the Output that discards the current match.
func SkipOutput[C, T any]() Output[C, T] {
	return Output[C, T]{kind: outputSkip}
}

// Construct returns the Output that builds a token from payload.
func Construct[C, T any](payload C) Output[C, T] {
	return Output[C, T]{kind: outputConstruct, value: payload}
}

// Emit returns the Output that commits token as-is, bypassing construction.
func Emit[C, T any](token T) Output[C, T] {
	return Output[C, T]{kind: outputEmit, token: token}
}

// FailWith returns the Output that commits err as the match's result.
func FailWith[C, T any](err error) Output[C, T] {
	return Output[C, T]{kind: outputError, err: err}
}

// Apply commits a callback's Output to the lexer: Construct builds a token
// with ctor, Emit and FailWith commit their value unchanged, and Skip
// discards the match and requests a rescan from the new cursor position.
// Like every Apply function it must be the matcher's final action.
func Apply[C, T any, S Source](l *Lexer[T, S], out Output[C, T], ctor func(C) T) {
	switch out.kind {
	case outputSkip:
		l.skip()
	case outputConstruct:
		l.Set(ctor(out.value))
	case outputEmit:
		l.Set(out.token)
	case outputError:
		l.SetErr(out.err)
	}
}

// ApplyValue commits a raw payload callback result. A payload always
// constructs a token.
func ApplyValue[C, T any, S Source](l *Lexer[T, S], payload C, ctor func(C) T) {
	l.Set(ctor(payload))
}

// ApplyBool commits a boolean callback result: true constructs the token,
// false commits the unknown-token error.
func ApplyBool[T any, S Source](l *Lexer[T, S], ok bool, ctor func() T) {
	if ok {
		l.Set(ctor())
	} else {
		l.SetErr(l.UnknownToken())
	}
}

// ApplyOption commits a comma-ok callback result: a present payload
// constructs the token, an absent one commits the unknown-token error.
func ApplyOption[C, T any, S Source](l *Lexer[T, S], payload C, ok bool, ctor func(C) T) {
	if ok {
		l.Set(ctor(payload))
	} else {
		l.SetErr(l.UnknownToken())
	}
}

// ApplyResult commits a value-or-error callback result: with a nil error the
// payload constructs the token, otherwise the error is committed unchanged.
func ApplyResult[C, T any, S Source](l *Lexer[T, S], payload C, err error, ctor func(C) T) {
	if err != nil {
		l.SetErr(err)
	} else {
		l.Set(ctor(payload))
	}
}

// ApplySkip commits a Skip callback result, discarding the current match.
func ApplySkip[T any, S Source](l *Lexer[T, S], _ Skip) {
	l.skip()
}

// ApplyFilter commits an accept-or-skip callback result.
func ApplyFilter[C, T any, S Source](l *Lexer[T, S], f Filter[C], ctor func(C) T) {
	if f.Skip {
		l.skip()
	} else {
		l.Set(ctor(f.Value))
	}
}
