package logos

// UnknownTokenError is the default lexing error, committed whenever no
// matcher branch accepts the input. It is a bare marker: positional
// information lives on the lexer at the moment of failure, and token types
// that want to capture it implement ErrorProvider.
type UnknownTokenError struct{}

func (UnknownTokenError) Error() string {
	return "unknown token encountered while lexing"
}

// ErrorProvider is implemented by token types that build their own error
// values in place of UnknownTokenError. UnknownToken is called with the
// lexer positioned on the offending span, before the error is committed, so
// implementations can read the span, slice or extras at the point of
// failure.
type ErrorProvider[T any, S Source] interface {
	UnknownToken(l *Lexer[T, S]) error
}
