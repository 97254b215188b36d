package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/kaylynn234/logos"
)

type kind int

const (
	kindIdent kind = iota
	kindInt
	kindOp
)

func (k kind) String() string {
	switch k {
	case kindIdent:
		return "ident"
	case kindInt:
		return "int"
	default:
		return "op"
	}
}

// token is one lexeme of the demo expression language: identifiers, decimal
// integers and single-character operators. Spaces and line comments are
// skipped.
type token struct {
	Kind  kind
	Text  string
	Value int64
}

func (token) Lex(l *logos.Lexer[token, string]) {
	b, ok := logos.ReadAhead[byte](l, 0)
	if !ok {
		l.End()
		return
	}
	switch {
	case b == ' ' || b == '\t' || b == '\r' || b == '\n':
		l.BumpUnchecked(1)
		logos.ApplySkip(l, logos.Skip{})
	case b == '/' && logos.TestAhead(l, 1, func(b byte) bool { return b == '/' }):
		l.BumpUnchecked(2)
		for logos.TestAhead(l, 0, func(b byte) bool { return b != '\n' }) {
			l.BumpUnchecked(1)
		}
		logos.ApplySkip(l, logos.Skip{})
	case isLetter(b):
		l.BumpUnchecked(1)
		for logos.TestAhead(l, 0, func(b byte) bool { return isLetter(b) || isDigit(b) }) {
			l.BumpUnchecked(1)
		}
		logos.ApplyValue(l, l.Slice(), func(s string) token { return token{Kind: kindIdent, Text: s} })
	case isDigit(b):
		l.BumpUnchecked(1)
		for logos.TestAhead(l, 0, func(b byte) bool { return isDigit(b) }) {
			l.BumpUnchecked(1)
		}
		v, err := strconv.ParseInt(l.Slice(), 10, 64)
		logos.ApplyResult(l, v, err, func(v int64) token { return token{Kind: kindInt, Value: v} })
	case isOp(b):
		l.BumpUnchecked(1)
		logos.ApplyValue(l, l.Slice(), func(s string) token { return token{Kind: kindOp, Text: s} })
	default:
		l.BumpUnchecked(1)
		l.Fail()
	}
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isOp(b byte) bool {
	switch b {
	case '=', '+', '-', '*', '/', '(', ')':
		return true
	}
	return false
}

// entry pairs a produced item with the span it came from.
type entry struct {
	Span   logos.Span
	Result logos.Result[token]
}

func tokenize(src string) *logos.MapWithLexer[token, string, logos.Result[token], entry] {
	return logos.MapWith(logos.New[token](src), func(r logos.Result[token], l *logos.Lexer[token, string]) entry {
		return entry{Span: l.Span(), Result: r}
	})
}

var (
	kindColors = map[kind]*color.Color{
		kindIdent: color.New(color.FgCyan),
		kindInt:   color.New(color.FgGreen),
		kindOp:    color.New(color.FgYellow),
	}
	errColor = color.New(color.FgRed, color.Bold)
)

// render prints one line per produced item: span, kind and matched text,
// or span and message for errors.
func render(w io.Writer, src string, debug bool) error {
	stream := tokenize(src)
	dump := repr.New(w, repr.Indent("  "))
	for {
		e, ok := stream.Next()
		if !ok {
			return nil
		}
		var err error
		switch {
		case debug:
			dump.Println(e)
		case e.Result.Err != nil:
			_, err = fmt.Fprintf(w, "%d..%d\t%s\t%s\n", e.Span.Start, e.Span.End, errColor.Sprint("error"), e.Result.Err)
		default:
			tok := e.Result.Value
			_, err = fmt.Fprintf(w, "%d..%d\t%s\t%s\n", e.Span.Start, e.Span.End, kindColors[tok.Kind].Sprint(tok.Kind), stream.Slice())
		}
		if err != nil {
			return err
		}
	}
}

type tokensCmd struct {
	Debug bool   `help:"Dump items with repr instead of rendering lines."`
	File  string `arg:"" default:"-" type:"existingfile" help:"File to tokenize (read from stdin if omitted)."`
}

func (c *tokensCmd) Help() string {
	return `
Tokenizes the input and prints one line per token: its byte span, its kind
and the text it covers. Unrecognized input produces an error line and lexing
resumes at the next character.
`
}

func (c *tokensCmd) Run() error {
	src, err := c.read()
	if err != nil {
		return err
	}
	return render(os.Stdout, src, c.Debug)
}

func (c *tokensCmd) read() (string, error) {
	if c.File == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(c.File)
	return string(b), err
}
