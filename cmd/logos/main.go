package main

import "github.com/alecthomas/kong"

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Tokens  tokensCmd `cmd:"" help:"Tokenize a file with the demo expression lexer."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A command-line demo of the logos lexing runtime.`),
		kong.Vars{"version": version},
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
