package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/mcpp-lang/mcpp-go/lib"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		jsonPath string
		quiet    bool
	)
	flag.StringVar(&jsonPath, "out", "", "Path for the token JSON dump (default: <input>_tokens.json)")
	flag.BoolVar(&quiet, "quiet", false, "Suppress the token stream and symbol table listings")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input.mcpp>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s examples/example1.mcpp\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	zl, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer zl.Sync()
	logger := zl.Sugar()

	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	fmt.Println("=== MCPP Lexical Analyzer ===")
	fmt.Printf("Input file: %s\n\n", filename)

	res, err := lib.Tokenize(string(source))
	if err != nil {
		var lexErr *lib.LexicalError
		if errors.As(err, &lexErr) {
			logger.Errorw("scan failed",
				"file", filename,
				"char", string(lexErr.Char),
				"line", lexErr.Line,
				"column", lexErr.Column,
			)
		}
		return err
	}

	if !quiet {
		fmt.Println(lib.FormatTokenStream(res.Tokens))
		fmt.Println(lib.FormatSymbolTable(res.SymbolTable))
	}

	data, err := lib.TokensJSON(res.Tokens)
	if err != nil {
		return fmt.Errorf("serializing tokens: %w", err)
	}
	if jsonPath == "" {
		jsonPath = defaultJSONPath(filename)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		logger.Warnw("could not write JSON output", "path", jsonPath, "error", err)
	} else {
		fmt.Printf("JSON output saved to: %s\n", jsonPath)
	}

	fmt.Println("\n=== Lexical Analysis Complete ===")
	fmt.Printf("Total tokens: %d\n", len(res.Tokens))
	logger.Infow("scan complete",
		"file", filename,
		"tokens", len(res.Tokens),
		"symbols", res.SymbolTable.Len(),
	)
	return nil
}

func defaultJSONPath(filename string) string {
	if strings.HasSuffix(filename, ".mcpp") {
		return strings.TrimSuffix(filename, ".mcpp") + "_tokens.json"
	}
	return filename + "_tokens.json"
}
