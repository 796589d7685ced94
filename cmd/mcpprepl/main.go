package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/mcpp-lang/mcpp-go/lib"
)

const (
	historyFile = ".mcpp_history"
	prompt      = "mcpp> "
)

var banner = "MCPP lexer REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

const helpText = `
REPL commands:
  :help       Show this help
  :symbols    Toggle printing the symbol table after each line
  :quit       Exit the REPL
`

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer saveHistory(line, histPath)

	fmt.Println(banner)

	showSymbols := false
	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return
			}
			fmt.Fprintln(os.Stderr, red("read error: "+err.Error()))
			return
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(input)

		switch trimmed {
		case ":quit", ":q":
			return
		case ":help":
			fmt.Print(helpText)
			continue
		case ":symbols":
			showSymbols = !showSymbols
			fmt.Printf("symbol table output %s\n", map[bool]string{true: "on", false: "off"}[showSymbols])
			continue
		}

		res, err := lib.Tokenize(input)
		if err != nil {
			fmt.Println(red(err.Error()))
			continue
		}

		for _, tok := range res.Tokens {
			if tok.Kind == lib.KindEOF {
				continue
			}
			fmt.Println(blue(tok.CompilerFormat()))
		}
		if showSymbols && res.SymbolTable.Len() > 0 {
			fmt.Print(green(lib.FormatSymbolTable(res.SymbolTable)))
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func saveHistory(line *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
