package lib

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatTokenStream renders the token sequence in the compiler format, one
// token per line under a stream header.
func FormatTokenStream(tokens []Token) string {
	var b strings.Builder
	b.WriteString("=== TOKEN STREAM ===\n")

	reader := NewTokenReader(tokens)
	for {
		tok, done := reader.Next()
		if done {
			break
		}
		b.WriteString(tok.CompilerFormat())
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatSymbolTable renders the symbol table as a fixed-width text table
// with a trailing entry count.
func FormatSymbolTable(st *SymbolTable) string {
	var b strings.Builder
	rule := strings.Repeat("-", 70)

	b.WriteString("=== SYMBOL TABLE ===\n")
	fmt.Fprintf(&b, "%-15s %-12s %-12s %-10s %-8s\n", "Name", "Type", "Data Type", "Scope", "Line")
	b.WriteString(rule)
	b.WriteByte('\n')
	for _, sym := range st.Symbols() {
		fmt.Fprintf(&b, "%-15s %-12s %-12s %-10s %-8d\n", sym.Name, sym.SymbolType, sym.DataType, sym.Scope, sym.Line)
	}
	b.WriteString(rule)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total symbols: %d\n", st.Len())
	return b.String()
}

// TokensJSON serializes the token sequence as pretty-printed JSON. The
// rendering round-trips every token field; see Token's struct tags.
func TokensJSON(tokens []Token) ([]byte, error) {
	return json.MarshalIndent(tokens, "", "  ")
}

// SymbolsJSON serializes the symbol table entries as pretty-printed JSON.
func SymbolsJSON(st *SymbolTable) ([]byte, error) {
	return json.MarshalIndent(st.Symbols(), "", "  ")
}
