package lib

// Symbol records one identifier occurrence together with its best-effort
// declared type. SymbolType is always "variable" for now; distinguishing
// functions from variables needs a parse, not a token stream.
type Symbol struct {
	Name       string `json:"name"`
	SymbolType string `json:"symbol_type"`
	DataType   string `json:"data_type"`
	Scope      string `json:"scope"`
	Line       int    `json:"line"`
}

// GlobalScope is the initial scope label. Nothing in the lexer ever changes
// scope, so every symbol it records carries this label.
const GlobalScope = "global"

// UnknownType is recorded when an identifier is seen with no type keyword
// pending. Note that in a multi-declarator statement like "int a, b;" only
// the first identifier receives the declared type; the pending type is
// consumed by "a", so "b" is recorded with UnknownType. This is a known
// limitation of lexical-only analysis.
const UnknownType = "unknown"

// SymbolTable is an append-only, order-preserving record of identifier
// occurrences. Duplicate names are not merged; each qualifying occurrence
// appends a new entry.
type SymbolTable struct {
	symbols      []Symbol
	currentScope string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{currentScope: GlobalScope}
}

func (st *SymbolTable) Add(name, symbolType, dataType string, line int) {
	st.symbols = append(st.symbols, Symbol{
		Name:       name,
		SymbolType: symbolType,
		DataType:   dataType,
		Scope:      st.currentScope,
		Line:       line,
	})
}

// SetScope changes the label applied to subsequently added symbols. The
// lexer never calls this; it is the seam a parser-driven scope tracker
// would use.
func (st *SymbolTable) SetScope(scope string) {
	st.currentScope = scope
}

func (st *SymbolTable) Scope() string {
	return st.currentScope
}

func (st *SymbolTable) Symbols() []Symbol {
	return st.symbols
}

func (st *SymbolTable) Len() int {
	return len(st.symbols)
}
