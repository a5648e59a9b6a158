package builder

import "github.com/programLyrique/analysr/ast"

type keyword int

const (
	kwFunction keyword = iota
	kwIf
	kwWhile
	kwFor
	kwRepeat
	kwBlock
	kwBreak
	kwNext
)

// Recognition is lexical: a call whose head is one of these symbols is
// read as control flow even if the name was rebound by the program.
var keywords = map[ast.Symbol]keyword{
	"function": kwFunction,
	"if":       kwIf,
	"while":    kwWhile,
	"for":      kwFor,
	"repeat":   kwRepeat,
	"{":        kwBlock,
	"break":    kwBreak,
	"next":     kwNext,
}

func lookupKeyword(callee ast.Expr) (keyword, bool) {
	sym, ok := callee.(ast.Symbol)
	if !ok {
		return 0, false
	}
	kw, ok := keywords[sym]
	return kw, ok
}
