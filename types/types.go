package types

import (
	"fmt"
	"strings"
)

// Kind is the semantic category the host parser assigns to a node.
type Kind int

const (
	Other Kind = iota

	Integer
	Real
	String
	Logical
	Null

	Symbol

	Call
	ArgumentList
	StatementSequence
)

var kindNames = map[Kind]string{
	Other:             "other",
	Integer:           "integer",
	Real:              "real",
	String:            "string",
	Logical:           "logical",
	Null:              "null",
	Symbol:            "symbol",
	Call:              "call",
	ArgumentList:      "arglist",
	StatementSequence: "exprlist",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return name
}

// ParseKind maps a wire name back to its Kind. Unknown names are Other.
func ParseKind(s string) Kind {
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	return Other
}

// IsScalar reports whether nodes of this kind carry a scalar payload.
func (k Kind) IsScalar() bool {
	switch k {
	case Integer, Real, String, Logical:
		return true
	}
	return false
}

// Node is one unit of already-parsed R syntax. A nil *Node stands for NULL.
type Node struct {
	Kind Kind
	NA   bool

	Int  int64
	Real float64
	Str  string
	Bool bool

	// Text is the symbol name, or the host type name for Other nodes.
	Text string
	// Tag is the name this node carries inside its parent, e.g. a parameter name.
	Tag string

	Children []*Node
}

func (n *Node) String() string {
	if n == nil {
		return "NULL"
	}
	switch n.Kind {
	case Null:
		return "NULL"
	case Integer:
		if n.NA {
			return "NA_integer_"
		}
		return fmt.Sprintf("%dL", n.Int)
	case Real:
		if n.NA {
			return "NA_real_"
		}
		return fmt.Sprint(n.Real)
	case String:
		if n.NA {
			return "NA_character_"
		}
		return fmt.Sprintf("%q", n.Str)
	case Logical:
		if n.NA {
			return "NA"
		}
		if n.Bool {
			return "TRUE"
		}
		return "FALSE"
	case Symbol:
		return "`" + n.Text + "`"
	case Other:
		return fmt.Sprintf("<%s>", n.Text)
	}
	return fmt.Sprintf("%s[%d]", n.Kind, len(n.Children))
}

// Format renders the tree rooted at n one node per line, each child indented
// under its parent and prefixed with its tag when it has one.
func Format(n *Node) string {
	var b strings.Builder
	format(&b, n, 0)
	return b.String()
}

func format(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n != nil && n.Tag != "" {
		b.WriteString(n.Tag + " = ")
	}
	b.WriteString(n.String())
	b.WriteByte('\n')

	if n == nil {
		return
	}
	for _, child := range n.Children {
		format(b, child, depth+1)
	}
}
