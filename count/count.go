// Package count tallies the node kinds of translated trees.
package count

import (
	"sort"

	"github.com/programLyrique/analysr/ast"
)

// Counts maps a variant name (as returned by ast.Name) to its occurrences.
type Counts map[string]int

// Count walks e without modifying it.
func Count(e ast.Expr) Counts {
	c := Counts{}
	ast.Inspect(e, func(n ast.Expr) bool {
		c[ast.Name(n)]++
		return true
	})
	return c
}

func (c Counts) Add(other Counts) {
	for kind, n := range other {
		c[kind] += n
	}
}

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Kinds returns the counted variant names in lexical order.
func (c Counts) Kinds() []string {
	kinds := make([]string, 0, len(c))
	for kind := range c {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
