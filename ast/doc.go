// Package ast is the typed tree the builder produces from R parse nodes.
//
// The sum types live in ast.adt; ast_gen.go is rendered from it by the
// generator in tool/. Every node is owned by exactly one parent and is not
// mutated once built: passes that rewrite the tree return a new one.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/ast.adt ../ast/ast_gen.go ast"
