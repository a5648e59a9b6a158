// Package simplify rewrites a translated tree into an equivalent, smaller
// one. The input is never modified.
package simplify

import (
	"github.com/programLyrique/analysr/ast"
)

// Simplify applies every rewrite bottom-up and returns the new tree.
func Simplify(e ast.Expr) ast.Expr {
	switch v := e.(type) {
	case ast.Statements:
		return block(v)
	case ast.If:
		cond := Simplify(v.Cond)
		then := Simplify(v.Then)
		elseExpr := Simplify(v.Else)
		if lit, ok := cond.(ast.Lit); ok {
			if b, ok := lit.Value.(ast.Bool); ok {
				if b {
					return then
				}
				return elseExpr
			}
		}
		return ast.If{Cond: cond, Then: then, Else: elseExpr}
	case ast.For:
		return ast.For{Var: v.Var, Seq: Simplify(v.Seq), Body: Simplify(v.Body)}
	case ast.While:
		return ast.While{Cond: Simplify(v.Cond), Body: Simplify(v.Body)}
	case ast.Repeat:
		return ast.Repeat{Body: Simplify(v.Body)}
	case ast.Function:
		return ast.Function{Params: Simplify(v.Params), Body: Simplify(v.Body)}
	case ast.Call:
		return call(v)
	}

	return e
}

func call(c ast.Call) ast.Expr {
	fn := Simplify(c.Func)
	args := make([]ast.Expr, 0, len(c.Args))
	for _, a := range c.Args {
		args = append(args, Simplify(a))
	}

	if sym, ok := fn.(ast.Symbol); ok && len(args) == 1 {
		switch sym {
		case "(":
			return args[0]
		case "-":
			if neg, ok := negate(args[0]); ok {
				return neg
			}
		}
	}
	return ast.Call{Func: fn, Args: args}
}

func negate(e ast.Expr) (ast.Expr, bool) {
	lit, ok := e.(ast.Lit)
	if !ok {
		return nil, false
	}
	switch v := lit.Value.(type) {
	case ast.Real:
		return ast.Lit{Value: -v}, true
	case ast.Int:
		return ast.Lit{Value: -v}, true
	}
	return nil, false
}

// block splices nested blocks into their parent. An empty nested block is
// kept only in last position, where it is the value of the block.
func block(stmts ast.Statements) ast.Expr {
	out := make(ast.Statements, 0, len(stmts))
	for i, s := range stmts {
		s = Simplify(s)
		inner, ok := s.(ast.Statements)
		if !ok {
			out = append(out, s)
			continue
		}
		if len(inner) == 0 && i < len(stmts)-1 {
			continue
		}
		if len(inner) == 0 {
			out = append(out, inner)
			continue
		}
		out = append(out, inner...)
	}

	if len(out) == 1 {
		return out[0]
	}
	return out
}
