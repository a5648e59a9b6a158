// Package builder rewrites R parse nodes into the typed tree of package ast.
//
// Generic call nodes whose head is a reserved word (function, if, while,
// for, repeat, {, break, next) become dedicated control-flow nodes; every
// other call stays a Call.
package builder

import (
	"strconv"

	"github.com/ztrue/tracerr"

	"github.com/programLyrique/analysr/ast"
	"github.com/programLyrique/analysr/classify"
	"github.com/programLyrique/analysr/errors"
	"github.com/programLyrique/analysr/types"
)

// Build translates the tree rooted at n. Any error aborts the whole
// translation; no partial tree is returned.
func Build(n *types.Node) (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				expr = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	return build(n), nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func build(n *types.Node) ast.Expr {
	kind := classify.Classify(n)

	switch kind {
	case types.Integer, types.Real, types.String, types.Logical:
		if classify.IsMissing(n) {
			return ast.Lit{Value: ast.NA{}}
		}
		return ast.Lit{Value: scalar(n, kind)}
	case types.Null:
		return ast.Lit{Value: ast.Null{}}
	case types.Symbol:
		text, err := classify.AsSymbolText(n)
		must(err)
		return ast.Symbol(text)
	case types.Call:
		return buildCall(n)
	case types.ArgumentList:
		return buildArgList(n)
	case types.StatementSequence:
		return buildSequence(n)
	}

	panic(errors.UnsupportedConstruct{
		Kind:   kind,
		Detail: classify.Describe(n),
	})
}

func scalar(n *types.Node, kind types.Kind) ast.Value {
	switch kind {
	case types.Integer:
		v, err := classify.AsInt(n)
		must(err)
		return ast.Int(v)
	case types.Real:
		v, err := classify.AsReal(n)
		must(err)
		return ast.Real(v)
	case types.Logical:
		v, err := classify.AsBool(n)
		must(err)
		return ast.Bool(v)
	default:
		v, err := classify.AsString(n)
		must(err)
		return ast.Str(v)
	}
}

func buildAll(nodes []*types.Node) []ast.Expr {
	exprs := make([]ast.Expr, 0, len(nodes))
	for _, child := range nodes {
		exprs = append(exprs, build(child))
	}
	return exprs
}

func buildCall(n *types.Node) ast.Expr {
	children, err := classify.Children(n)
	must(err)

	if len(children) == 0 {
		panic(errors.ArityMismatch{Form: "call", Want: "a callee and its", Got: 0})
	}

	callee := build(children[0])
	args := buildAll(children[1:])

	kw, ok := lookupKeyword(callee)
	if !ok {
		return ast.Call{Func: callee, Args: args}
	}

	switch kw {
	case kwFunction:
		// argument 0 is the source reference placeholder
		usable := 0
		if len(args) > 0 {
			usable = len(args) - 1
		}
		if usable != 2 {
			panic(errors.ArityMismatch{Form: "function", Want: "exactly 2", Got: usable})
		}
		return ast.Function{Params: args[1], Body: args[2]}
	case kwIf:
		expectArgs("if", args, 2, 3)
		var elseExpr ast.Expr = ast.Empty{}
		if len(args) == 3 {
			elseExpr = args[2]
		}
		return ast.If{Cond: args[0], Then: args[1], Else: elseExpr}
	case kwWhile:
		expectArgs("while", args, 2, 2)
		return ast.While{Cond: args[0], Body: args[1]}
	case kwFor:
		expectArgs("for", args, 3, 3)
		loopVar, ok := args[0].(ast.Symbol)
		if !ok {
			panic(errors.InvariantViolation{
				Form:    "for",
				Message: "loop variable is a " + ast.Name(args[0]) + ", not a symbol",
			})
		}
		return ast.For{Var: loopVar, Seq: args[1], Body: args[2]}
	case kwRepeat:
		expectArgs("repeat", args, 1, 1)
		return ast.Repeat{Body: args[0]}
	case kwBlock:
		return ast.Statements(args)
	case kwBreak:
		return ast.Break{}
	case kwNext:
		return ast.Next{}
	}

	panic("unhandled keyword")
}

func expectArgs(form string, args []ast.Expr, min, max int) {
	if len(args) >= min && len(args) <= max {
		return
	}

	want := "exactly " + strconv.Itoa(min)
	if min != max {
		want = strconv.Itoa(min) + " or " + strconv.Itoa(max)
	}
	panic(errors.ArityMismatch{Form: form, Want: want, Got: len(args)})
}

func buildArgList(n *types.Node) ast.Expr {
	children, err := classify.Children(n)
	must(err)

	// default values are not translated, only the declared names
	names := make(ast.ArgList, 0, len(children))
	for _, child := range children {
		names = append(names, ast.Symbol(classify.Tag(child)))
	}
	return names
}

func buildSequence(n *types.Node) ast.Expr {
	children, err := classify.Children(n)
	must(err)

	exprs := buildAll(children)
	if len(exprs) == 1 {
		return exprs[0]
	}
	return ast.Statements(exprs)
}
