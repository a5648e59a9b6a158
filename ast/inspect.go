package ast

// Inspect traverses e in depth-first order, calling f for every node. If f
// returns false the children of that node are skipped. The loop variable of
// a For and the entries of an ArgList are visited as Symbol nodes.
func Inspect(e Expr, f func(Expr) bool) {
	if !f(e) {
		return
	}

	switch v := e.(type) {
	case Statements:
		for _, s := range v {
			Inspect(s, f)
		}
	case If:
		Inspect(v.Cond, f)
		Inspect(v.Then, f)
		Inspect(v.Else, f)
	case For:
		Inspect(v.Var, f)
		Inspect(v.Seq, f)
		Inspect(v.Body, f)
	case While:
		Inspect(v.Cond, f)
		Inspect(v.Body, f)
	case Repeat:
		Inspect(v.Body, f)
	case Call:
		Inspect(v.Func, f)
		for _, a := range v.Args {
			Inspect(a, f)
		}
	case Function:
		Inspect(v.Params, f)
		Inspect(v.Body, f)
	case ArgList:
		for _, name := range v {
			Inspect(name, f)
		}
	}
}
