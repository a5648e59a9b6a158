package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Name returns the variant name of e.
func Name(e Expr) string {
	switch e.(type) {
	case Lit:
		return "Lit"
	case Symbol:
		return "Symbol"
	case Statements:
		return "Statements"
	case If:
		return "If"
	case For:
		return "For"
	case While:
		return "While"
	case Repeat:
		return "Repeat"
	case Call:
		return "Call"
	case Function:
		return "Function"
	case ArgList:
		return "ArgList"
	case Break:
		return "Break"
	case Next:
		return "Next"
	case Empty:
		return "Empty"
	}

	panic(fmt.Sprintf("unhandled expression %T", e))
}

func valueToString(v Value) string {
	switch v := v.(type) {
	case Real:
		s := strconv.FormatFloat(float64(v), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return "Real(" + s + ")"
	case Int:
		return fmt.Sprintf("Int(%d)", int64(v))
	case Str:
		return "Str(" + strconv.Quote(string(v)) + ")"
	case Bool:
		return fmt.Sprintf("Bool(%t)", bool(v))
	case Null:
		return "Null"
	case NA:
		return "NA"
	}

	panic(fmt.Sprintf("unhandled value %T", v))
}

func listToString(es []Expr) string {
	var parts []string
	for _, e := range es {
		parts = append(parts, String(e))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// String renders e in constructor notation, e.g.
// If(Symbol("x"), Lit(Real(1.0)), Empty).
func String(e Expr) string {
	switch v := e.(type) {
	case Lit:
		return "Lit(" + valueToString(v.Value) + ")"
	case Symbol:
		return "Symbol(" + strconv.Quote(string(v)) + ")"
	case Statements:
		return "Statements(" + listToString(v) + ")"
	case If:
		return fmt.Sprintf("If(%s, %s, %s)", String(v.Cond), String(v.Then), String(v.Else))
	case For:
		return fmt.Sprintf("For(%s, %s, %s)", String(v.Var), String(v.Seq), String(v.Body))
	case While:
		return fmt.Sprintf("While(%s, %s)", String(v.Cond), String(v.Body))
	case Repeat:
		return fmt.Sprintf("Repeat(%s)", String(v.Body))
	case Call:
		return fmt.Sprintf("Call(%s, %s)", String(v.Func), listToString(v.Args))
	case Function:
		return fmt.Sprintf("Function(%s, %s)", String(v.Params), String(v.Body))
	case ArgList:
		var parts []string
		for _, name := range v {
			parts = append(parts, String(name))
		}
		return "ArgList([" + strings.Join(parts, ", ") + "])"
	case Break, Next, Empty:
		return Name(e)
	}

	panic(fmt.Sprintf("unhandled expression %T", e))
}
