package classify

import (
	"testing"

	"github.com/programLyrique/analysr/errors"
	"github.com/programLyrique/analysr/types"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		node *types.Node
		want types.Kind
	}{
		{"nil is null", nil, types.Null},
		{"integer", &types.Node{Kind: types.Integer, Int: 1}, types.Integer},
		{"real", &types.Node{Kind: types.Real, Real: 1}, types.Real},
		{"string", &types.Node{Kind: types.String, Str: "a"}, types.String},
		{"logical", &types.Node{Kind: types.Logical, Bool: true}, types.Logical},
		{"symbol", &types.Node{Kind: types.Symbol, Text: "x"}, types.Symbol},
		{"call", &types.Node{Kind: types.Call}, types.Call},
		{"arglist", &types.Node{Kind: types.ArgumentList}, types.ArgumentList},
		{"exprlist", &types.Node{Kind: types.StatementSequence}, types.StatementSequence},
		{"other", &types.Node{Kind: types.Other, Text: "complex"}, types.Other},
		{"out of range", &types.Node{Kind: types.Kind(99)}, types.Other},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			first := Classify(c.node)
			if first != c.want {
				t.Fatalf("got %s, expected %s", first, c.want)
			}
			if second := Classify(c.node); second != first {
				t.Fatalf("classification changed between calls: %s then %s", first, second)
			}
		})
	}
}

func TestIsMissing(t *testing.T) {
	for _, k := range []types.Kind{types.Integer, types.Real, types.String, types.Logical} {
		if !IsMissing(&types.Node{Kind: k, NA: true}) {
			t.Errorf("NA %s should be missing", k)
		}
		if IsMissing(&types.Node{Kind: k}) {
			t.Errorf("plain %s should not be missing", k)
		}
	}

	if IsMissing(&types.Node{Kind: types.Symbol, NA: true}) {
		t.Error("NA flag on a symbol must be ignored")
	}
	if IsMissing(nil) {
		t.Error("NULL is not a missing value")
	}
}

func TestExtraction(t *testing.T) {
	i, err := AsInt(&types.Node{Kind: types.Integer, Int: 42})
	if err != nil || i != 42 {
		t.Fatalf("AsInt: %d, %v", i, err)
	}
	r, err := AsReal(&types.Node{Kind: types.Real, Real: 2.5})
	if err != nil || r != 2.5 {
		t.Fatalf("AsReal: %v, %v", r, err)
	}
	b, err := AsBool(&types.Node{Kind: types.Logical, Bool: true})
	if err != nil || !b {
		t.Fatalf("AsBool: %v, %v", b, err)
	}
	s, err := AsString(&types.Node{Kind: types.String, Str: "hello world"})
	if err != nil || s != "hello world" {
		t.Fatalf("AsString: %q, %v", s, err)
	}
	sym, err := AsSymbolText(&types.Node{Kind: types.Symbol, Text: "x"})
	if err != nil || sym != "x" {
		t.Fatalf("AsSymbolText: %q, %v", sym, err)
	}
}

func TestExtractionMismatch(t *testing.T) {
	_, err := AsInt(&types.Node{Kind: types.Real, Real: 1})
	e, ok := err.(errors.ExtractionError)
	if !ok {
		t.Fatalf("expected ExtractionError, got %#v", err)
	}
	if e.Want != types.Integer || e.Got != types.Real {
		t.Fatalf("wrong kinds in %v", e)
	}

	if _, err := AsSymbolText(nil); err == nil {
		t.Fatal("extracting a symbol from NULL should fail")
	}
	if _, err := AsString(&types.Node{Kind: types.Symbol, Text: "x"}); err == nil {
		t.Fatal("extracting a string from a symbol should fail")
	}
}

func TestChildren(t *testing.T) {
	a := &types.Node{Kind: types.Symbol, Text: "a"}
	b := &types.Node{Kind: types.Symbol, Text: "b"}
	call := &types.Node{Kind: types.Call, Children: []*types.Node{a, b}}

	got, err := Children(call)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("children out of order: %v", got)
	}

	if _, err := Children(a); err == nil {
		t.Fatal("a symbol has no children")
	}
}

func TestTag(t *testing.T) {
	if Tag(nil) != "" {
		t.Fatal("nil has no tag")
	}
	if got := Tag(&types.Node{Kind: types.Symbol, Tag: "x"}); got != "x" {
		t.Fatalf("got tag %q", got)
	}
}
