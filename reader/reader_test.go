package reader

import (
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alecthomas/repr"

	"github.com/programLyrique/analysr/ast"
	"github.com/programLyrique/analysr/builder"
	"github.com/programLyrique/analysr/errors"
	"github.com/programLyrique/analysr/types"
)

// if (x == 1) 1 else 2, as dump.R prints it
const ifElseJSON = `{"kind":"exprlist","children":[
  {"kind":"call","children":[
    {"kind":"symbol","text":"if"},
    {"kind":"call","children":[
      {"kind":"symbol","text":"=="},
      {"kind":"symbol","text":"x"},
      {"kind":"real","real":1}
    ]},
    {"kind":"real","real":1},
    {"kind":"real","real":2}
  ]}
]}`

// f <- function(a, b = 2L) NULL
const functionYAML = `
kind: exprlist
children:
  - kind: call
    children:
      - kind: symbol
        text: "<-"
      - kind: symbol
        text: f
      - kind: call
        children:
          - kind: symbol
            text: function
          - null
          - kind: arglist
            children:
              - kind: symbol
                text: ""
                tag: a
              - kind: integer
                int: 2
                tag: b
          - kind: "null"
`

func TestDecode(t *testing.T) {
	n, err := Decode([]byte(ifElseJSON))
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != types.StatementSequence || len(n.Children) != 1 {
		t.Fatalf("unexpected root %s", repr.String(n))
	}

	expr, err := builder.Build(n)
	if err != nil {
		t.Fatal(err)
	}

	want := ast.If{
		Cond: ast.Call{Func: ast.Symbol("=="), Args: []ast.Expr{ast.Symbol("x"), ast.Lit{Value: ast.Real(1)}}},
		Then: ast.Lit{Value: ast.Real(1)},
		Else: ast.Lit{Value: ast.Real(2)},
	}
	if !reflect.DeepEqual(expr, want) {
		t.Fatalf("got %s\nexpected %s", repr.String(expr), repr.String(want))
	}
}

func TestDecodeYAML(t *testing.T) {
	n, err := DecodeYAML([]byte(functionYAML))
	if err != nil {
		t.Fatal(err)
	}

	fn := n.Children[0].Children[2]
	if fn.Children[1] != nil {
		t.Fatalf("source reference placeholder should decode to nil, got %s", repr.String(fn.Children[1]))
	}

	expr, err := builder.Build(n)
	if err != nil {
		t.Fatal(err)
	}

	want := ast.Call{
		Func: ast.Symbol("<-"),
		Args: []ast.Expr{
			ast.Symbol("f"),
			ast.Function{Params: ast.ArgList{"a", "b"}, Body: ast.Lit{Value: ast.Null{}}},
		},
	}
	if !reflect.DeepEqual(expr, want) {
		t.Fatalf("got %s\nexpected %s", repr.String(expr), repr.String(want))
	}
}

func TestDecodeScalars(t *testing.T) {
	n, err := Decode([]byte(`{"kind":"exprlist","children":[
		{"kind":"integer","na":true},
		{"kind":"string","str":"hello world"},
		{"kind":"logical","lgl":true},
		{"kind":"real","text":"-Inf"},
		{"kind":"complex"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	c := n.Children
	if !c[0].NA || c[0].Kind != types.Integer {
		t.Errorf("expected NA integer, got %s", repr.String(c[0]))
	}
	if c[1].Str != "hello world" {
		t.Errorf("got %q", c[1].Str)
	}
	if !c[2].Bool {
		t.Error("expected TRUE")
	}
	if !math.IsInf(c[3].Real, -1) {
		t.Errorf("expected -Inf, got %v", c[3].Real)
	}
	if c[4].Kind != types.Other || c[4].Text != "complex" {
		t.Errorf("unknown kinds should decode to other, got %s", repr.String(c[4]))
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte(`{"kind":`)); err == nil {
		t.Fatal("expected a decoding error")
	}
}

func TestReadFileDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "tree.json")
	if err := os.WriteFile(jsonPath, []byte(ifElseJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "tree.yml")
	if err := os.WriteFile(yamlPath, []byte(functionYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		n, err := ReadFile(path, Options{Rscript: "/nonexistent/Rscript"})
		if err != nil {
			t.Fatalf("%s: %s", path, err)
		}
		if n.Kind != types.StatementSequence {
			t.Fatalf("%s: unexpected root %s", path, repr.String(n))
		}
	}
}

func TestParseReportsHostFailure(t *testing.T) {
	src := filepath.Join(t.TempDir(), "prog.R")
	if err := os.WriteFile(src, []byte("x <- 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(src, Options{Rscript: "/nonexistent/Rscript"})
	hostErr, ok := err.(errors.HostParser)
	if !ok {
		t.Fatalf("expected HostParser, got %#v", err)
	}
	if hostErr.File != src {
		t.Fatalf("wrong file %q", hostErr.File)
	}
}

const rSource = `f <- function(a, b = 2L) NULL
function() 1
x[, 1]
if (c) 1
for (i in xs) next
`

func TestParseWithRscript(t *testing.T) {
	rscript, err := exec.LookPath("Rscript")
	if err != nil {
		t.Skip("Rscript not in PATH")
	}

	src := filepath.Join(t.TempDir(), "prog.R")
	if err := os.WriteFile(src, []byte(rSource), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := Parse(src, Options{Rscript: rscript})
	if err != nil {
		t.Fatal(err)
	}

	fn := n.Children[0].Children[2]
	if fn.Kind != types.Call || len(fn.Children) != 4 || fn.Children[1] != nil {
		t.Fatalf("function should be [head, null, formals, body], got %s", repr.String(fn))
	}

	expr, err := builder.Build(n)
	if err != nil {
		t.Fatal(err)
	}

	one := ast.Lit{Value: ast.Real(1)}
	want := ast.Statements{
		ast.Call{Func: ast.Symbol("<-"), Args: []ast.Expr{
			ast.Symbol("f"),
			ast.Function{Params: ast.ArgList{"a", "b"}, Body: ast.Lit{Value: ast.Null{}}},
		}},
		ast.Function{Params: ast.ArgList{}, Body: one},
		ast.Call{Func: ast.Symbol("["), Args: []ast.Expr{ast.Symbol("x"), ast.Symbol(""), one}},
		ast.If{Cond: ast.Symbol("c"), Then: one, Else: ast.Empty{}},
		ast.For{Var: "i", Seq: ast.Symbol("xs"), Body: ast.Next{}},
	}
	if !reflect.DeepEqual(expr, want) {
		t.Fatalf("got %s\nexpected %s", repr.String(expr), repr.String(want))
	}
}
