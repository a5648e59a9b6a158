package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type TypeDecls struct {
	Declarations []*Declaration `@@*`
}

type Field struct {
	Name string `@Ident`
	Kind string `@("[" "]")? @Ident`
}

type Record struct {
	Fields []*Field `"{" (@@ ("," @@)*)? "}"`
}

type TCase struct {
	Name   string  `@Ident "of"`
	Record *Record `(  @@`
	Kind   string  ` | @("[" "]")? @Ident | @String | @RawString)`
}

type Declaration struct {
	Name  string   `"type" @Ident "="`
	Plain *string  `(  (@Ident | @String | @RawString)`
	Many  *[]TCase ` | ("|" (@@))*)`
	I     struct{} `";"`
}

func (t *TypeDecls) IsSumType(name string) bool {
	for _, decls := range t.Declarations {
		if decls.Name == name && decls.Many != nil {
			return true
		}
	}
	return false
}

func (t *TypeDecls) caseType(f *File, it TCase) {
	switch {
	case it.Record != nil:
		f.Type().Id(it.Name).StructFunc(func(g *Group) {
			for _, field := range it.Record.Fields {
				g.Id(field.Name).Id(field.Kind)
			}
		})
	case t.IsSumType(it.Kind):
		f.Type().Id(it.Name).Struct(Id(it.Kind))
	default:
		f.Type().Id(it.Name).Id(it.Kind)
	}
}

func GenerateDecls(pkgname string, t *TypeDecls) string {
	f := NewFile(pkgname)

	for _, decl := range t.Declarations {

		if decl.Plain != nil {
			f.Type().Id(decl.Name).Id(*decl.Plain)
		} else if decl.Many != nil {
			f.Type().Id(decl.Name).Interface(
				Id("is_" + decl.Name).Params(),
			)

			for _, it := range *decl.Many {
				t.caseType(f, it)
				f.Func().Params(Id("v").Id(it.Name)).Id("is_" + decl.Name).Params().Block()
			}
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: tool INPUT.adt OUTPUT.go PACKAGE")
		os.Exit(2)
	}

	parser := participle.MustBuild(&TypeDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	ast := TypeDecls{}
	err = parser.ParseBytes(inData, &ast)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, &ast)), 0644)
	if err != nil {
		panic(err)
	}
}
