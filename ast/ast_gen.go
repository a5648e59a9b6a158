package ast

type Value interface {
	is_Value()
}
type Real float64

func (v Real) is_Value() {}

type Int int64

func (v Int) is_Value() {}

type Str string

func (v Str) is_Value() {}

type Bool bool

func (v Bool) is_Value() {}

type Null struct{}

func (v Null) is_Value() {}

type NA struct{}

func (v NA) is_Value() {}

type Expr interface {
	is_Expr()
}
type Lit struct {
	Value
}

func (v Lit) is_Expr() {}

type Symbol string

func (v Symbol) is_Expr() {}

type Statements []Expr

func (v Statements) is_Expr() {}

type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (v If) is_Expr() {}

type For struct {
	Var  Symbol
	Seq  Expr
	Body Expr
}

func (v For) is_Expr() {}

type While struct {
	Cond Expr
	Body Expr
}

func (v While) is_Expr() {}

type Repeat struct {
	Body Expr
}

func (v Repeat) is_Expr() {}

type Call struct {
	Func Expr
	Args []Expr
}

func (v Call) is_Expr() {}

type Function struct {
	Params Expr
	Body   Expr
}

func (v Function) is_Expr() {}

type ArgList []Symbol

func (v ArgList) is_Expr() {}

type Break struct{}

func (v Break) is_Expr() {}

type Next struct{}

func (v Next) is_Expr() {}

type Empty struct{}

func (v Empty) is_Expr() {}
