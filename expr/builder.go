package expr

import (
	"time"

	"github.com/google/uuid"

	"github.com/Serajian/go-query-builder/ident"
	"github.com/Serajian/go-query-builder/value"
)

// Expr is the fluent builder every factory and chain method below produces
// and consumes. It wraps a single Expression node; further chain calls
// build a new, larger node around it, so wrapping an already-built
// expression and chaining further arithmetic on it applies to the whole
// wrapped sub-expression.
type Expr struct {
	node Expression
}

// Expression returns the wrapped AST node for consumption by cond/stmt/render.
func (e Expr) Expression() Expression { return e.node }

// Wrap re-enters the fluent chain around an existing Expr (use
// FromExpression for a bare Expression), so further chained arithmetic binds
// to the whole wrapped sub-expression rather than re-associating with its
// pieces. It returns e unchanged.
func Wrap(e Expr) Expr { return e }

// FromExpression lifts a bare Expression (as stored inside cond/stmt IR)
// back into the fluent builder.
func FromExpression(n Expression) Expr { return Expr{node: n} }

// Col builds a bare column reference.
func Col(c ident.Column) Expr { return Expr{&ColumnRef{Column: c}} }

// Tbl builds a table-qualified column reference.
func Tbl(t ident.Table, c ident.Column) Expr { return Expr{&ColumnRef{Table: t, Column: c}} }

// Asterisk builds a bare `*` projection.
func Asterisk() Expr { return Expr{&ColumnRef{Asterisk: true}} }

// TableAsterisk builds a `table.*` projection.
func TableAsterisk(t ident.Table) Expr { return Expr{&ColumnRef{Table: t, Asterisk: true}} }

// Val wraps any supported Go scalar (or a value.Value) as a literal.
func Val(v interface{}) Expr { return Expr{&Literal{Value: toValue(v)}} }

// Cust builds a raw, verbatim SQL fragment.
func Cust(sql string) Expr { return Expr{&Custom{SQL: sql}} }

// Tup builds a row-value tuple `(e1, e2, ...)`.
func Tup(items ...Expr) Expr {
	nodes := make([]Expression, len(items))
	for i, it := range items {
		nodes[i] = it.node
	}
	return Expr{&Tuple{Items: nodes}}
}

// SubSelect wraps a nested SELECT IR (anything implementing Selectish,
// i.e. *stmt.Select) as a scalar subquery expression.
func SubSelect(s Selectish) Expr { return Expr{&SubQuery{Stmt: s}} }

// toExpr coerces a chain-method argument into an Expression: an Expr's
// wrapped node is used as-is; anything else is treated as a literal value.
func toExpr(v interface{}) Expression {
	if e, ok := v.(Expr); ok {
		return e.node
	}
	return &Literal{Value: toValue(v)}
}

// toValue converts a Go scalar (or an existing value.Value) into a Value.
func toValue(v interface{}) value.Value {
	switch x := v.(type) {
	case value.Value:
		return x
	case nil:
		return value.Null()
	case bool:
		return value.Bool(x)
	case int8:
		return value.TinyInt(x)
	case int16:
		return value.SmallInt(x)
	case int32:
		return value.Int(x)
	case int:
		return value.BigInt(int64(x))
	case int64:
		return value.BigInt(x)
	case uint8:
		return value.UTinyInt(x)
	case uint16:
		return value.USmallInt(x)
	case uint32:
		return value.UInt(x)
	case uint:
		return value.UBigInt(uint64(x))
	case uint64:
		return value.UBigInt(x)
	case float32:
		return value.Float(x)
	case float64:
		return value.Double(x)
	case string:
		return value.String(x)
	case []byte:
		return value.Bytes(x)
	case time.Time:
		return value.Time(x)
	case uuid.UUID:
		return value.Uuid(x)
	default:
		return value.Null()
	}
}

// Binary chain methods.

func (e Expr) binary(op Op, rhs interface{}) Expr {
	return Expr{&BinaryOp{Op: op, Lhs: e.node, Rhs: toExpr(rhs)}}
}

func (e Expr) Eq(rhs interface{}) Expr  { return e.binary(OpEq, rhs) }
func (e Expr) Ne(rhs interface{}) Expr  { return e.binary(OpNe, rhs) }
func (e Expr) Lt(rhs interface{}) Expr  { return e.binary(OpLt, rhs) }
func (e Expr) Le(rhs interface{}) Expr  { return e.binary(OpLe, rhs) }
func (e Expr) Gt(rhs interface{}) Expr  { return e.binary(OpGt, rhs) }
func (e Expr) Ge(rhs interface{}) Expr  { return e.binary(OpGe, rhs) }
func (e Expr) Add(rhs interface{}) Expr { return e.binary(OpAdd, rhs) }
func (e Expr) Sub(rhs interface{}) Expr { return e.binary(OpSub, rhs) }
func (e Expr) Mul(rhs interface{}) Expr { return e.binary(OpMul, rhs) }
func (e Expr) Div(rhs interface{}) Expr { return e.binary(OpDiv, rhs) }

// And/Or build an inline logical connective between two expressions. This
// is distinct from Cond's AND/OR joining (package cond): a chained And/Or
// always renders both operands parenthesized (see render's precedence
// table), whereas Cond-joined siblings usually do not.
func (e Expr) And(rhs Expr) Expr { return Expr{&BinaryOp{Op: OpAnd, Lhs: e.node, Rhs: rhs.node}} }
func (e Expr) Or(rhs Expr) Expr  { return Expr{&BinaryOp{Op: OpOr, Lhs: e.node, Rhs: rhs.node}} }

// Equals is sugar for Eq against a table-qualified column, used to build
// join ON-conditions (`Expr::tbl(...).equals(...)` in the reference API).
func (e Expr) Equals(t ident.Table, c ident.Column) Expr {
	return e.binary(OpEq, Col2(t, c))
}

// Col2 is an internal alias kept distinct from Tbl for readability at call
// sites that compare two qualified columns.
func Col2(t ident.Table, c ident.Column) Expr { return Tbl(t, c) }

// Not wraps the expression in a unary NOT.
func (e Expr) Not() Expr { return Expr{&UnaryNot{Operand: e.node}} }

// Like/NotLike.
func (e Expr) Like(pattern interface{}) Expr {
	return Expr{&Like{Operand: e.node, Pattern: likePatternExpr(pattern), Not: false, Escape: likeEscape(pattern)}}
}

func (e Expr) NotLike(pattern interface{}) Expr {
	return Expr{&Like{Operand: e.node, Pattern: likePatternExpr(pattern), Not: true, Escape: likeEscape(pattern)}}
}

// LikePattern lets callers attach an ESCAPE character to a LIKE pattern,
// e.g. Col(c).Like(NewLikePattern("A").WithEscape('\\')).
type LikePattern struct {
	Pattern string
	esc     *byte
}

func NewLikePattern(pattern string) LikePattern { return LikePattern{Pattern: pattern} }

func (p LikePattern) WithEscape(c byte) LikePattern {
	p.esc = &c
	return p
}

func likePatternExpr(pattern interface{}) Expression {
	if p, ok := pattern.(LikePattern); ok {
		return &Literal{Value: value.String(p.Pattern)}
	}
	return toExpr(pattern)
}

func likeEscape(pattern interface{}) *byte {
	if p, ok := pattern.(LikePattern); ok {
		return p.esc
	}
	return nil
}

// Between/NotBetween.
func (e Expr) Between(lo, hi interface{}) Expr {
	return Expr{&Between{Operand: e.node, Lo: toExpr(lo), Hi: toExpr(hi), Not: false}}
}

func (e Expr) NotBetween(lo, hi interface{}) Expr {
	return Expr{&Between{Operand: e.node, Lo: toExpr(lo), Hi: toExpr(hi), Not: true}}
}

// IsNull/IsNotNull.
func (e Expr) IsNull() Expr    { return Expr{&IsNull{Operand: e.node, Not: false}} }
func (e Expr) IsNotNull() Expr { return Expr{&IsNull{Operand: e.node, Not: true}} }

// IfNull is `IFNULL(e, default)`.
func (e Expr) IfNull(def interface{}) Expr {
	return Expr{&FuncCall{Name: "IFNULL", Args: []Expression{e.node, toExpr(def)}}}
}

// Aggregate/scalar function sugar.
func (e Expr) Max() Expr   { return Expr{&FuncCall{Name: "MAX", Args: []Expression{e.node}}} }
func (e Expr) Min() Expr   { return Expr{&FuncCall{Name: "MIN", Args: []Expression{e.node}}} }
func (e Expr) Sum() Expr   { return Expr{&FuncCall{Name: "SUM", Args: []Expression{e.node}}} }
func (e Expr) Count() Expr { return Expr{&FuncCall{Name: "COUNT", Args: []Expression{e.node}}} }
func (e Expr) Avg() Expr   { return Expr{&FuncCall{Name: "AVG", Args: []Expression{e.node}}} }
func (e Expr) Abs() Expr   { return Expr{&FuncCall{Name: "ABS", Args: []Expression{e.node}}} }

// Coalesce and Func build arbitrary function calls.
func Coalesce(args ...Expr) Expr {
	nodes := make([]Expression, len(args))
	for i, a := range args {
		nodes[i] = a.node
	}
	return Expr{&FuncCall{Name: "COALESCE", Args: nodes}}
}

func Func(name string, args ...Expr) Expr {
	nodes := make([]Expression, len(args))
	for i, a := range args {
		nodes[i] = a.node
	}
	return Expr{&FuncCall{Name: name, Args: nodes}}
}

// InSubquery builds `operand IN (SELECT ...)`.
func (e Expr) InSubquery(s Selectish) Expr {
	return Expr{&InSubquery{Operand: e.node, Sub: s, Not: false}}
}

func (e Expr) NotInSubquery(s Selectish) Expr {
	return Expr{&InSubquery{Operand: e.node, Sub: s, Not: true}}
}

// IsIn/NotIn build `operand [NOT] IN (v1, v2, ...)` from a literal list.
func (e Expr) IsIn(values ...interface{}) Expr {
	return Expr{&InList{Operand: e.node, Items: toExprSlice(values), Not: false}}
}

func (e Expr) NotIn(values ...interface{}) Expr {
	return Expr{&InList{Operand: e.node, Items: toExprSlice(values), Not: true}}
}

func toExprSlice(values []interface{}) []Expression {
	out := make([]Expression, len(values))
	for i, v := range values {
		out[i] = toExpr(v)
	}
	return out
}

// As aliases the expression for use in a SELECT projection.
func (e Expr) As(alias string) Expr { return Expr{&As{Inner: e.node, Alias: alias}} }

// CaseBuilder is the fluent form of Case: chained When(cond, then) calls
// followed by a terminal Else (or Build, for no ELSE branch).
type CaseBuilder struct {
	whens []WhenThen
	els   Expression
}

func NewCase() *CaseBuilder { return &CaseBuilder{} }

func (c *CaseBuilder) When(cond Expr, then Expr) *CaseBuilder {
	c.whens = append(c.whens, WhenThen{When: cond.node, Then: then.node})
	return c
}

func (c *CaseBuilder) Else(e Expr) Expr {
	c.els = e.node
	return Expr{&Case{Whens: c.whens, Else: c.els}}
}

// Build finalizes the CASE without an ELSE branch.
func (c *CaseBuilder) Build() Expr { return Expr{&Case{Whens: c.whens, Else: c.els}} }
