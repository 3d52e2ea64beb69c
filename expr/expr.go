// Package expr implements the recursive expression AST (module C): columns,
// literals, raw fragments, binary/unary operators, function calls,
// BETWEEN/IN/LIKE, IS NULL, tuples, subqueries, CASE, and aliasing, plus the
// fluent chain-call constructors the rest of the module uses to build them.
package expr

import (
	"github.com/Serajian/go-query-builder/ident"
	"github.com/Serajian/go-query-builder/value"
)

// Op is a binary operator tag; it also carries the precedence class the
// renderer uses to decide parenthesization.
type Op string

const (
	OpEq      Op = "="
	OpNe      Op = "<>"
	OpLt      Op = "<"
	OpLe      Op = "<="
	OpGt      Op = ">"
	OpGe      Op = ">="
	OpAdd     Op = "+"
	OpSub     Op = "-"
	OpMul     Op = "*"
	OpDiv     Op = "/"
	OpAnd     Op = "AND"
	OpOr      Op = "OR"
	OpLike    Op = "LIKE"
	OpNotLike Op = "NOT LIKE"
	OpIn      Op = "IN"
	OpNotIn   Op = "NOT IN"
	OpIs      Op = "IS"
	OpIsNot   Op = "IS NOT"
)

// Precedence reports the operator's binding strength. Lower binds looser.
// OR < AND < comparisons < {+,-} < {*,/}.
func (o Op) Precedence() int {
	switch o {
	case OpOr:
		return 1
	case OpAnd:
		return 2
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe, OpLike, OpNotLike, OpIn, OpNotIn, OpIs, OpIsNot:
		return 3
	case OpAdd, OpSub:
		return 4
	case OpMul, OpDiv:
		return 5
	default:
		return 0
	}
}

// IsLogical reports whether the operator is AND/OR.
func (o Op) IsLogical() bool { return o == OpAnd || o == OpOr }

// IsComparison reports whether the operator is a comparison/predicate op.
func (o Op) IsComparison() bool { return o.Precedence() == 3 }

// Expression is the marker interface every AST node implements. Renderer
// code type-switches on the concrete pointer types below.
type Expression interface {
	isExpression()
}

// ColumnRef is a bare column, a table-qualified column, a bare asterisk, or
// a table-qualified asterisk (table.*).
type ColumnRef struct {
	Table    ident.Table
	Column   ident.Column
	Asterisk bool
}

// Literal wraps a scalar Value.
type Literal struct {
	Value value.Value
}

// Custom is an opaque raw SQL fragment, emitted verbatim.
type Custom struct {
	SQL string
}

// BinaryOp is `Lhs Op Rhs`.
type BinaryOp struct {
	Op  Op
	Lhs Expression
	Rhs Expression
}

// UnaryNot is `NOT Operand`.
type UnaryNot struct {
	Operand Expression
}

// FuncCall is `Name(arg1, arg2, ...)`.
type FuncCall struct {
	Name string
	Args []Expression
}

// Between is `Operand [NOT] BETWEEN Lo AND Hi`.
type Between struct {
	Operand Expression
	Lo      Expression
	Hi      Expression
	Not     bool
}

// InList is `Operand [NOT] IN (v1, v2, ...)`.
type InList struct {
	Operand Expression
	Items   []Expression
	Not     bool
}

// InSubquery is `Operand [NOT] IN (SELECT ...)`.
type InSubquery struct {
	Operand Expression
	Sub     Selectish
	Not     bool
}

// Like is `Operand [NOT] LIKE Pattern [ESCAPE 'c']`.
type Like struct {
	Operand Expression
	Pattern Expression
	Not     bool
	Escape  *byte
}

// IsNull is `Operand IS [NOT] NULL`.
type IsNull struct {
	Operand Expression
	Not     bool
}

// Tuple is `(e1, e2, ..., en)`, used for row-value comparisons.
type Tuple struct {
	Items []Expression
}

// Selectish is satisfied by stmt.Select; expr cannot import stmt (stmt
// imports expr for its expression fields), so a subquery only requires its
// target implement this marker.
type Selectish interface {
	IsSelect()
}

// SubQuery holds a nested SELECT IR, owned by the parent expression tree.
type SubQuery struct {
	Stmt Selectish
}

// WhenThen is one branch of a CASE expression.
type WhenThen struct {
	When Expression
	Then Expression
}

// Case is `CASE WHEN w1 THEN t1 ... [ELSE e] END`.
type Case struct {
	Whens []WhenThen
	Else  Expression
}

// As is an alias wrapper used in projections: `Inner AS Alias`.
type As struct {
	Inner Expression
	Alias string
}

func (*ColumnRef) isExpression()  {}
func (*Literal) isExpression()    {}
func (*Custom) isExpression()     {}
func (*BinaryOp) isExpression()   {}
func (*UnaryNot) isExpression()   {}
func (*FuncCall) isExpression()   {}
func (*Between) isExpression()    {}
func (*InList) isExpression()     {}
func (*InSubquery) isExpression() {}
func (*Like) isExpression()       {}
func (*IsNull) isExpression()     {}
func (*Tuple) isExpression()      {}
func (*SubQuery) isExpression()   {}
func (*Case) isExpression()       {}
func (*As) isExpression()         {}
