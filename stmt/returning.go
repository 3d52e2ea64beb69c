package stmt

import "github.com/Serajian/go-query-builder/expr"

// ReturningKind discriminates which form of RETURNING clause is set.
type ReturningKind int

const (
	ReturningNone ReturningKind = iota
	ReturningAll
	ReturningColumns
	ReturningExprs
)

// Returning is the post-mutation projection clause shared by Insert,
// Update, and Delete: All, specific Columns, or arbitrary Exprs.
type Returning struct {
	kind  ReturningKind
	exprs []expr.Expression
}

func (r *Returning) Kind() ReturningKind     { return r.kind }
func (r *Returning) Exprs() []expr.Expression { return r.exprs }

// ReturningAllColumns builds a `RETURNING *` clause.
func ReturningAllColumns() *Returning { return &Returning{kind: ReturningAll} }

// ReturningCols builds a `RETURNING col1, col2, ...` clause.
func ReturningCols(cols ...expr.Expr) *Returning {
	r := &Returning{kind: ReturningColumns}
	for _, c := range cols {
		r.exprs = append(r.exprs, c.Expression())
	}
	return r
}

// ReturningExprsOf builds a `RETURNING expr1, expr2, ...` clause from
// arbitrary (possibly aliased) expressions.
func ReturningExprsOf(es ...expr.Expr) *Returning {
	r := &Returning{kind: ReturningExprs}
	for _, e := range es {
		r.exprs = append(r.exprs, e.Expression())
	}
	return r
}
