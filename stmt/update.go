package stmt

import (
	"github.com/Serajian/go-query-builder/cond"
	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
)

// Assignment is one `col = expr` term of an UPDATE SET list.
type Assignment struct {
	Column ident.Column
	Value  expr.Expression
}

// Update is the UPDATE statement IR.
type Update struct {
	table       ident.Table
	assignments []Assignment
	where       *cond.Cond
	whereState  whereState
	returning   *Returning
}

// NewUpdate builds an empty UPDATE targeting t.
func NewUpdate(t ident.Table) *Update { return &Update{table: t} }

// Table sets (or changes) the target table.
func (u *Update) Table(t ident.Table) *Update {
	u.table = t
	return u
}

// Values appends column/value pairs to the SET list.
func (u *Update) Values(assignments ...Assignment) *Update {
	u.assignments = append(u.assignments, assignments...)
	return u
}

// ValueExpr appends a single `col = expr` SET term.
func (u *Update) ValueExpr(c ident.Column, e expr.Expr) *Update {
	u.assignments = append(u.assignments, Assignment{Column: c, Value: e.Expression()})
	return u
}

// AndWhere appends e into the WHERE root's AND-group.
func (u *Update) AndWhere(e expr.Expr) *Update {
	u.where, u.whereState = andWhere("Update.AndWhere", u.where, u.whereState, e.Expression())
	return u
}

// OrWhere appends e into the WHERE root's OR-group.
func (u *Update) OrWhere(e expr.Expr) *Update {
	u.where, u.whereState = orWhere("Update.OrWhere", u.where, u.whereState, e.Expression())
	return u
}

// CondWhere replaces the WHERE root outright.
func (u *Update) CondWhere(c *cond.Cond) *Update {
	u.where, u.whereState = condWhere(c)
	return u
}

// Returning attaches a RETURNING clause.
func (u *Update) Returning(r *Returning) *Update {
	u.returning = r
	return u
}

func (u *Update) TableVal() ident.Table         { return u.table }
func (u *Update) Assignments() []Assignment     { return u.assignments }
func (u *Update) Where() *cond.Cond              { return u.where }
func (u *Update) ReturningClause() *Returning    { return u.returning }

// Conditions invokes exactly one of ifTrue or ifFalse with u, letting a
// chained builder expression branch inline on flag without breaking out
// of the chain.
func (u *Update) Conditions(flag bool, ifTrue, ifFalse func(*Update)) *Update {
	if flag {
		ifTrue(u)
	} else {
		ifFalse(u)
	}
	return u
}
