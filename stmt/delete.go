package stmt

import (
	"github.com/Serajian/go-query-builder/cond"
	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
)

// Delete is the DELETE statement IR.
type Delete struct {
	table      ident.Table
	where      *cond.Cond
	whereState whereState
	returning  *Returning
}

// NewDelete builds an empty DELETE targeting t.
func NewDelete(t ident.Table) *Delete { return &Delete{table: t} }

// FromTable sets (or changes) the target table.
func (d *Delete) FromTable(t ident.Table) *Delete {
	d.table = t
	return d
}

// AndWhere appends e into the WHERE root's AND-group.
func (d *Delete) AndWhere(e expr.Expr) *Delete {
	d.where, d.whereState = andWhere("Delete.AndWhere", d.where, d.whereState, e.Expression())
	return d
}

// OrWhere appends e into the WHERE root's OR-group.
func (d *Delete) OrWhere(e expr.Expr) *Delete {
	d.where, d.whereState = orWhere("Delete.OrWhere", d.where, d.whereState, e.Expression())
	return d
}

// CondWhere replaces the WHERE root outright.
func (d *Delete) CondWhere(c *cond.Cond) *Delete {
	d.where, d.whereState = condWhere(c)
	return d
}

// Returning attaches a RETURNING clause.
func (d *Delete) Returning(r *Returning) *Delete {
	d.returning = r
	return d
}

func (d *Delete) TableVal() ident.Table      { return d.table }
func (d *Delete) Where() *cond.Cond           { return d.where }
func (d *Delete) ReturningClause() *Returning { return d.returning }

// Conditions invokes exactly one of ifTrue or ifFalse with d, letting a
// chained builder expression branch inline on flag without breaking out
// of the chain.
func (d *Delete) Conditions(flag bool, ifTrue, ifFalse func(*Delete)) *Delete {
	if flag {
		ifTrue(d)
	} else {
		ifFalse(d)
	}
	return d
}
