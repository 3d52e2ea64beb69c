package stmt

import (
	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
)

// ConflictAction discriminates an ON CONFLICT clause's action.
type ConflictAction int

const (
	ConflictNothing ConflictAction = iota
	ConflictUpdateColumns
	ConflictUpdateValues
	ConflictUpdateExpr
)

// ConflictAssignment is one `col = value-or-expr` pair for
// UpdateValues/UpdateExpr actions.
type ConflictAssignment struct {
	Column ident.Column
	Value  expr.Expression
}

// OnConflict is an `ON CONFLICT (target...) DO ...` clause. UpdateColumns
// emits `col = "excluded"."col"` for each listed column; UpdateValues/
// UpdateExpr emit the given literal/expression verbatim on the right-hand
// side.
type OnConflict struct {
	target      []ident.Column
	constraint  string
	action      ConflictAction
	updateCols  []ident.Column
	assignments []ConflictAssignment
}

// NewOnConflict builds an empty ON CONFLICT descriptor.
func NewOnConflict() *OnConflict { return &OnConflict{} }

// Column sets a single-column conflict target.
func (o *OnConflict) Column(c ident.Column) *OnConflict {
	o.target = []ident.Column{c}
	return o
}

// Columns sets a multi-column conflict target.
func (o *OnConflict) Columns(cols ...ident.Column) *OnConflict {
	o.target = cols
	return o
}

// OnConstraint targets a named constraint instead of a column list.
func (o *OnConflict) OnConstraint(name string) *OnConflict {
	o.constraint = name
	return o
}

// DoNothing sets the action to ON CONFLICT DO NOTHING.
func (o *OnConflict) DoNothing() *OnConflict {
	o.action = ConflictNothing
	return o
}

// UpdateColumn sets the action to DO UPDATE SET col = excluded.col for one
// column.
func (o *OnConflict) UpdateColumn(c ident.Column) *OnConflict {
	o.action = ConflictUpdateColumns
	o.updateCols = []ident.Column{c}
	return o
}

// UpdateColumns sets the action to DO UPDATE SET col = excluded.col for
// each listed column.
func (o *OnConflict) UpdateColumns(cols ...ident.Column) *OnConflict {
	o.action = ConflictUpdateColumns
	o.updateCols = cols
	return o
}

// UpdateValues sets the action to DO UPDATE SET col = <literal> for each
// pair, emitted verbatim rather than referencing excluded.col.
func (o *OnConflict) UpdateValues(assignments ...ConflictAssignment) *OnConflict {
	o.action = ConflictUpdateValues
	o.assignments = assignments
	return o
}

// UpdateExpr sets the action to DO UPDATE SET col = <expr> for a single
// column/expression pair.
func (o *OnConflict) UpdateExpr(col ident.Column, e expr.Expr) *OnConflict {
	o.action = ConflictUpdateExpr
	o.assignments = []ConflictAssignment{{Column: col, Value: e.Expression()}}
	return o
}

func (o *OnConflict) Target() []ident.Column               { return o.target }
func (o *OnConflict) Constraint() string                   { return o.constraint }
func (o *OnConflict) Action() ConflictAction                { return o.action }
func (o *OnConflict) UpdateColumnNames() []ident.Column     { return o.updateCols }
func (o *OnConflict) Assignments() []ConflictAssignment     { return o.assignments }
