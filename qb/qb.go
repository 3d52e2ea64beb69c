// Package qb is the builder facade: one constructor per statement kind,
// each returning the richer, per-kind stmt IR package render consumes
// (see DESIGN.md).
package qb

import (
	"github.com/sirupsen/logrus"

	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
	"github.com/Serajian/go-query-builder/stmt"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger installs the logger used for the optional debug line emitted
// whenever a statement is rendered through this package's helpers. Pass
// nil to disable logging entirely.
func SetLogger(l logrus.FieldLogger) { logger = l }

func logBuild(kind string, sql string) {
	if logger == nil {
		return
	}
	logger.WithField("statement", kind).Debug(sql)
}

// Select starts a new SELECT statement, optionally projecting the given
// bare columns.
func Select(cols ...ident.Column) *stmt.Select {
	s := stmt.NewSelect()
	if len(cols) > 0 {
		s.Columns(cols...)
	}
	return s
}

// Insert starts a new INSERT statement targeting t.
func Insert(t ident.Table) *stmt.Insert { return stmt.NewInsert(t) }

// Update starts a new UPDATE statement targeting t.
func Update(t ident.Table) *stmt.Update { return stmt.NewUpdate(t) }

// Delete starts a new DELETE statement targeting t.
func Delete(t ident.Table) *stmt.Delete { return stmt.NewDelete(t) }

// ReturningBuilder is sugar over the stmt.Returning constructors, mirroring
// the reference API's Query::returning() entry point.
type ReturningBuilder struct{}

// Returning starts a RETURNING clause descriptor.
func Returning() ReturningBuilder { return ReturningBuilder{} }

// All builds a `RETURNING *` clause.
func (ReturningBuilder) All() *stmt.Returning { return stmt.ReturningAllColumns() }

// Columns builds a `RETURNING col1, col2, ...` clause.
func (ReturningBuilder) Columns(cols ...ident.Column) *stmt.Returning {
	es := make([]expr.Expr, len(cols))
	for i, c := range cols {
		es[i] = expr.Col(c)
	}
	return stmt.ReturningCols(es...)
}

// Exprs builds a `RETURNING expr1, expr2, ...` clause from arbitrary
// (possibly aliased) expressions.
func (ReturningBuilder) Exprs(es ...expr.Expr) *stmt.Returning {
	return stmt.ReturningExprsOf(es...)
}
