package render

import (
	"strings"

	"github.com/Serajian/go-query-builder/dialect"
	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
	"github.com/Serajian/go-query-builder/stmt"
)

func renderInsertStmt(c *ctx, ins *stmt.Insert) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(quoteIdent(ins.Table().TableName(), c.d))

	cols := ins.ColumnList()
	if len(cols) > 0 {
		b.WriteString(" (")
		b.WriteString(renderColumnNames(cols, c.d))
		b.WriteString(")")
	}

	switch {
	case ins.SelectSource() != nil:
		b.WriteString(" ")
		b.WriteString(renderSelectStmt(c, ins.SelectSource()))
	case ins.DefaultValues() && len(ins.Rows()) == 0:
		b.WriteString(" DEFAULT VALUES")
	default:
		b.WriteString(" VALUES ")
		b.WriteString(renderInsertRows(c, ins.Rows()))
	}

	if oc := ins.ConflictClause(); oc != nil {
		b.WriteString(" ")
		b.WriteString(renderOnConflict(c, oc))
	}
	b.WriteString(renderReturning(c, ins.ReturningClause()))
	return b.String()
}

func renderColumnNames(cols []ident.Column, d dialect.Dialect) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = quoteIdent(c.ColumnName(), d)
	}
	return strings.Join(parts, ", ")
}

func renderInsertRows(c *ctx, rows [][]expr.Expression) string {
	rowParts := make([]string, len(rows))
	for i, row := range rows {
		vals := make([]string, len(row))
		for j, v := range row {
			vals[j] = renderExpr(c, v)
		}
		rowParts[i] = "(" + strings.Join(vals, ", ") + ")"
	}
	return strings.Join(rowParts, ", ")
}

func renderOnConflict(c *ctx, oc *stmt.OnConflict) string {
	var b strings.Builder
	b.WriteString("ON CONFLICT ")
	if len(oc.Target()) > 0 {
		b.WriteString("(")
		parts := make([]string, len(oc.Target()))
		for i, t := range oc.Target() {
			parts[i] = quoteIdent(t.ColumnName(), c.d)
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(") ")
	} else if oc.Constraint() != "" {
		b.WriteString("ON CONSTRAINT ")
		b.WriteString(quoteIdent(oc.Constraint(), c.d))
		b.WriteString(" ")
	}
	switch oc.Action() {
	case stmt.ConflictNothing:
		b.WriteString("DO NOTHING")
	case stmt.ConflictUpdateColumns:
		b.WriteString("DO UPDATE SET ")
		parts := make([]string, len(oc.UpdateColumnNames()))
		for i, col := range oc.UpdateColumnNames() {
			q := quoteIdent(col.ColumnName(), c.d)
			parts[i] = q + " = " + quoteIdent("excluded", c.d) + "." + q
		}
		b.WriteString(strings.Join(parts, ", "))
	case stmt.ConflictUpdateValues, stmt.ConflictUpdateExpr:
		b.WriteString("DO UPDATE SET ")
		parts := make([]string, len(oc.Assignments()))
		for i, a := range oc.Assignments() {
			parts[i] = quoteIdent(a.Column.ColumnName(), c.d) + " = " + renderExpr(c, a.Value)
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	return strings.TrimRight(b.String(), " ")
}
