package render

import (
	"strings"

	"github.com/Serajian/go-query-builder/stmt"
)

func renderUpdateStmt(c *ctx, u *stmt.Update) string {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(quoteIdent(u.TableVal().TableName(), c.d))
	b.WriteString(" SET ")
	parts := make([]string, len(u.Assignments()))
	for i, a := range u.Assignments() {
		parts[i] = quoteIdent(a.Column.ColumnName(), c.d) + " = " + renderExpr(c, a.Value)
	}
	b.WriteString(strings.Join(parts, ", "))
	if where, ok := renderWhereClause(c, u.Where()); ok {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	b.WriteString(renderReturning(c, u.ReturningClause()))
	return b.String()
}
