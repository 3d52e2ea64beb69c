package render

import (
	"strings"

	"github.com/Serajian/go-query-builder/stmt"
)

func renderDeleteStmt(c *ctx, d *stmt.Delete) string {
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(quoteIdent(d.TableVal().TableName(), c.d))
	if where, ok := renderWhereClause(c, d.Where()); ok {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	b.WriteString(renderReturning(c, d.ReturningClause()))
	return b.String()
}
