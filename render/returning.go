package render

import (
	"strings"

	"github.com/Serajian/go-query-builder/stmt"
)

// renderReturning renders a RETURNING clause (without a leading space),
// or "" when r is nil or the dialect doesn't support RETURNING at all
// (dialect.MySQL falls back silently rather than erroring).
func renderReturning(c *ctx, r *stmt.Returning) string {
	if r == nil || r.Kind() == stmt.ReturningNone || !c.d.SupportsReturning() {
		return ""
	}
	if r.Kind() == stmt.ReturningAll {
		return " RETURNING *"
	}
	parts := make([]string, len(r.Exprs()))
	for i, e := range r.Exprs() {
		parts[i] = renderExpr(c, e)
	}
	return " RETURNING " + strings.Join(parts, ", ")
}
