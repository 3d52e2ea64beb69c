package render

import (
	"strings"

	"github.com/Serajian/go-query-builder/dialect"
	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/stmt"
)

// renderExpr dispatches on the concrete expression node. Apart from the
// parentheses that belong to a node's own form (tuple, subquery, CASE), it
// never adds parentheses around itself; callers that embed one expression inside
// another decide whether the child needs wrapping, since the rule depends
// on the parent's kind as much as the child's (select_25/26/30/31).
func renderExpr(c *ctx, e expr.Expression) string {
	switch n := e.(type) {
	case *expr.ColumnRef:
		return renderColumnRef(n, c.d)
	case *expr.Literal:
		return c.literal(n.Value)
	case *expr.Custom:
		return n.SQL
	case *expr.BinaryOp:
		return renderBinaryOp(c, n)
	case *expr.UnaryNot:
		return "NOT " + renderOperand(c, n.Operand)
	case *expr.FuncCall:
		return renderFuncCall(c, n)
	case *expr.Between:
		return renderBetween(c, n)
	case *expr.InList:
		return renderInList(c, n)
	case *expr.InSubquery:
		return renderInSubquery(c, n)
	case *expr.Like:
		return renderLike(c, n)
	case *expr.IsNull:
		return renderIsNull(c, n)
	case *expr.Tuple:
		return renderTuple(c, n)
	case *expr.SubQuery:
		return "(" + renderSelectStmt(c, n.Stmt.(*stmt.Select)) + ")"
	case *expr.Case:
		return renderCase(c, n)
	case *expr.As:
		return renderExpr(c, n.Inner) + " AS " + quoteIdent(n.Alias, c.d)
	default:
		return ""
	}
}

func renderColumnRef(n *expr.ColumnRef, d dialect.Dialect) string {
	if n.Asterisk {
		if n.Table != nil {
			return quoteIdent(n.Table.TableName(), d) + ".*"
		}
		return "*"
	}
	if n.Table != nil {
		return quoteIdent(n.Table.TableName(), d) + "." + quoteIdent(n.Column.ColumnName(), d)
	}
	return quoteIdent(n.Column.ColumnName(), d)
}

// renderOperand renders a sub-expression appearing as the single operand
// of a unary-ish construct (NOT, BETWEEN, LIKE, IS NULL): only a logical
// AND/OR BinaryOp ever needs wrapping there, matching rule (b) applied
// outside a binary-arithmetic context.
func renderOperand(c *ctx, e expr.Expression) string {
	s := renderExpr(c, e)
	if b, ok := e.(*expr.BinaryOp); ok && b.Op.IsLogical() {
		return "(" + s + ")"
	}
	return s
}

// renderLogicalBinary renders an inline a.And(b)/a.Or(b) node: both sides
// are always individually parenthesized, regardless of what they are
// (select_22's `("character" LIKE 'D') AND ("character" LIKE 'E')`).
func renderLogicalBinary(c *ctx, b *expr.BinaryOp) string {
	return "(" + renderExpr(c, b.Lhs) + ") " + string(b.Op) + " (" + renderExpr(c, b.Rhs) + ")"
}

func renderBinaryOp(c *ctx, b *expr.BinaryOp) string {
	if b.Op.IsLogical() {
		return renderLogicalBinary(c, b)
	}
	lhs := renderChildOfBinary(c, b.Op, b.Lhs)
	rhs := renderChildOfBinary(c, b.Op, b.Rhs)
	return lhs + " " + string(b.Op) + " " + rhs
}

// renderChildOfBinary renders one side of a non-logical BinaryOp,
// parenthesizing only when the child is itself a BinaryOp and one of:
// (a) the child is a logical connective (AND/OR) nested in a non-logical
// parent, or (b) the parent is arithmetic and the child's operator is any
// *different* operator (select_30 wraps Mul/Div inside Add even though
// both bind tighter than Add; select_31's same-op Add chain stays flat).
// A comparison parent never wraps an arithmetic child (select_25).
func renderChildOfBinary(c *ctx, parentOp expr.Op, child expr.Expression) string {
	s := renderExpr(c, child)
	cb, ok := child.(*expr.BinaryOp)
	if !ok {
		return s
	}
	if cb.Op.IsLogical() {
		return "(" + s + ")"
	}
	if parentOp.IsComparison() {
		return s
	}
	if cb.Op != parentOp {
		return "(" + s + ")"
	}
	return s
}

func renderFuncCall(c *ctx, f *expr.FuncCall) string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = renderExpr(c, a)
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

func renderBetween(c *ctx, b *expr.Between) string {
	kw := "BETWEEN"
	if b.Not {
		kw = "NOT BETWEEN"
	}
	return renderOperand(c, b.Operand) + " " + kw + " " + renderExpr(c, b.Lo) + " AND " + renderExpr(c, b.Hi)
}

func renderInList(c *ctx, n *expr.InList) string {
	kw := "IN"
	if n.Not {
		kw = "NOT IN"
	}
	items := make([]string, len(n.Items))
	for i, it := range n.Items {
		items[i] = renderExpr(c, it)
	}
	return renderOperand(c, n.Operand) + " " + kw + " (" + strings.Join(items, ", ") + ")"
}

func renderInSubquery(c *ctx, n *expr.InSubquery) string {
	kw := "IN"
	if n.Not {
		kw = "NOT IN"
	}
	sel := n.Sub.(*stmt.Select)
	return renderOperand(c, n.Operand) + " " + kw + " (" + renderSelectStmt(c, sel) + ")"
}

func renderLike(c *ctx, n *expr.Like) string {
	kw := "LIKE"
	if n.Not {
		kw = "NOT LIKE"
	}
	out := renderOperand(c, n.Operand) + " " + kw + " " + renderExpr(c, n.Pattern)
	if n.Escape != nil {
		out += " ESCAPE '" + string(*n.Escape) + "'"
	}
	return out
}

func renderIsNull(c *ctx, n *expr.IsNull) string {
	if n.Not {
		return renderOperand(c, n.Operand) + " IS NOT NULL"
	}
	return renderOperand(c, n.Operand) + " IS NULL"
}

func renderTuple(c *ctx, t *expr.Tuple) string {
	parts := make([]string, len(t.Items))
	for i, it := range t.Items {
		parts[i] = renderExpr(c, it)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// renderCase always wraps the whole CASE in parentheses and each WHEN
// condition in parentheses, matching select_57's
// `(CASE WHEN ("glyph"."aspect" > 0) THEN 'positive' ... END)`.
func renderCase(c *ctx, cs *expr.Case) string {
	var b strings.Builder
	b.WriteString("(CASE")
	for _, wt := range cs.Whens {
		b.WriteString(" WHEN (")
		b.WriteString(renderExpr(c, wt.When))
		b.WriteString(") THEN ")
		b.WriteString(renderExpr(c, wt.Then))
	}
	if cs.Else != nil {
		b.WriteString(" ELSE ")
		b.WriteString(renderExpr(c, cs.Else))
	}
	b.WriteString(" END)")
	return b.String()
}
