package render

import (
	"strings"

	"github.com/Serajian/go-query-builder/cond"
	"github.com/Serajian/go-query-builder/expr"
)

// normalizeCond produces a pruned copy of c with every empty nested group
// dropped recursively, returning nil when the whole group collapses to
// nothing (select_37). It never mutates c or any of its children.
func normalizeCond(c *cond.Cond) *cond.Cond {
	if c == nil {
		return nil
	}
	var kept []cond.Child
	for _, ch := range c.Children() {
		if ch.Cond != nil {
			nc := normalizeCond(ch.Cond)
			if nc == nil {
				continue
			}
			kept = append(kept, cond.Child{Cond: nc})
		} else {
			kept = append(kept, ch)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return cond.FromChildren(c.Kind(), c.Negated(), kept)
}

// renderWhereClause renders c as a WHERE/HAVING body (without the leading
// keyword), returning ok=false when the clause should be omitted entirely.
func renderWhereClause(c *ctx, root *cond.Cond) (string, bool) {
	nc := normalizeCond(root)
	if nc == nil {
		return "", false
	}
	return renderCondNode(c, nc), true
}

func renderCondNode(c *ctx, n *cond.Cond) string {
	body := renderCondBody(c, n)
	if n.Negated() {
		return "NOT (" + body + ")"
	}
	return body
}

func renderCondBody(c *ctx, n *cond.Cond) string {
	children := n.Children()
	joiner := " AND "
	if n.Kind() == cond.KindAny {
		joiner = " OR "
	}
	multi := len(children) > 1
	parts := make([]string, 0, len(children))
	for _, ch := range children {
		if ch.Cond != nil {
			inner := renderCondNode(c, ch.Cond)
			if multi {
				inner = "(" + inner + ")"
			}
			parts = append(parts, inner)
		} else {
			parts = append(parts, renderCondLeaf(c, ch.Leaf, multi))
		}
	}
	return strings.Join(parts, joiner)
}

// renderCondLeaf renders one expr.Expression leaf of a Cond group. A leaf
// whose own rendering contains a bare top-level AND/OR keyword (an inline
// a.And(b)/a.Or(b), select_22, or a BETWEEN's "lo AND hi", select_18) gets
// wrapped in its own parens once the group has two or more children to
// join, so it can't be misread as joining with its siblings. A plain
// comparison/LIKE/IN leaf never gets this extra wrap even with siblings
// (select_21, select_27): its rendering has no bare conjunction in it.
func renderCondLeaf(c *ctx, leaf expr.Expression, multi bool) string {
	if b, ok := leaf.(*expr.BinaryOp); ok && b.Op.IsLogical() {
		inline := renderLogicalBinary(c, b)
		if multi {
			return "(" + inline + ")"
		}
		return inline
	}
	if _, ok := leaf.(*expr.Between); ok {
		s := renderExpr(c, leaf)
		if multi {
			return "(" + s + ")"
		}
		return s
	}
	return renderExpr(c, leaf)
}
