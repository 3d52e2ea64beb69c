package render

import (
	"strconv"
	"strings"

	"github.com/Serajian/go-query-builder/stmt"
)

func renderSelectStmt(c *ctx, s *stmt.Select) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(renderProjections(c, s))
	if len(s.FromTables()) > 0 || len(s.FromSubqueries()) > 0 {
		b.WriteString(" FROM ")
		b.WriteString(renderFromList(c, s))
	}
	for _, j := range s.Joins() {
		b.WriteString(" ")
		b.WriteString(renderJoin(c, j))
	}
	if where, ok := renderWhereClause(c, s.Where()); ok {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if len(s.GroupBy()) > 0 {
		parts := make([]string, len(s.GroupBy()))
		for i, g := range s.GroupBy() {
			parts[i] = renderExpr(c, g)
		}
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if having, ok := renderWhereClause(c, s.Having()); ok {
		b.WriteString(" HAVING ")
		b.WriteString(having)
	}
	if len(s.OrderByItems()) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(renderOrderByList(c, s.OrderByItems()))
	}
	if s.LimitVal() != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.FormatUint(*s.LimitVal(), 10))
	}
	if s.OffsetVal() != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.FormatUint(*s.OffsetVal(), 10))
	}
	return b.String()
}

func renderProjections(c *ctx, s *stmt.Select) string {
	projs := s.Projections()
	if len(projs) == 0 {
		return "*"
	}
	parts := make([]string, len(projs))
	for i, p := range projs {
		parts[i] = renderExpr(c, p)
	}
	return strings.Join(parts, ", ")
}

func renderFromList(c *ctx, s *stmt.Select) string {
	var parts []string
	for _, t := range s.FromTables() {
		parts = append(parts, quoteIdent(t.TableName(), c.d))
	}
	for _, fs := range s.FromSubqueries() {
		parts = append(parts, "("+renderSelectStmt(c, fs.Stmt)+") AS "+quoteIdent(fs.Alias, c.d))
	}
	return strings.Join(parts, ", ")
}

func renderJoin(c *ctx, j stmt.Join) string {
	kw := "INNER JOIN"
	switch j.Kind {
	case stmt.LeftJoin:
		kw = "LEFT JOIN"
	case stmt.RightJoin:
		kw = "RIGHT JOIN"
	}
	return kw + " " + quoteIdent(j.Table.TableName(), c.d) + " ON " + renderExpr(c, j.On)
}

func renderOrderByList(c *ctx, items []stmt.OrderByItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = renderOrderByItem(c, it)
	}
	return strings.Join(parts, ", ")
}

func renderOrderByItem(c *ctx, it stmt.OrderByItem) string {
	if len(it.FieldValues) > 0 {
		return renderOrderByField(c, it)
	}
	col := quoteIdent(it.Column.ColumnName(), c.d)
	if it.Table != nil {
		col = quoteIdent(it.Table.TableName(), c.d) + "." + col
	}
	dir := "ASC"
	if it.Dir == stmt.Desc {
		dir = "DESC"
	}
	out := col + " " + dir
	if it.Nulls != stmt.NullsDefault && c.d.SupportsNullsOrdering() {
		if it.Nulls == stmt.NullsFirst {
			out += " NULLS FIRST"
		} else {
			out += " NULLS LAST"
		}
	}
	return out
}

// renderOrderByField expands an Order::Field-style ranking into a CASE
// expression ordering rows by a value's position in the given list
// (select_55/select_56).
func renderOrderByField(c *ctx, it stmt.OrderByItem) string {
	col := quoteIdent(it.Column.ColumnName(), c.d)
	if it.Table != nil {
		col = quoteIdent(it.Table.TableName(), c.d) + "." + col
	}
	var b strings.Builder
	b.WriteString("CASE")
	for i, v := range it.FieldValues {
		b.WriteString(" WHEN ")
		b.WriteString(col)
		b.WriteString("=")
		b.WriteString(c.literal(v))
		b.WriteString(" THEN ")
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteString(" ELSE ")
	b.WriteString(strconv.Itoa(len(it.FieldValues)))
	b.WriteString(" END")
	return b.String()
}
