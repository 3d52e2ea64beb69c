package stmt

import (
	"github.com/Serajian/go-query-builder/cond"
	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
	"github.com/Serajian/go-query-builder/value"
)

// Select is the SELECT statement IR.
type Select struct {
	projections []expr.Expression
	from        []ident.Table
	fromSub     []FromSub
	joins       []Join
	where       *cond.Cond
	whereState  whereState
	groupBy     []expr.Expression
	having      *cond.Cond
	havingState whereState
	orderBy     []OrderByItem
	limit       *uint64
	offset      *uint64
}

// NewSelect builds an empty SELECT, equivalent to the Rust suite's
// Query::select().
func NewSelect() *Select { return &Select{} }

// IsSelect satisfies expr.Selectish, letting a *Select be used wherever a
// subquery is expected without expr importing this package.
func (s *Select) IsSelect() {}

// Columns appends a list of bare column projections.
func (s *Select) Columns(cols ...ident.Column) *Select {
	for _, c := range cols {
		s.projections = append(s.projections, &expr.ColumnRef{Column: c})
	}
	return s
}

// Column appends a single bare column projection.
func (s *Select) Column(c ident.Column) *Select {
	s.projections = append(s.projections, &expr.ColumnRef{Column: c})
	return s
}

// ColumnQualified appends a single table-qualified column projection.
func (s *Select) ColumnQualified(t ident.Table, c ident.Column) *Select {
	s.projections = append(s.projections, &expr.ColumnRef{Table: t, Column: c})
	return s
}

// Expr appends an arbitrary expression as a projection.
func (s *Select) Expr(e expr.Expr) *Select {
	s.projections = append(s.projections, e.Expression())
	return s
}

// ExprAs appends an aliased expression projection.
func (s *Select) ExprAs(e expr.Expr, alias string) *Select {
	s.projections = append(s.projections, &expr.As{Inner: e.Expression(), Alias: alias})
	return s
}

// Exprs appends several expression projections at once.
func (s *Select) Exprs(es ...expr.Expr) *Select {
	for _, e := range es {
		s.projections = append(s.projections, e.Expression())
	}
	return s
}

// Projections exposes the accumulated projection list for render.
func (s *Select) Projections() []expr.Expression { return s.projections }

// From appends a table to the FROM list; calling it more than once
// produces a CSV cross-join FROM list (select_54).
func (s *Select) From(t ident.Table) *Select {
	s.from = append(s.from, t)
	return s
}

// FromSubquery uses a nested SELECT as a FROM source, aliased.
func (s *Select) FromSubquery(sub *Select, alias string) *Select {
	s.fromSub = append(s.fromSub, FromSub{Stmt: sub, Alias: alias})
	return s
}

func (s *Select) FromTables() []ident.Table   { return s.from }
func (s *Select) FromSubqueries() []FromSub   { return s.fromSub }

func (s *Select) join(kind JoinKind, t ident.Table, on expr.Expr) *Select {
	s.joins = append(s.joins, Join{Kind: kind, Table: t, On: on.Expression()})
	return s
}

func (s *Select) InnerJoin(t ident.Table, on expr.Expr) *Select { return s.join(InnerJoin, t, on) }
func (s *Select) LeftJoin(t ident.Table, on expr.Expr) *Select  { return s.join(LeftJoin, t, on) }
func (s *Select) RightJoin(t ident.Table, on expr.Expr) *Select { return s.join(RightJoin, t, on) }

func (s *Select) Joins() []Join { return s.joins }

// AndWhere appends e into the WHERE root's AND-group.
func (s *Select) AndWhere(e expr.Expr) *Select {
	s.where, s.whereState = andWhere("Select.AndWhere", s.where, s.whereState, e.Expression())
	return s
}

// OrWhere appends e into the WHERE root's OR-group.
func (s *Select) OrWhere(e expr.Expr) *Select {
	s.where, s.whereState = orWhere("Select.OrWhere", s.where, s.whereState, e.Expression())
	return s
}

// CondWhere replaces the WHERE root outright.
func (s *Select) CondWhere(c *cond.Cond) *Select {
	s.where, s.whereState = condWhere(c)
	return s
}

// AndWhereOption is a no-op when e is nil, otherwise equivalent to AndWhere.
func (s *Select) AndWhereOption(e *expr.Expr) *Select {
	if e == nil {
		return s
	}
	return s.AndWhere(*e)
}

func (s *Select) Where() *cond.Cond { return s.where }

// GroupByColumns appends bare column group-by terms.
func (s *Select) GroupByColumns(cols ...ident.Column) *Select {
	for _, c := range cols {
		s.groupBy = append(s.groupBy, &expr.ColumnRef{Column: c})
	}
	return s
}

// QualifiedColumn pairs a table and column for the *Qualified group-by/
// order-by entry points.
type QualifiedColumn struct {
	Table  ident.Table
	Column ident.Column
}

// GroupByColumnsQualified appends table-qualified group-by terms.
func (s *Select) GroupByColumnsQualified(cols ...QualifiedColumn) *Select {
	for _, c := range cols {
		s.groupBy = append(s.groupBy, &expr.ColumnRef{Table: c.Table, Column: c.Column})
	}
	return s
}

func (s *Select) GroupBy() []expr.Expression { return s.groupBy }

// AndHaving appends e into the HAVING root's AND-group.
func (s *Select) AndHaving(e expr.Expr) *Select {
	s.having, s.havingState = andWhere("Select.AndHaving", s.having, s.havingState, e.Expression())
	return s
}

// OrHaving appends e into the HAVING root's OR-group.
func (s *Select) OrHaving(e expr.Expr) *Select {
	s.having, s.havingState = orWhere("Select.OrHaving", s.having, s.havingState, e.Expression())
	return s
}

// CondHaving replaces the HAVING root outright.
func (s *Select) CondHaving(c *cond.Cond) *Select {
	s.having, s.havingState = condWhere(c)
	return s
}

func (s *Select) Having() *cond.Cond { return s.having }

// OrderBy appends a bare-column ORDER BY term with default NULLS placement.
func (s *Select) OrderBy(c ident.Column, dir Order) *Select {
	s.orderBy = append(s.orderBy, OrderByItem{Column: c, Dir: dir})
	return s
}

// OrderByQualified appends a table-qualified ORDER BY term.
func (s *Select) OrderByQualified(t ident.Table, c ident.Column, dir Order) *Select {
	s.orderBy = append(s.orderBy, OrderByItem{Table: t, Column: c, Dir: dir})
	return s
}

// OrderByWithNulls appends a bare-column ORDER BY term with an explicit
// NULLS FIRST/LAST directive.
func (s *Select) OrderByWithNulls(c ident.Column, dir Order, nulls NullOrdering) *Select {
	s.orderBy = append(s.orderBy, OrderByItem{Column: c, Dir: dir, Nulls: nulls})
	return s
}

// OrderByColumns appends several bare-column ORDER BY terms at once.
func (s *Select) OrderByColumns(items ...OrderByItem) *Select {
	s.orderBy = append(s.orderBy, items...)
	return s
}

// OrderByColumnsWithNulls is an alias of OrderByColumns kept distinct as a
// separate entry point for the NULLS-aware bulk form.
func (s *Select) OrderByColumnsWithNulls(items ...OrderByItem) *Select {
	s.orderBy = append(s.orderBy, items...)
	return s
}

// OrderByField ranks rows by position of the column's value within values,
// expanding at render time into a CASE WHEN col=v1 THEN 0 ... END term
// (Order::Field in the reference suite, select_55/select_56).
func (s *Select) OrderByField(c ident.Column, values ...value.Value) *Select {
	s.orderBy = append(s.orderBy, OrderByItem{Column: c, FieldValues: values})
	return s
}

// OrderByFieldQualified is OrderByField for a table-qualified column.
func (s *Select) OrderByFieldQualified(t ident.Table, c ident.Column, values ...value.Value) *Select {
	s.orderBy = append(s.orderBy, OrderByItem{Table: t, Column: c, FieldValues: values})
	return s
}

func (s *Select) OrderByItems() []OrderByItem { return s.orderBy }

// Limit sets the row cap.
func (s *Select) Limit(n uint64) *Select {
	s.limit = &n
	return s
}

// Offset sets the row skip count.
func (s *Select) Offset(n uint64) *Select {
	s.offset = &n
	return s
}

func (s *Select) LimitVal() *uint64  { return s.limit }
func (s *Select) OffsetVal() *uint64 { return s.offset }

// Conditions invokes exactly one of ifTrue or ifFalse with s, letting a
// chained builder expression branch inline on flag without breaking out
// of the chain.
func (s *Select) Conditions(flag bool, ifTrue, ifFalse func(*Select)) *Select {
	if flag {
		ifTrue(s)
	} else {
		ifFalse(s)
	}
	return s
}
