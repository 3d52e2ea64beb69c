package stmt

import (
	"github.com/pkg/errors"

	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
)

// Insert is the INSERT statement IR.
type Insert struct {
	table         ident.Table
	columns       []ident.Column
	rows          [][]expr.Expression
	selectFrom    *Select
	defaultValues bool
	onConflict    *OnConflict
	returning     *Returning
}

// NewInsert builds an empty INSERT targeting t.
func NewInsert(t ident.Table) *Insert { return &Insert{table: t} }

// IntoTable sets (or changes) the target table.
func (i *Insert) IntoTable(t ident.Table) *Insert {
	i.table = t
	return i
}

// Columns declares the insert's column list.
func (i *Insert) Columns(cols ...ident.Column) *Insert {
	i.columns = cols
	return i
}

// ValuesPanic appends one row of values. The row's length must match the
// declared column list; a mismatch panics rather than returning an error,
// since a column/value arity mismatch is a programmer error, not a runtime
// condition.
func (i *Insert) ValuesPanic(row ...expr.Expr) *Insert {
	if len(i.columns) > 0 && len(row) != len(i.columns) {
		panicContract("Insert.ValuesPanic", "row has %d values, want %d", len(row), len(i.columns))
	}
	nodes := make([]expr.Expression, len(row))
	for idx, v := range row {
		nodes[idx] = v.Expression()
	}
	i.rows = append(i.rows, nodes)
	return i
}

// SelectFrom turns this INSERT into an INSERT...SELECT. It fails when a
// values-row is already present: the two row sources are mutually exclusive.
func (i *Insert) SelectFrom(sel *Select) error {
	if len(i.rows) > 0 {
		return errors.New("stmt: Insert.SelectFrom: rows already present from ValuesPanic")
	}
	i.selectFrom = sel
	return nil
}

// OrDefaultValues marks the statement as `INSERT ... DEFAULT VALUES`,
// used when no rows and no SELECT source are given.
func (i *Insert) OrDefaultValues() *Insert {
	i.defaultValues = true
	return i
}

// OnConflict attaches an ON CONFLICT clause.
func (i *Insert) OnConflict(oc *OnConflict) *Insert {
	i.onConflict = oc
	return i
}

// Returning attaches a RETURNING clause.
func (i *Insert) Returning(r *Returning) *Insert {
	i.returning = r
	return i
}

// ReturningCol is convenience sugar for a single-column RETURNING clause.
func (i *Insert) ReturningCol(c ident.Column) *Insert {
	i.returning = ReturningCols(expr.Col(c))
	return i
}

func (i *Insert) Table() ident.Table              { return i.table }
func (i *Insert) ColumnList() []ident.Column       { return i.columns }
func (i *Insert) Rows() [][]expr.Expression        { return i.rows }
func (i *Insert) SelectSource() *Select            { return i.selectFrom }
func (i *Insert) DefaultValues() bool              { return i.defaultValues }
func (i *Insert) ConflictClause() *OnConflict       { return i.onConflict }
func (i *Insert) ReturningClause() *Returning       { return i.returning }

// Conditions invokes exactly one of ifTrue or ifFalse with i, letting a
// chained builder expression branch inline on flag without breaking out
// of the chain.
func (i *Insert) Conditions(flag bool, ifTrue, ifFalse func(*Insert)) *Insert {
	if flag {
		ifTrue(i)
	} else {
		ifFalse(i)
	}
	return i
}
