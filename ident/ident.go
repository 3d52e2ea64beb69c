// Package ident resolves opaque identifier tokens for tables and columns
// into bare names. It never quotes: quoting is a dialect concern handled
// in package render.
package ident

// Table is an opaque identifier token for a table. Callers typically
// declare an enum of constants implementing this on a generated type,
// rather than passing bare strings around.
type Table interface {
	TableName() string
}

// Column is an opaque identifier token for a column.
type Column interface {
	ColumnName() string
}

// TableName resolves a Table token to its bare, unquoted name.
func TableName(t Table) string {
	if t == nil {
		return ""
	}
	return t.TableName()
}

// ColumnName resolves a Column token to its bare, unquoted name.
func ColumnName(c Column) string {
	if c == nil {
		return ""
	}
	return c.ColumnName()
}

// Raw wraps a bare string so it satisfies both Table and Column, bridging
// callers that have not declared an identifier enum.
type Raw string

func (r Raw) TableName() string  { return string(r) }
func (r Raw) ColumnName() string { return string(r) }
