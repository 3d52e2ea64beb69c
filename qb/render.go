package qb

import (
	"github.com/Serajian/go-query-builder/dialect"
	"github.com/Serajian/go-query-builder/render"
	"github.com/Serajian/go-query-builder/value"
)

// ToSQL renders a statement built through this package to inline SQL text,
// logging the result at debug level when a logger is installed.
func ToSQL(s interface{}, d dialect.Dialect) (string, error) {
	sql, err := render.Render(s, d)
	if err != nil {
		return "", err
	}
	logBuild("inline", sql)
	return sql, nil
}

// Build renders a statement built through this package to parameterized
// SQL plus its bound value vector, logging the SQL at debug level when a
// logger is installed.
func Build(s interface{}, d dialect.Dialect) (string, *value.Values, error) {
	sql, vals, err := render.Build(s, d)
	if err != nil {
		return "", nil, err
	}
	logBuild("bound", sql)
	return sql, vals, nil
}
