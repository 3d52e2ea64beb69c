package render

import (
	"github.com/pkg/errors"

	"github.com/Serajian/go-query-builder/dialect"
	"github.com/Serajian/go-query-builder/stmt"
	"github.com/Serajian/go-query-builder/value"
)

// Render serializes a statement IR to inline SQL text (sea-query's
// to_string): literals are embedded directly in the output.
func Render(s interface{}, d dialect.Dialect) (string, error) {
	c := &ctx{d: d, bound: false}
	return dispatch(c, s)
}

// Build serializes a statement IR to parameterized SQL (sea-query's
// build): literals are replaced by dialect placeholders and collected,
// in render order, into the returned value.Values.
func Build(s interface{}, d dialect.Dialect) (string, *value.Values, error) {
	c := &ctx{d: d, bound: true, values: value.NewValues()}
	sql, err := dispatch(c, s)
	if err != nil {
		return "", nil, err
	}
	return sql, c.values, nil
}

func dispatch(c *ctx, s interface{}) (string, error) {
	switch n := s.(type) {
	case *stmt.Select:
		return renderSelectStmt(c, n), nil
	case *stmt.Insert:
		return renderInsertStmt(c, n), nil
	case *stmt.Update:
		return renderUpdateStmt(c, n), nil
	case *stmt.Delete:
		return renderDeleteStmt(c, n), nil
	default:
		return "", errors.Errorf("render: unsupported statement type %T", s)
	}
}
