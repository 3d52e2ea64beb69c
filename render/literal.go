// Package render implements the recursive renderer (modules G, H): a single
// visitor walking expr.Expression/cond.Cond/stmt.* trees that emits either
// inline SQL text or SQL text plus a bound parameter vector, driven by a
// dialect.Dialect's quoting, escaping, and placeholder rules.
package render

import (
	"strconv"

	"github.com/Serajian/go-query-builder/dialect"
	"github.com/Serajian/go-query-builder/value"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// ctx carries the dialect and, in bound mode, the accumulating parameter
// vector, through one traversal of the tree. Keeping a single traversal
// means the inline/bound split is a branch at the literal leaf, not a
// second copy of every visit function.
type ctx struct {
	d      dialect.Dialect
	bound  bool
	values *value.Values
}

// literal renders a single scalar: a placeholder (and an append to
// ctx.values) in bound mode, or an inline SQL literal in inline mode.
func (c *ctx) literal(v value.Value) string {
	if c.bound {
		c.values.Append(v)
		return c.d.Placeholder(c.values.Len())
	}
	return inlineLiteral(v, c.d)
}

func inlineLiteral(v value.Value, d dialect.Dialect) string {
	if v.IsNull() {
		return "NULL"
	}
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.Bool()
		if b {
			return "1"
		}
		return "0"
	case value.KindTinyInt, value.KindSmallInt, value.KindInt, value.KindBigInt:
		i, _ := v.Int64()
		return strconv.FormatInt(i, 10)
	case value.KindUTinyInt, value.KindUSmallInt, value.KindUInt, value.KindUBigInt:
		u, _ := v.Uint64()
		return strconv.FormatUint(u, 10)
	case value.KindFloat, value.KindDouble:
		f, _ := v.Float64()
		return strconv.FormatFloat(f, 'f', -1, 64)
	case value.KindString:
		s, _ := v.String_()
		return "'" + d.EscapeString(s) + "'"
	case value.KindBytes:
		b, _ := v.BytesVal()
		return "X'" + hexUpper(b) + "'"
	case value.KindTime:
		t, _ := v.TimeVal()
		return "'" + t.UTC().Format(sqliteTimeLayout) + "'"
	case value.KindUuid:
		u, _ := v.UuidVal()
		return "'" + u.String() + "'"
	default:
		return "NULL"
	}
}

func hexUpper(b []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = digits[c>>4]
		out[i*2+1] = digits[c&0xF]
	}
	return string(out)
}

// quoteIdent wraps name in the dialect's identifier quote character.
func quoteIdent(name string, d dialect.Dialect) string {
	q := string(d.QuoteChar())
	return q + name + q
}
