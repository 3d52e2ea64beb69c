package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
	"github.com/Serajian/go-query-builder/value"
)

func col(name string) ident.Column { return ident.Raw(name) }
func tbl(name string) ident.Table  { return ident.Raw(name) }

func TestColAndValBuildLeafNodes(t *testing.T) {
	c := expr.Col(col("id")).Expression().(*expr.ColumnRef)
	require.Equal(t, "id", c.Column.ColumnName())
	require.Nil(t, c.Table)

	lit := expr.Val(int64(5)).Expression().(*expr.Literal)
	require.Equal(t, value.KindBigInt, lit.Value.Kind())
}

func TestValCoercesGoScalarsToMatchingKind(t *testing.T) {
	cases := []struct {
		in   interface{}
		want value.Kind
	}{
		{nil, value.KindNull},
		{true, value.KindBool},
		{int8(1), value.KindTinyInt},
		{int16(1), value.KindSmallInt},
		{int32(1), value.KindInt},
		{int(1), value.KindBigInt},
		{int64(1), value.KindBigInt},
		{uint8(1), value.KindUTinyInt},
		{uint16(1), value.KindUSmallInt},
		{uint32(1), value.KindUInt},
		{uint64(1), value.KindUBigInt},
		{float32(1), value.KindFloat},
		{float64(1), value.KindDouble},
		{"s", value.KindString},
		{[]byte("b"), value.KindBytes},
	}
	for _, c := range cases {
		lit := expr.Val(c.in).Expression().(*expr.Literal)
		require.Equal(t, c.want, lit.Value.Kind())
	}
}

func TestEqBuildsComparisonBinaryOp(t *testing.T) {
	n := expr.Col(col("age")).Eq(30).Expression().(*expr.BinaryOp)
	require.Equal(t, expr.OpEq, n.Op)
	require.IsType(t, &expr.ColumnRef{}, n.Lhs)
	require.IsType(t, &expr.Literal{}, n.Rhs)
}

func TestAndOrBuildLogicalBinaryOp(t *testing.T) {
	lhs := expr.Col(col("a")).Eq(1)
	rhs := expr.Col(col("b")).Eq(2)
	n := lhs.And(rhs).Expression().(*expr.BinaryOp)
	require.Equal(t, expr.OpAnd, n.Op)

	n2 := lhs.Or(rhs).Expression().(*expr.BinaryOp)
	require.Equal(t, expr.OpOr, n2.Op)
}

func TestBetweenAndInListAndIsNull(t *testing.T) {
	b := expr.Col(col("x")).Between(1, 10).Expression().(*expr.Between)
	require.False(t, b.Not)

	nb := expr.Col(col("x")).NotBetween(1, 10).Expression().(*expr.Between)
	require.True(t, nb.Not)

	il := expr.Col(col("x")).IsIn(1, 2, 3).Expression().(*expr.InList)
	require.Len(t, il.Items, 3)

	isn := expr.Col(col("x")).IsNull().Expression().(*expr.IsNull)
	require.False(t, isn.Not)
}

func TestLikeWithEscape(t *testing.T) {
	p := expr.NewLikePattern("A%").WithEscape('\\')
	n := expr.Col(col("name")).Like(p).Expression().(*expr.Like)
	require.NotNil(t, n.Escape)
	require.Equal(t, byte('\\'), *n.Escape)
}

func TestCaseBuilder(t *testing.T) {
	c := expr.NewCase().
		When(expr.Col(col("x")).Gt(0), expr.Val("pos")).
		When(expr.Col(col("x")).Lt(0), expr.Val("neg")).
		Else(expr.Val("zero")).
		Expression().(*expr.Case)
	require.Len(t, c.Whens, 2)
	require.NotNil(t, c.Else)
}

func TestEqualsBuildsQualifiedComparison(t *testing.T) {
	n := expr.Col(col("id")).Equals(tbl("other"), col("ref_id")).Expression().(*expr.BinaryOp)
	rhs := n.Rhs.(*expr.ColumnRef)
	require.Equal(t, "other", rhs.Table.TableName())
	require.Equal(t, "ref_id", rhs.Column.ColumnName())
}

func TestAsAliasesExpression(t *testing.T) {
	n := expr.Col(col("id")).As("identifier").Expression().(*expr.As)
	require.Equal(t, "identifier", n.Alias)
}
