package cond_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Serajian/go-query-builder/cond"
	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
)

func col(name string) ident.Column { return ident.Raw(name) }

func TestAllAndAnyStartEmpty(t *testing.T) {
	require.True(t, cond.All().IsEmpty())
	require.True(t, cond.Any().IsEmpty())
}

func TestAddAcceptsExprAndExpression(t *testing.T) {
	c := cond.All()
	c.Add(expr.Col(col("a")).Eq(1))
	c.Add(expr.Col(col("b")).Eq(2).Expression())
	require.Len(t, c.Children(), 2)
}

func TestAddPanicsOnUnsupportedType(t *testing.T) {
	require.Panics(t, func() {
		cond.All().Add("not an expression")
	})
}

func TestAddOptionSkipsNil(t *testing.T) {
	c := cond.All()
	c.AddOption(nil)
	require.True(t, c.IsEmpty())

	e := expr.Col(col("a")).Eq(1)
	c.AddOption(&e)
	require.Len(t, c.Children(), 1)
}

func TestNotTogglesNegation(t *testing.T) {
	c := cond.All()
	require.False(t, c.Negated())
	c.Not()
	require.True(t, c.Negated())
	c.Not()
	require.False(t, c.Negated())
}

func TestAllOfAndAnyOfSugar(t *testing.T) {
	c := cond.AllOf(expr.Col(col("a")).Eq(1), expr.Col(col("b")).Eq(2))
	require.Equal(t, cond.KindAll, c.Kind())
	require.Len(t, c.Children(), 2)

	a := cond.AnyOf(expr.Col(col("a")).Eq(1))
	require.Equal(t, cond.KindAny, a.Kind())
}

func TestNestedCondAsChild(t *testing.T) {
	inner := cond.AnyOf(expr.Col(col("a")).Eq(1), expr.Col(col("b")).Eq(2))
	outer := cond.All().Add(inner).Add(expr.Col(col("c")).Eq(3))
	require.Len(t, outer.Children(), 2)
	require.NotNil(t, outer.Children()[0].Cond)
	require.Nil(t, outer.Children()[1].Cond)
}
