package stmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
	"github.com/Serajian/go-query-builder/stmt"
)

func col(name string) ident.Column { return ident.Raw(name) }
func tbl(name string) ident.Table  { return ident.Raw(name) }

func TestSelectAndWhereThenOrWherePanicsOnNonEmptyRoot(t *testing.T) {
	s := stmt.NewSelect().AndWhere(expr.Col(col("a")).Eq(1))
	require.Panics(t, func() {
		s.OrWhere(expr.Col(col("b")).Eq(2))
	})
}

func TestSelectOrWhereThenAndWherePanicsOnNonEmptyRoot(t *testing.T) {
	s := stmt.NewSelect().OrWhere(expr.Col(col("a")).Eq(1))
	require.Panics(t, func() {
		s.AndWhere(expr.Col(col("b")).Eq(2))
	})
}

func TestSelectAndWhereRepeatedAppendsToSameGroup(t *testing.T) {
	s := stmt.NewSelect().
		AndWhere(expr.Col(col("a")).Eq(1)).
		AndWhere(expr.Col(col("b")).Eq(2))
	require.Len(t, s.Where().Children(), 2)
}

func TestCondWhereReplacesRootOutright(t *testing.T) {
	s := stmt.NewSelect().AndWhere(expr.Col(col("a")).Eq(1))
	c := expr.Col(col("b")).Eq(2)
	s.CondWhere(nil)
	require.Nil(t, s.Where())
	s.AndWhere(c)
	require.Len(t, s.Where().Children(), 1)
}

func TestAndWhereOptionIsNoOpOnNil(t *testing.T) {
	s := stmt.NewSelect().AndWhereOption(nil)
	require.Nil(t, s.Where())
}

func TestInsertValuesPanicOnArityMismatch(t *testing.T) {
	i := stmt.NewInsert(tbl("users")).Columns(col("id"), col("name"))
	require.Panics(t, func() {
		i.ValuesPanic(expr.Val(1))
	})
}

func TestInsertValuesAcceptsMatchingArity(t *testing.T) {
	i := stmt.NewInsert(tbl("users")).Columns(col("id"), col("name"))
	require.NotPanics(t, func() {
		i.ValuesPanic(expr.Val(1), expr.Val("a"))
	})
	require.Len(t, i.Rows(), 1)
}

func TestInsertSelectFromFailsWhenRowsAlreadyPresent(t *testing.T) {
	i := stmt.NewInsert(tbl("users")).Columns(col("id"))
	i.ValuesPanic(expr.Val(1))
	err := i.SelectFrom(stmt.NewSelect().From(tbl("other")))
	require.Error(t, err)
}

func TestInsertSelectFromSucceedsWhenNoRows(t *testing.T) {
	i := stmt.NewInsert(tbl("users")).Columns(col("id"))
	err := i.SelectFrom(stmt.NewSelect().From(tbl("other")))
	require.NoError(t, err)
	require.NotNil(t, i.SelectSource())
}

func TestOnConflictUpdateColumnsTracksTargetAndAction(t *testing.T) {
	oc := stmt.NewOnConflict().Column(col("id")).UpdateColumns(col("name"), col("email"))
	require.Equal(t, stmt.ConflictUpdateColumns, oc.Action())
	require.Len(t, oc.Target(), 1)
	require.Len(t, oc.UpdateColumnNames(), 2)
}

func TestUpdateAndWhereOrWhereGuard(t *testing.T) {
	u := stmt.NewUpdate(tbl("users")).AndWhere(expr.Col(col("id")).Eq(1))
	require.Panics(t, func() {
		u.OrWhere(expr.Col(col("id")).Eq(2))
	})
}

func TestDeleteAndWhereOrWhereGuard(t *testing.T) {
	d := stmt.NewDelete(tbl("users")).OrWhere(expr.Col(col("id")).Eq(1))
	require.Panics(t, func() {
		d.AndWhere(expr.Col(col("id")).Eq(2))
	})
}

func TestSelectIsSelectSatisfiesSelectish(t *testing.T) {
	var s expr.Selectish = stmt.NewSelect()
	require.NotNil(t, s)
}

func TestSelectConditionsInvokesExactlyOneBranch(t *testing.T) {
	s := stmt.NewSelect().From(tbl("character")).Conditions(
		true,
		func(s *stmt.Select) { s.AndWhere(expr.Col(col("font_id")).Eq(5)) },
		func(s *stmt.Select) { s.AndWhere(expr.Col(col("font_id")).Eq(6)) },
	)
	require.Len(t, s.Where().Children(), 1)

	s2 := stmt.NewSelect().From(tbl("character")).Conditions(
		false,
		func(s *stmt.Select) { t.Fatal("ifTrue must not run when flag is false") },
		func(s *stmt.Select) {},
	)
	require.Nil(t, s2.Where())
}
