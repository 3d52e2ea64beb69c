// Package stmt implements the statement IR: Select, Insert, Update, and
// Delete, each a plain mutable struct built up by chained setter methods,
// carrying expr.Expression/cond.Cond subtrees ready for package render to
// walk.
package stmt

import (
	"fmt"

	"github.com/Serajian/go-query-builder/cond"
	"github.com/Serajian/go-query-builder/expr"
	"github.com/Serajian/go-query-builder/ident"
	"github.com/Serajian/go-query-builder/value"
)

// ContractError marks a programming-contract violation raised by the
// builder itself (not by rendering): mixing AndWhere/OrWhere at the same
// WHERE/HAVING root, or an Insert row whose arity disagrees with its
// declared column list.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string { return fmt.Sprintf("stmt: %s: %s", e.Op, e.Msg) }

func panicContract(op, format string, args ...interface{}) {
	panic(&ContractError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// Order is an ORDER BY direction.
type Order int

const (
	Asc Order = iota
	Desc
)

// NullOrdering is an explicit NULLS FIRST/LAST directive. NullsDefault
// means no NULLS clause is emitted.
type NullOrdering int

const (
	NullsDefault NullOrdering = iota
	NullsFirst
	NullsLast
)

// OrderByItem is one ORDER BY term: a column (optionally table-qualified)
// with a direction and optional explicit NULLS placement. When FieldValues
// is non-empty the term instead renders as a CASE expression ranking rows
// by the given value's position in the list (Order::Field in the Rust
// suite, select_55/select_56), and Dir/Nulls are ignored.
type OrderByItem struct {
	Table       ident.Table
	Column      ident.Column
	Dir         Order
	Nulls       NullOrdering
	FieldValues []value.Value
}

// JoinKind discriminates an INNER/LEFT/RIGHT join.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
)

// Join is one FROM-clause join term.
type Join struct {
	Kind  JoinKind
	Table ident.Table
	On    expr.Expression
}

// FromSub is a subquery used in place of a bare table in FROM.
type FromSub struct {
	Stmt  *Select
	Alias string
}

// whereState tracks which connective, if any, a WHERE/HAVING root was
// first built with, so a later call of the opposite connective on a
// non-empty root can fail fast.
type whereState int

const (
	whereNone whereState = iota
	whereAnd
	whereOr
)

// andWhere appends e into root's AND-group, creating the group on first
// use. Panics if root is currently a non-empty OR-group.
func andWhere(op string, root *cond.Cond, state whereState, e expr.Expression) (*cond.Cond, whereState) {
	if root == nil {
		root = cond.All()
	}
	switch state {
	case whereOr:
		if !root.IsEmpty() {
			panicContract(op, "cannot call AndWhere after OrWhere on a non-empty root")
		}
	case whereNone:
		state = whereAnd
	}
	root.Add(e)
	return root, state
}

// orWhere appends e into root's OR-group. When root is an empty AND-group
// it is re-typed to OR; when root is already OR it simply appends;
// when root is a non-empty AND-group this is a contract violation.
func orWhere(op string, root *cond.Cond, state whereState, e expr.Expression) (*cond.Cond, whereState) {
	switch state {
	case whereAnd:
		if root != nil && !root.IsEmpty() {
			panicContract(op, "cannot call OrWhere after AndWhere on a non-empty root")
		}
		root = cond.Any()
		state = whereOr
	case whereNone:
		root = cond.Any()
		state = whereOr
	}
	root.Add(e)
	return root, state
}

// condWhere replaces root outright with c, a one-shot escape hatch that
// bypasses the And/Or mixing guard.
func condWhere(c *cond.Cond) (*cond.Cond, whereState) {
	state := whereNone
	if c != nil {
		if c.Kind() == cond.KindAll {
			state = whereAnd
		} else {
			state = whereOr
		}
	}
	return c, state
}
