// Package cond implements the boolean connective tree: an All/Any node
// joining nested Cond groups and expression leaves, with negation. The
// AND/OR mixing guard for WHERE/HAVING roots lives in package stmt.
package cond

import (
	"github.com/pkg/errors"

	"github.com/Serajian/go-query-builder/expr"
)

// Kind discriminates whether a Cond's children are AND-joined or OR-joined.
type Kind int

const (
	KindAll Kind = iota
	KindAny
)

// Child is either a nested *Cond or a leaf expr.Expression.
type Child struct {
	Cond *Cond
	Leaf expr.Expression
}

// Cond is a boolean connective tree node: a homogeneous join (all AND, or
// all OR) of child conditions/expressions, optionally negated. Mixing AND
// and OR within the same Cond is not expressible: build nested Cond groups
// instead, mirroring sea-query's Condition type.
type Cond struct {
	kind     Kind
	negated  bool
	children []Child
}

// All starts an AND-joined condition group.
func All() *Cond { return &Cond{kind: KindAll} }

// Any starts an OR-joined condition group.
func Any() *Cond { return &Cond{kind: KindAny} }

// Kind reports whether this group is AND- or OR-joined.
func (c *Cond) Kind() Kind { return c.kind }

// Negated reports whether this group is wrapped in NOT.
func (c *Cond) Negated() bool { return c.negated }

// Children returns the group's ordered children, empty groups included.
func (c *Cond) Children() []Child { return c.children }

// Add appends a child, either another *Cond or an expr.Expression
// (including an expr.Expr's wrapped node via Expression()).
func (c *Cond) Add(child interface{}) *Cond {
	switch x := child.(type) {
	case *Cond:
		c.children = append(c.children, Child{Cond: x})
	case expr.Expression:
		c.children = append(c.children, Child{Leaf: x})
	case expr.Expr:
		c.children = append(c.children, Child{Leaf: x.Expression()})
	default:
		panic(errors.Errorf("cond: Add: unsupported child type %T", child))
	}
	return c
}

// AddOption appends child only when it is non-nil, the zero-value
// convenience sea-query's add_option gives for optional filters.
func (c *Cond) AddOption(child *expr.Expr) *Cond {
	if child == nil {
		return c
	}
	return c.Add(*child)
}

// Not toggles negation on this group, equivalent to wrapping it once in
// NOT(...) at render time.
func (c *Cond) Not() *Cond {
	c.negated = !c.negated
	return c
}

// AllOf is variadic sugar for All().Add(a).Add(b)..., standing in for
// sea-query's all! macro.
func AllOf(children ...interface{}) *Cond {
	c := All()
	for _, ch := range children {
		c.Add(ch)
	}
	return c
}

// AnyOf is variadic sugar for Any().Add(a).Add(b)..., standing in for
// sea-query's any! macro.
func AnyOf(children ...interface{}) *Cond {
	c := Any()
	for _, ch := range children {
		c.Add(ch)
	}
	return c
}

// IsEmpty reports whether this group has no children. Empty groups are
// pruned by the renderer's normalizer rather than rendered as e.g. `1=1`.
func (c *Cond) IsEmpty() bool { return len(c.children) == 0 }

// FromChildren builds a Cond directly from an already-normalized child
// list. Used by render's pure pre-pass normalizer, which must produce a
// pruned copy without ever mutating the source tree.
func FromChildren(kind Kind, negated bool, children []Child) *Cond {
	return &Cond{kind: kind, negated: negated, children: children}
}
