// Package value implements the tagged scalar container (module A) that
// every literal in the expression algebra carries. A Value is always
// self-describing: it carries both a Kind and a payload, so a typed NULL
// (e.g. an absent Int) still renders as NULL without losing the column's
// intended type.
package value

import (
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindUTinyInt
	KindUSmallInt
	KindUInt
	KindUBigInt
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindTime
	KindUuid
)

// Value is a tagged union covering every literal kind the expression
// algebra can hold. The zero Value is a bare untyped NULL.
type Value struct {
	kind  Kind
	null  bool
	b     bool
	i64   int64
	u64   uint64
	f64   float64
	s     string
	bytes []byte
	t     time.Time
	u     uuid.UUID
}

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether this Value is NULL, regardless of Kind.
func (v Value) IsNull() bool { return v.kind == KindNull || v.null }

// Null builds an untyped NULL, equivalent to sea-query's bare Value::Null.
func Null() Value { return Value{kind: KindNull, null: true} }

// NullOf builds a typed NULL carrying the given Kind, so a column's
// intended type survives even when no value is present.
func NullOf(k Kind) Value { return Value{kind: k, null: true} }

func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }
func NullBool() Value       { return NullOf(KindBool) }
func TinyInt(i int8) Value  { return Value{kind: KindTinyInt, i64: int64(i)} }
func NullTinyInt() Value    { return NullOf(KindTinyInt) }
func SmallInt(i int16) Value { return Value{kind: KindSmallInt, i64: int64(i)} }
func NullSmallInt() Value   { return NullOf(KindSmallInt) }
func Int(i int32) Value     { return Value{kind: KindInt, i64: int64(i)} }
func NullInt() Value        { return NullOf(KindInt) }
func BigInt(i int64) Value  { return Value{kind: KindBigInt, i64: i} }
func NullBigInt() Value     { return NullOf(KindBigInt) }

func UTinyInt(i uint8) Value   { return Value{kind: KindUTinyInt, u64: uint64(i)} }
func NullUTinyInt() Value      { return NullOf(KindUTinyInt) }
func USmallInt(i uint16) Value { return Value{kind: KindUSmallInt, u64: uint64(i)} }
func NullUSmallInt() Value     { return NullOf(KindUSmallInt) }
func UInt(i uint32) Value      { return Value{kind: KindUInt, u64: uint64(i)} }
func NullUInt() Value          { return NullOf(KindUInt) }
func UBigInt(i uint64) Value   { return Value{kind: KindUBigInt, u64: i} }
func NullUBigInt() Value       { return NullOf(KindUBigInt) }

func Float(f float32) Value { return Value{kind: KindFloat, f64: float64(f)} }
func NullFloat() Value      { return NullOf(KindFloat) }
func Double(f float64) Value { return Value{kind: KindDouble, f64: f} }
func NullDouble() Value     { return NullOf(KindDouble) }

func String(s string) Value { return Value{kind: KindString, s: s} }
func NullString() Value     { return NullOf(KindString) }

func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }
func NullBytes() Value     { return NullOf(KindBytes) }

func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }
func NullTime() Value        { return NullOf(KindTime) }

func Uuid(u uuid.UUID) Value { return Value{kind: KindUuid, u: u} }
func NullUuid() Value        { return NullOf(KindUuid) }

// Bool returns the payload of a Bool Value; ok is false for any other Kind.
func (v Value) Bool() (val, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Int64 returns the payload of any signed integer Value widened to int64.
func (v Value) Int64() (val int64, ok bool) {
	switch v.kind {
	case KindTinyInt, KindSmallInt, KindInt, KindBigInt:
		return v.i64, true
	default:
		return 0, false
	}
}

// Uint64 returns the payload of any unsigned integer Value widened to uint64.
func (v Value) Uint64() (val uint64, ok bool) {
	switch v.kind {
	case KindUTinyInt, KindUSmallInt, KindUInt, KindUBigInt:
		return v.u64, true
	default:
		return 0, false
	}
}

// Float64 returns the payload of a Float/Double Value widened to float64.
func (v Value) Float64() (val float64, ok bool) {
	switch v.kind {
	case KindFloat, KindDouble:
		return v.f64, true
	default:
		return 0, false
	}
}

func (v Value) String_() (val string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) BytesVal() (val []byte, ok bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.bytes, true
}

func (v Value) TimeVal() (val time.Time, ok bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.t, true
}

func (v Value) UuidVal() (val uuid.UUID, ok bool) {
	if v.kind != KindUuid {
		return uuid.UUID{}, false
	}
	return v.u, true
}

// Interface returns the best Go representation of this Value for binding
// to a driver parameter vector: nil for NULL, and the natural scalar type
// otherwise (int64/uint64/float64/string/[]byte/bool/time.Time/string for
// a UUID).
func (v Value) Interface() interface{} {
	if v.IsNull() {
		return nil
	}
	switch v.kind {
	case KindBool:
		return v.b
	case KindTinyInt, KindSmallInt, KindInt, KindBigInt:
		return v.i64
	case KindUTinyInt, KindUSmallInt, KindUInt, KindUBigInt:
		return v.u64
	case KindFloat, KindDouble:
		return v.f64
	case KindString:
		return v.s
	case KindBytes:
		return v.bytes
	case KindTime:
		return v.t
	case KindUuid:
		return v.u.String()
	default:
		return nil
	}
}

// Values is a thin ordered wrapper around a parameter vector.
type Values struct {
	items []Value
}

func NewValues() *Values { return &Values{} }

func (vs *Values) Append(v Value) { vs.items = append(vs.items, v) }

func (vs *Values) Items() []Value { return vs.items }

// Interfaces returns the parameter vector in the shape a database/sql
// driver expects: one interface{} per bound Value, in render order.
func (vs *Values) Interfaces() []interface{} {
	out := make([]interface{}, len(vs.items))
	for i, v := range vs.items {
		out[i] = v.Interface()
	}
	return out
}

func (vs *Values) Len() int { return len(vs.items) }
