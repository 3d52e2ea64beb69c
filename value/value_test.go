package value

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNullIsNullRegardlessOfKind(t *testing.T) {
	require.True(t, Null().IsNull())
	require.True(t, NullOf(KindBigInt).IsNull())
	require.Equal(t, KindBigInt, NullOf(KindBigInt).Kind())
	require.False(t, BigInt(1).IsNull())
}

func TestIntWidthsRoundTripThroughInt64(t *testing.T) {
	cases := []Value{TinyInt(1), SmallInt(2), Int(3), BigInt(4)}
	want := []int64{1, 2, 3, 4}
	for i, v := range cases {
		got, ok := v.Int64()
		require.True(t, ok)
		require.Equal(t, want[i], got)
	}
	_, ok := String("x").Int64()
	require.False(t, ok)
}

func TestUintWidthsRoundTripThroughUint64(t *testing.T) {
	cases := []Value{UTinyInt(1), USmallInt(2), UInt(3), UBigInt(4)}
	want := []uint64{1, 2, 3, 4}
	for i, v := range cases {
		got, ok := v.Uint64()
		require.True(t, ok)
		require.Equal(t, want[i], got)
	}
}

func TestFloatAndDoubleShareAccessor(t *testing.T) {
	f, ok := Float(1.5).Float64()
	require.True(t, ok)
	require.InDelta(t, 1.5, f, 1e-9)

	d, ok := Double(2.5).Float64()
	require.True(t, ok)
	require.InDelta(t, 2.5, d, 1e-9)
}

func TestStringBytesTimeUuidAccessors(t *testing.T) {
	s, ok := String("hi").String_()
	require.True(t, ok)
	require.Equal(t, "hi", s)

	b, ok := Bytes([]byte{1, 2}).BytesVal()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2}, b)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tv, ok := Time(now).TimeVal()
	require.True(t, ok)
	require.True(t, now.Equal(tv))

	id := uuid.New()
	uv, ok := Uuid(id).UuidVal()
	require.True(t, ok)
	require.Equal(t, id, uv)
}

func TestInterfaceReturnsDriverReadyScalars(t *testing.T) {
	require.Nil(t, Null().Interface())
	require.Equal(t, true, Bool(true).Interface())
	require.Equal(t, int64(5), BigInt(5).Interface())
	require.Equal(t, uint64(5), UBigInt(5).Interface())
	require.Equal(t, "x", String("x").Interface())

	id := uuid.New()
	require.Equal(t, id.String(), Uuid(id).Interface())
}

func TestValuesOrderedAppendAndInterfaces(t *testing.T) {
	vs := NewValues()
	vs.Append(BigInt(1))
	vs.Append(String("a"))
	require.Equal(t, 2, vs.Len())
	require.Equal(t, []interface{}{int64(1), "a"}, vs.Interfaces())
}
