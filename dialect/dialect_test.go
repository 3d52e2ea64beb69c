package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Serajian/go-query-builder/dialect"
)

func TestQuoteCharsPerDialect(t *testing.T) {
	require.Equal(t, byte('"'), dialect.Sqlite{}.QuoteChar())
	require.Equal(t, byte('"'), dialect.Postgres{}.QuoteChar())
	require.Equal(t, byte('`'), dialect.MySQL{}.QuoteChar())
}

func TestPlaceholderStyles(t *testing.T) {
	require.Equal(t, "?", dialect.Sqlite{}.Placeholder(1))
	require.Equal(t, "?", dialect.Sqlite{}.Placeholder(7))
	require.Equal(t, "$1", dialect.Postgres{}.Placeholder(1))
	require.Equal(t, "$7", dialect.Postgres{}.Placeholder(7))
	require.Equal(t, "?", dialect.MySQL{}.Placeholder(3))
}

func TestCapabilityFlags(t *testing.T) {
	require.True(t, dialect.Sqlite{}.SupportsNullsOrdering())
	require.True(t, dialect.Sqlite{}.SupportsReturning())
	require.True(t, dialect.Postgres{}.SupportsNullsOrdering())
	require.True(t, dialect.Postgres{}.SupportsReturning())
	require.False(t, dialect.MySQL{}.SupportsNullsOrdering())
	require.False(t, dialect.MySQL{}.SupportsReturning())
}

func TestEscapeDoublesSingleQuotes(t *testing.T) {
	d := dialect.Sqlite{}
	require.Equal(t, "it''s", d.EscapeString("it's"))
	require.Equal(t, `a"b\c`, d.EscapeString(`a"b\c`))
}

func TestUnescapeIsEscapeLeftInverse(t *testing.T) {
	for _, s := range []string{"", "plain", "it's", "''", "a'b'c", `keep\"chars`} {
		d := dialect.Postgres{}
		require.Equal(t, s, d.UnescapeString(d.EscapeString(s)))
	}
}
