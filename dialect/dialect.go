// Package dialect implements the capability set the renderer consults for
// identifier quoting, string escaping, placeholder syntax, and feature
// support (module F). Dialects are data, not inheritance: a single
// interface three concrete zero-value types satisfy, generalizing the
// teacher's PlaceholderStyle/DollarN branches in insert.go into a proper
// strategy object.
package dialect

import "strconv"

// Dialect is the capability set the renderer needs to serialize a
// statement IR for a specific SQL engine.
type Dialect interface {
	// QuoteChar is the identifier quote character (Sqlite/Postgres: `"`,
	// MySQL: `` ` ``).
	QuoteChar() byte
	// EscapeString doubles embedded quote delimiters for an inline string
	// literal; every other byte passes through unchanged.
	EscapeString(s string) string
	// UnescapeString is EscapeString's left inverse.
	UnescapeString(s string) string
	// Placeholder renders the Nth (1-based) bound-parameter placeholder.
	Placeholder(index int) string
	// SupportsNullsOrdering reports whether NULLS FIRST/LAST is legal.
	SupportsNullsOrdering() bool
	// SupportsReturning reports whether RETURNING is legal.
	SupportsReturning() bool
}

func escapeSingleQuote(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' {
			out = append(out, '\'', '\'')
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func unescapeSingleQuote(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' && i+1 < len(s) && s[i+1] == '\'' {
			out = append(out, '\'')
			i++
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// Sqlite is the dialect every spec test suite renders against.
type Sqlite struct{}

func (Sqlite) QuoteChar() byte                 { return '"' }
func (Sqlite) EscapeString(s string) string    { return escapeSingleQuote(s) }
func (Sqlite) UnescapeString(s string) string  { return unescapeSingleQuote(s) }
func (Sqlite) Placeholder(int) string          { return "?" }
func (Sqlite) SupportsNullsOrdering() bool     { return true }
func (Sqlite) SupportsReturning() bool         { return true }

// Postgres uses `$N` placeholders and otherwise matches Sqlite's
// capability set.
type Postgres struct{}

func (Postgres) QuoteChar() byte                { return '"' }
func (Postgres) EscapeString(s string) string   { return escapeSingleQuote(s) }
func (Postgres) UnescapeString(s string) string { return unescapeSingleQuote(s) }
func (Postgres) Placeholder(index int) string   { return "$" + strconv.Itoa(index) }
func (Postgres) SupportsNullsOrdering() bool    { return true }
func (Postgres) SupportsReturning() bool        { return true }

// MySQL lacks NULLS FIRST/LAST and RETURNING; the renderer silently drops
// both rather than erroring.
type MySQL struct{}

func (MySQL) QuoteChar() byte                { return '`' }
func (MySQL) EscapeString(s string) string   { return escapeSingleQuote(s) }
func (MySQL) UnescapeString(s string) string { return unescapeSingleQuote(s) }
func (MySQL) Placeholder(int) string         { return "?" }
func (MySQL) SupportsNullsOrdering() bool    { return false }
func (MySQL) SupportsReturning() bool        { return false }
