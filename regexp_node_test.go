package pego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegExpMatchesAnchoredAtCursor(t *testing.T) {
	p := New(NewRegExp(`[0-9]+`))
	res := p.Parse("123abc")
	require.True(t, res.Success)
	assert.Equal(t, "123", res.Value)
	assert.Equal(t, 3, res.Range.To)
}

func TestRegExpDoesNotSearchAhead(t *testing.T) {
	// anchored at the cursor: a pattern that can't match *right here*
	// fails even though it would match later in the string.
	p := New(NewRegExp(`[0-9]+`))
	res := p.Parse("abc123", WithSkip(false))
	assert.False(t, res.Success)
}

func TestRegExpNamedGroupsBecomeCaptures(t *testing.T) {
	p := New(NewRegExp(`(?P<year>[0-9]{4})-(?P<month>[0-9]{2})`))
	res := p.Parse("2024-05")
	require.True(t, res.Success)
	assert.Equal(t, "2024", res.Captures["year"])
	assert.Equal(t, "05", res.Captures["month"])
}

func TestRegExpIgnoreCase(t *testing.T) {
	p := New(NewRegExp(`[a-z]+`))
	res := p.Parse("ABC", WithIgnoreCase(true))
	require.True(t, res.Success)
	assert.Equal(t, "ABC", res.Value)
}
