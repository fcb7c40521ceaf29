package pego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartEdgeOnlyMatchesAtZero(t *testing.T) {
	p := New(Seq(NewStartEdge(), Literal("a")))
	res := p.Parse("a")
	require.True(t, res.Success)

	res = New(Seq(Literal("a"), NewStartEdge())).Parse("ab")
	assert.False(t, res.Success)
}

func TestEndEdgeRequiresFullConsumption(t *testing.T) {
	p := New(Seq(Literal("a"), NewEndEdge()))
	require.True(t, p.Parse("a").Success)
	assert.False(t, p.Parse("ab").Success)
}

func TestEndEdgePreskipsTrailingWhitespace(t *testing.T) {
	p := New(Seq(Literal("a"), NewEndEdge()))
	res := p.Parse("a   ")
	require.True(t, res.Success)
}
