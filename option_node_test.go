package pego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionTriesAlternativesInOrder(t *testing.T) {
	p := New(Choice(Literal("a"), Literal("b")))

	res := p.Parse("b")
	require.True(t, res.Success)
	assert.Equal(t, "b", res.Value)
	// the failed first alternative still left its expectation behind.
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "a", res.Failures[0].Expected[0].Literal)
}

func TestOptionFirstSuccessWins(t *testing.T) {
	p := New(Choice(Literal("ab"), Literal("a")))
	res := p.Parse("ab")
	require.True(t, res.Success)
	assert.Equal(t, "ab", res.Value)
}

func TestOptionFailsWhenAllAlternativesFail(t *testing.T) {
	p := New(Choice(Literal("a"), Literal("b")))
	res := p.Parse("c")
	require.False(t, res.Success)
	require.Len(t, res.Failures, 1)
	assert.ElementsMatch(t, []string{"a", "b"}, []string{
		res.Failures[0].Expected[0].Literal,
		res.Failures[0].Expected[1].Literal,
	})
}

func TestOptionDoesNotLeakCursorAcrossFailedBranch(t *testing.T) {
	// a failed branch mustn't advance the cursor observed by later
	// branches, even if it consumed input before failing.
	p := New(Choice(Seq(Literal("a"), Literal("z")), Seq(Literal("a"), Literal("b"))))
	res := p.Parse("ab")
	require.True(t, res.Success)
	assert.Equal(t, 0, res.Range.From)
	assert.Equal(t, 2, res.Range.To)
}
