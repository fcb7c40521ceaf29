package pego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFailuresOfEmptyListIsNil(t *testing.T) {
	assert.Nil(t, mergeFailures(nil))
}

func TestMergeFailuresKeepsOnlyTheDeepestPosition(t *testing.T) {
	fails := []Failure{
		expectationFailure(0, Expectation{Kind: ExpectLiteral, Literal: "a"}),
		expectationFailure(2, Expectation{Kind: ExpectLiteral, Literal: "b"}),
		expectationFailure(1, Expectation{Kind: ExpectLiteral, Literal: "c"}),
	}
	merged := mergeFailures(fails)
	require.Len(t, merged, 1)
	assert.Equal(t, 2, merged[0].From)
	assert.Equal(t, "b", merged[0].Expected[0].Literal)
}

func TestMergeFailuresUnionsAndDedupsSamePositionExpectations(t *testing.T) {
	fails := []Failure{
		expectationFailure(3, Expectation{Kind: ExpectLiteral, Literal: "while"}),
		expectationFailure(3, Expectation{Kind: ExpectLiteral, Literal: "if"}),
		expectationFailure(3, Expectation{Kind: ExpectLiteral, Literal: "if"}),
	}
	merged := mergeFailures(fails)
	require.Len(t, merged, 1)
	require.Len(t, merged[0].Expected, 2, "duplicate \"if\" expectation must be deduped")
	assert.Equal(t, "while", merged[0].Expected[0].Literal, "first occurrence order is preserved")
	assert.Equal(t, "if", merged[0].Expected[1].Literal)
}

func TestMergeFailuresPassesSemanticFailuresThroughIndividually(t *testing.T) {
	fails := []Failure{
		{Range: Range{From: 5, To: 5}, Kind: FailureSemantic, Message: "boom"},
		expectationFailure(5, Expectation{Kind: ExpectLiteral, Literal: "x"}),
	}
	merged := mergeFailures(fails)
	require.Len(t, merged, 2)
	assert.Equal(t, FailureSemantic, merged[0].Kind)
	assert.Equal(t, "boom", merged[0].Message)
	assert.Equal(t, FailureExpectation, merged[1].Kind)
}

func TestMergeFailuresIgnoresShallowerSemanticFailures(t *testing.T) {
	fails := []Failure{
		{Range: Range{From: 1, To: 1}, Kind: FailureSemantic, Message: "shallow"},
		expectationFailure(4, Expectation{Kind: ExpectLiteral, Literal: "x"}),
	}
	merged := mergeFailures(fails)
	require.Len(t, merged, 1)
	assert.Equal(t, FailureExpectation, merged[0].Kind)
	assert.Equal(t, 4, merged[0].From)
}

func TestMergeFailuresIsIdempotent(t *testing.T) {
	fails := []Failure{
		expectationFailure(7, Expectation{Kind: ExpectLiteral, Literal: "a"}),
		expectationFailure(7, Expectation{Kind: ExpectRegExp, RegExp: "[0-9]"}),
	}
	once := mergeFailures(fails)
	twice := mergeFailures(once)
	assert.Equal(t, once, twice)
}

func TestSameExpectationDistinguishesKindAndPayload(t *testing.T) {
	a := Expectation{Kind: ExpectLiteral, Literal: "x"}
	b := Expectation{Kind: ExpectLiteral, Literal: "y"}
	c := Expectation{Kind: ExpectRegExp, RegExp: "x"}
	assert.False(t, sameExpectation(a, b))
	assert.False(t, sameExpectation(a, c))
	assert.True(t, sameExpectation(a, a))
}

func TestAsMultiErrorFlattensFailures(t *testing.T) {
	assert.Nil(t, asMultiError(nil))

	fails := []Failure{
		expectationFailure(0, Expectation{Kind: ExpectLiteral, Literal: "a"}),
		{Range: Range{From: 1, To: 1}, Kind: FailureSemantic, Message: "boom"},
	}
	err := asMultiError(fails)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
