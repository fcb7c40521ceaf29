package pego

import (
	"fmt"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"
)

// EdgeKind distinguishes the two edge assertions an Expectation may name.
type EdgeKind int

const (
	// EdgeStart is the expectation left behind by a failed StartEdge.
	EdgeStart EdgeKind = iota
	// EdgeEnd is the expectation left behind by a failed EndEdge.
	EdgeEnd
)

func (k EdgeKind) String() string {
	if k == EdgeStart {
		return "start of input"
	}
	return "end of input"
}

// Expectation describes what a parser wanted to see at a position. Exactly
// one of the payload fields is meaningful, selected by Kind (spec §3).
type Expectation struct {
	Kind ExpectationKind

	Literal string    // Kind == ExpectLiteral
	RegExp  string    // Kind == ExpectRegExp, the source pattern
	Alias   string    // Kind == ExpectToken, optional
	Token   []Failure // Kind == ExpectToken, the body's own failures
	Edge    EdgeKind  // Kind == ExpectEdge
}

// ExpectationKind tags the payload carried by an Expectation.
type ExpectationKind int

const (
	ExpectLiteral ExpectationKind = iota
	ExpectRegExp
	ExpectToken
	ExpectEdge
)

func (e Expectation) String() string {
	switch e.Kind {
	case ExpectLiteral:
		return fmt.Sprintf("%q", e.Literal)
	case ExpectRegExp:
		return fmt.Sprintf("/%s/", e.RegExp)
	case ExpectToken:
		if e.Alias != "" {
			return e.Alias
		}
		return "token"
	case ExpectEdge:
		return e.Edge.String()
	default:
		return "?"
	}
}

// sameExpectation reports whether two expectations describe the same thing,
// used to deduplicate the union built by mergeFailures.
func sameExpectation(a, b Expectation) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ExpectLiteral:
		return a.Literal == b.Literal
	case ExpectRegExp:
		return a.RegExp == b.RegExp
	case ExpectToken:
		return a.Alias == b.Alias
	case ExpectEdge:
		return a.Edge == b.Edge
	default:
		return false
	}
}

// FailureKind tags whether a Failure describes an unmet Expectation or a
// semantic-action error.
type FailureKind int

const (
	FailureExpectation FailureKind = iota
	FailureSemantic
)

// Failure is a single dead-end encountered while matching: either a leaf
// expectation that wasn't met (From == To, a point position) or a semantic
// action's error (spanning the range of the match that produced it).
type Failure struct {
	Range
	Kind     FailureKind
	Expected []Expectation // FailureExpectation
	Message  string        // FailureSemantic
}

func (f Failure) Error() string {
	switch f.Kind {
	case FailureSemantic:
		return fmt.Sprintf("at %d: %s", f.From, f.Message)
	default:
		parts := make([]string, len(f.Expected))
		for i, e := range f.Expected {
			parts[i] = e.String()
		}
		return fmt.Sprintf("at %d: expected %s", f.From, strings.Join(parts, " or "))
	}
}

// expectationFailure builds a single-expectation Failure at a point
// position, the shape every terminal records on mismatch.
func expectationFailure(at int, exp Expectation) Failure {
	return Failure{
		Range:    Range{From: at, To: at},
		Kind:     FailureExpectation,
		Expected: []Expectation{exp},
	}
}

// Warning is advisory diagnostic attached to a range; it never affects
// success or failure (spec §3, §7).
type Warning struct {
	Range
	Message string
}

// mergeFailures implements spec §4.7: keep only the failures reached at the
// deepest position, combine same-position Expectation failures into one
// (deduplicated, first-occurrence order), and pass Semantic failures
// through individually.
func mergeFailures(fails []Failure) []Failure {
	if len(fails) == 0 {
		return nil
	}

	fmax := fails[0].From
	for _, f := range fails[1:] {
		if f.From > fmax {
			fmax = f.From
		}
	}

	var semantic []Failure
	var expected []Expectation
	for _, f := range fails {
		if f.From != fmax {
			continue
		}
		if f.Kind == FailureSemantic {
			semantic = append(semantic, f)
			continue
		}
		for _, e := range f.Expected {
			if !slices.ContainsFunc(expected, func(o Expectation) bool { return sameExpectation(e, o) }) {
				expected = append(expected, e)
			}
		}
	}

	out := make([]Failure, 0, len(semantic)+1)
	out = append(out, semantic...)
	if len(expected) > 0 {
		out = append(out, Failure{
			Range:    Range{From: fmax, To: fmax},
			Kind:     FailureExpectation,
			Expected: expected,
		})
	}
	return out
}

// asMultiError flattens a list of failures into a single error, grouping
// all of them under one *multierror.Error so a caller gets one reportable
// value instead of a slice to range over by hand.
func asMultiError(fails []Failure) error {
	if len(fails) == 0 {
		return nil
	}
	merr := &multierror.Error{}
	for _, f := range fails {
		merr = multierror.Append(merr, f)
	}
	return merr.ErrorOrNil()
}
