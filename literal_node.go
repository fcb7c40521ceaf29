package pego

import "strings"

// literalNode matches a fixed string after preskip. Case sensitivity is
// governed by Options.IgnoreCase; matching a folded form still emits the
// literal's own canonical casing as its value (spec §4.4), mirroring the
// teacher's LiteralIC, which returns "the original, canonical string".
type literalNode struct {
	text string
	emit bool
}

// NewLiteral builds a terminal matching text exactly. If emit is false the
// node contributes no value to a parent Sequence's child list (spec §4.2).
func NewLiteral(text string, emit bool) Node {
	return &literalNode{text: text, emit: emit}
}

// Literal is the common case: a literal whose matched text is also its
// value.
func Literal(text string) Node {
	return NewLiteral(text, true)
}

// Drop wraps a literal so it emits no value; handy for fixed punctuation a
// Sequence shouldn't echo back in its child list.
func Drop(text string) Node {
	return NewLiteral(text, false)
}

func (n *literalNode) Label() string { return "literal " + n.text }

func (n *literalNode) children() []Node { return nil }

func (n *literalNode) exec(opts *Options, in *Internals) (m *Match) {
	untrace := trace(opts.Tracer, n.Label(), opts)
	defer func() { untrace(m) }()

	opts, ok := preskip(opts, in)
	if !ok {
		in.fail(expectationFailure(opts.From, Expectation{Kind: ExpectLiteral, Literal: n.text}))
		return nil
	}

	end := opts.From + len(n.text)
	if end > len(opts.Input) {
		in.fail(expectationFailure(opts.From, Expectation{Kind: ExpectLiteral, Literal: n.text}))
		return nil
	}

	candidate := opts.Input[opts.From:end]
	matched := candidate == n.text
	if !matched && opts.IgnoreCase {
		matched = strings.EqualFold(candidate, n.text)
	}
	if !matched {
		in.fail(expectationFailure(opts.From, Expectation{Kind: ExpectLiteral, Literal: n.text}))
		return nil
	}

	value := any(noValue)
	if n.emit {
		value = n.text
	}
	return &Match{Range: Range{From: opts.From, To: end}, Value: value}
}
