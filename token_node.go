package pego

// tokenNode presents its child as a single atomic, whitespace-sensitive
// unit: preskip runs once on the way in, then the body matches with Skip
// forced false (spec §4.3's "tokens are atomic and whitespace-sensitive").
// The body's own failures never leak to the caller; on failure the token
// records one Expectation(Token) naming its alias and carrying the body's
// failures as context (spec §4.6).
type tokenNode struct {
	child Node
	alias string
}

// NewToken builds an atomic token parser. alias may be empty, in which
// case the token has no name of its own in diagnostics.
func NewToken(child Node, alias string) Node {
	return &tokenNode{child: child, alias: alias}
}

func (n *tokenNode) Label() string {
	if n.alias != "" {
		return n.alias
	}
	return "token"
}

func (n *tokenNode) children() []Node { return []Node{n.child} }

func (n *tokenNode) exec(opts *Options, in *Internals) *Match {
	opts, ok := preskip(opts, in)
	if !ok {
		trace(opts.Tracer, n.Label(), opts)(nil)
		in.fail(expectationFailure(opts.From, Expectation{Kind: ExpectToken, Alias: n.alias}))
		return nil
	}

	untrace := trace(opts.Tracer, n.Label(), opts)
	bodyOpts := opts.withSkip(false)
	bodyIn := newInternals()
	m := n.child.exec(bodyOpts, bodyIn)
	in.Warnings = append(in.Warnings, bodyIn.Warnings...)
	untrace(m)
	if m != nil {
		return m
	}

	in.fail(expectationFailure(opts.From, Expectation{
		Kind:  ExpectToken,
		Alias: n.alias,
		Token: bodyIn.Failures,
	}))
	return nil
}
