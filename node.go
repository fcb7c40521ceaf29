package pego

// Node is the parser contract every grammar element implements. Go has no
// closed sum type cheap enough to dispatch on, so every variant is a
// distinct type behind this one-method interface instead of a tagged union.
type Node interface {
	// exec starts matching at opts.From (after optional preskip) and
	// returns a Match on success or nil on failure, recording failures
	// and warnings into in as it goes.
	exec(opts *Options, in *Internals) *Match

	// Label names this node for tracing: a Reference's label, a Token's
	// alias, or a type tag.
	Label() string

	// children returns this node's immediate sub-nodes, used by
	// GrammarNode to validate that every Reference in a rule tree
	// resolves before the grammar is ever matched.
	children() []Node
}

// preskip advances the cursor in opts past input matched by opts.Skipper,
// provided opts.Skip is set. The skipper itself always runs
// with Skip forced false, so it can never recursively skip itself. It
// returns the options to resume from and false if the skipper failed to
// match, which fails the caller's preskip.
func preskip(opts *Options, in *Internals) (*Options, bool) {
	if !opts.Skip || opts.Skipper == nil {
		return opts, true
	}
	m := opts.Skipper.exec(opts.withSkip(false), in)
	if m == nil {
		return opts, false
	}
	return opts.at(m.To), true
}
