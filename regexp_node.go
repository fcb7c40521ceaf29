package pego

import "regexp"

// regexpNode matches a regular expression anchored at the cursor after
// preskip. Spec §4.4 and §9 require the match to be forced to the current
// position; Go's regexp package has no sticky flag, so both the
// case-sensitive and case-insensitive forms are precompiled at
// construction time with "\A" prepended, and matching slices the input
// from the cursor rather than searching it (spec §9's documented
// equivalent for hosts without sticky regex).
type regexpNode struct {
	source      string
	sensitive   *regexp.Regexp
	insensitive *regexp.Regexp
}

// NewRegExp builds a terminal from a regular expression source pattern.
// The pattern should not itself anchor or flag case-insensitivity; both are
// applied by the node according to Options.IgnoreCase at match time.
func NewRegExp(pattern string) Node {
	return &regexpNode{
		source:      pattern,
		sensitive:   mustCompileAnchored(pattern, false),
		insensitive: mustCompileAnchored(pattern, true),
	}
}

func mustCompileAnchored(pattern string, ignoreCase bool) *regexp.Regexp {
	anchored := `\A(?:` + pattern + `)`
	if ignoreCase {
		anchored = `(?i)` + anchored
	}
	return regexp.MustCompile(anchored)
}

func (n *regexpNode) Label() string { return "/" + n.source + "/" }

func (n *regexpNode) children() []Node { return nil }

func (n *regexpNode) exec(opts *Options, in *Internals) (m *Match) {
	untrace := trace(opts.Tracer, n.Label(), opts)
	defer func() { untrace(m) }()

	opts, ok := preskip(opts, in)
	if !ok {
		in.fail(expectationFailure(opts.From, Expectation{Kind: ExpectRegExp, RegExp: n.source}))
		return nil
	}

	re := n.sensitive
	if opts.IgnoreCase {
		re = n.insensitive
	}

	idx := re.FindStringSubmatchIndex(opts.Input[opts.From:])
	if idx == nil {
		in.fail(expectationFailure(opts.From, Expectation{Kind: ExpectRegExp, RegExp: n.source}))
		return nil
	}

	to := opts.From + idx[1]
	var captures map[string]any
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		gi := 2 * i
		if idx[gi] < 0 {
			continue
		}
		if captures == nil {
			captures = make(map[string]any)
		}
		captures[name] = opts.Input[opts.From+idx[gi] : opts.From+idx[gi+1]]
	}

	return &Match{
		Range:    Range{From: opts.From, To: to},
		Value:    opts.Input[opts.From:to],
		Captures: captures,
	}
}
