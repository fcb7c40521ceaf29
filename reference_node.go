package pego

import "github.com/kadirpekel/pego/internal/pegerr"

// referenceNode holds only a label string and resolves it against
// Options.Grammar at match time — the lookup indirection that lets named
// rules recurse without the parser tree ever containing a pointer cycle
// (spec §3, §9). It additionally captures the resolved rule's value under
// its own label.
type referenceNode struct {
	label string
}

// NewReference builds a parser that calls the grammar rule named label.
func NewReference(label string) Node {
	return &referenceNode{label: label}
}

func (n *referenceNode) Label() string { return n.label }

func (n *referenceNode) children() []Node { return nil }

func (n *referenceNode) exec(opts *Options, in *Internals) *Match {
	if opts.Grammar == nil {
		pegerr.Fatalf("pego: reference %q used outside of any grammar", n.label)
	}
	target, ok := opts.Grammar.rules[n.label]
	if !ok {
		pegerr.Fatalf("pego: undefined rule %q", n.label)
	}

	trace := trace(opts.Tracer, n.label, opts)
	m := target.exec(opts, in)
	trace(m)
	if m == nil {
		return nil
	}

	captures := mergeCaptures(m.Captures, map[string]any{n.label: m.Value})
	return &Match{Range: m.Range, Value: m.Value, Children: m.Children, Captures: captures}
}
