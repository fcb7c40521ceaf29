package pego

// optionNode is PEG ordered choice: try each alternative in turn, starting
// every attempt at the same opts.From, and return the first success
// unmodified. Backtracking needs no explicit cursor restore because every
// failed attempt works off a copy of opts and mutates no shared state
// besides append-only Internals (spec §4.5).
type optionNode struct {
	alternatives []Node
}

// NewOption builds an ordered-choice parser over children.
func NewOption(children ...Node) Node {
	return &optionNode{alternatives: children}
}

// Choice is a convenience alias for NewOption.
func Choice(children ...Node) Node { return NewOption(children...) }

func (n *optionNode) Label() string { return "choice" }

func (n *optionNode) children() []Node { return n.alternatives }

func (n *optionNode) exec(opts *Options, in *Internals) (m *Match) {
	untrace := trace(opts.Tracer, n.Label(), opts)
	defer func() { untrace(m) }()

	for _, child := range n.alternatives {
		if cm := child.exec(opts, in); cm != nil {
			return cm
		}
	}
	return nil
}
