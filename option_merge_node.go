package pego

// optionMergeNode invokes its child under a shallow-overridden Options,
// used to scope a case-insensitivity region, swap in an alternate skipper,
// etc. (spec §4.6; no teacher analogue — see DESIGN.md.)
type optionMergeNode struct {
	child     Node
	overrides []Override
}

// NewOptionMerge builds a node that runs child with the given Options
// overrides applied, without affecting the surrounding scope.
func NewOptionMerge(child Node, overrides ...Override) Node {
	return &optionMergeNode{child: child, overrides: overrides}
}

func (n *optionMergeNode) Label() string { return "option-merge" }

func (n *optionMergeNode) children() []Node { return []Node{n.child} }

func (n *optionMergeNode) exec(opts *Options, in *Internals) (result *Match) {
	untrace := trace(opts.Tracer, n.Label(), opts)
	defer func() { untrace(result) }()

	scoped := opts.Clone()
	for _, o := range n.overrides {
		o(scoped)
	}
	return n.child.exec(scoped, in)
}
