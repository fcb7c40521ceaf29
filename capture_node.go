package pego

// captureNode names its child's value and adds it to the propagating
// capture map without otherwise changing the match (spec §4.6).
type captureNode struct {
	child Node
	name  string
}

// NewCapture binds child's match value under name, visible to any
// enclosing Action via ActionArgs and to the final Result.Captures.
func NewCapture(child Node, name string) Node {
	return &captureNode{child: child, name: name}
}

func (n *captureNode) Label() string { return "capture:" + n.name }

func (n *captureNode) children() []Node { return []Node{n.child} }

func (n *captureNode) exec(opts *Options, in *Internals) (result *Match) {
	untrace := trace(opts.Tracer, n.Label(), opts)
	defer func() { untrace(result) }()

	m := n.child.exec(opts, in)
	if m == nil {
		return nil
	}
	captures := mergeCaptures(m.Captures, map[string]any{n.name: m.Value})
	return &Match{
		Range:    m.Range,
		Value:    m.Value,
		Children: m.Children,
		Captures: captures,
	}
}
