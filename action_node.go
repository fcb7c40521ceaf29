package pego

import "github.com/kadirpekel/pego/internal/pegerr"

// Action is a semantic action: given the match its node produced, compute
// a new value, optionally committing or warning along the way (spec §4.6).
// An action that cannot make sense of its input returns an error, which
// the engine converts into a Semantic Failure spanning the match's range.
// A panicking action is not recovered — per spec §7 "any other thrown
// value is re-propagated unchanged", a programmer error, not parse data.
type Action func(*ActionArgs) (any, error)

// ActionArgs is the argument handed to a semantic action: the match's
// range and value, its captures, the options in effect, and the two
// sigil hooks $commit/$warn exposed as methods (spec §9's design note:
// a fixed argument record plus a separate captures mapping, rather than
// the source's dynamic key-value blend).
type ActionArgs struct {
	From     int
	To       int
	Raw      string
	Value    any
	Captures map[string]any
	Options  *Options

	commit func()
	warn   func(string)
}

// Commit is a PEG cut: it discards every tentative failure recorded so
// far, so none of the alternatives this action's branch beat can ever
// surface as the final diagnostic. Only failures recorded after Commit
// returns are eligible to be reported.
func (a *ActionArgs) Commit() {
	a.commit()
}

// Warn records an advisory diagnostic at this action's match range.
func (a *ActionArgs) Warn(message string) {
	a.warn(message)
}

type actionNode struct {
	child Node
	fn    Action
}

// NewAction wraps child with a semantic action run on success.
func NewAction(child Node, fn Action) Node {
	if fn == nil {
		pegerr.Fatalf("pego: nil action")
	}
	return &actionNode{child: child, fn: fn}
}

func (n *actionNode) Label() string { return "action" }

func (n *actionNode) children() []Node { return []Node{n.child} }

func (n *actionNode) exec(opts *Options, in *Internals) (result *Match) {
	untrace := trace(opts.Tracer, n.Label(), opts)
	defer func() { untrace(result) }()

	m := n.child.exec(opts, in)
	if m == nil {
		return nil
	}

	args := &ActionArgs{
		From:     m.From,
		To:       m.To,
		Raw:      m.Raw(opts.Input),
		Value:    m.Value,
		Captures: m.Captures,
		Options:  opts,
		commit:   in.commit,
		warn:     func(msg string) { in.warn(Warning{Range: m.Range, Message: msg}) },
	}

	value, err := n.fn(args)
	if err != nil {
		in.fail(Failure{Range: m.Range, Kind: FailureSemantic, Message: err.Error()})
		return nil
	}

	return &Match{Range: m.Range, Value: value, Children: m.Children, Captures: m.Captures}
}
