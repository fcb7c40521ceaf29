package pego

// Parser wraps a root Node as the entry point into a match, building
// default Options, invoking the recursion, and synthesizing a Result
// (spec §4.1).
type Parser struct {
	root Node
}

// New builds a Parser whose entry point is root.
func New(root Node) *Parser {
	return &Parser{root: root}
}

// Result is what Parser.Parse returns: either a successful match's range,
// value, raw text and captures, or a failed attempt's diagnostics. Failures
// may be non-empty even on success — the deepest point the engine reached
// while trying alternatives that ultimately lost to the winning one (spec
// §6).
type Result struct {
	Success  bool
	Range    Range
	Value    any
	Raw      string
	Captures map[string]any
	Warnings []Warning
	Failures []Failure
}

// Err flattens Result.Failures into a single error via
// github.com/hashicorp/go-multierror, or nil if there are none (a
// successful parse with no close alternatives).
func (r *Result) Err() error {
	return asMultiError(r.Failures)
}

// Parse runs the parser against input. Defaults: From=0, Skipper =
// DefaultSkipper, Skip=true, IgnoreCase=false; overrides apply in order.
func (p *Parser) Parse(input string, overrides ...Override) *Result {
	opts := &Options{
		Input:   input,
		From:    0,
		Skipper: DefaultSkipper,
		Skip:    true,
	}
	for _, o := range overrides {
		o(opts)
	}

	in := newInternals()
	m := p.root.exec(opts, in)

	failures := mergeFailures(in.Failures)

	if m == nil {
		return &Result{
			Success:  false,
			Warnings: in.Warnings,
			Failures: failures,
		}
	}

	return &Result{
		Success:  true,
		Range:    m.Range,
		Value:    m.Value,
		Raw:      m.Raw(input),
		Captures: m.Captures,
		Warnings: in.Warnings,
		Failures: failures,
	}
}
