package pego

// Internals is the per-call mutable diagnostic scratchpad: tentative
// failures (discarded by $commit) and warnings. It is never shared across
// Parser.Parse calls.
type Internals struct {
	Warnings []Warning
	Failures []Failure
}

func newInternals() *Internals {
	return &Internals{}
}

func (in *Internals) fail(f Failure) {
	in.Failures = append(in.Failures, f)
}

func (in *Internals) warn(w Warning) {
	in.Warnings = append(in.Warnings, w)
}

// commit implements $commit: a PEG cut. Every tentative failure recorded so
// far lost to the branch now being committed to, so none of them may ever
// become the final diagnostic; they are discarded outright rather than
// promoted, leaving only what fails from this point forward.
func (in *Internals) commit() {
	in.Failures = nil
}
