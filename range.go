package pego

// Range is an inclusive-start, exclusive-end span of byte indices into the
// input that produced it: [From, To).
type Range struct {
	From int
	To   int
}

// Len returns the number of bytes spanned by r.
func (r Range) Len() int {
	return r.To - r.From
}
