package pego

// noValue is the sentinel a node emits when it contributes nothing to its
// parent's child list (a dropped literal, an edge assertion, a predicate).
// Sequence filters it out of the concatenated child list; Repetition does
// not filter its accumulated list (spec §4.2, preserved asymmetrically on
// purpose — see DESIGN.md).
type noValueType struct{}

var noValue = noValueType{}

func hasValue(v any) bool {
	_, ok := v.(noValueType)
	return !ok
}

// Match is the immutable result of a successful parse attempt: the range
// consumed, the value the node computed, the ordered values its children
// emitted, and the named captures propagated up from the subtree.
//
// Matches are never mutated after construction; a node that needs to
// change a child's match constructs a new one.
type Match struct {
	Range
	Value    any
	Children []any
	Captures map[string]any
}

// Raw returns the slice of the input text the match consumed.
func (m *Match) Raw(input string) string {
	return input[m.From:m.To]
}

// mergeCaptures builds the right-biased union of a list of capture maps in
// traversal order: later maps' keys win on conflict. A nil result means no
// child produced any captures, avoiding an allocation on the common path.
func mergeCaptures(maps ...map[string]any) map[string]any {
	var out map[string]any
	for _, m := range maps {
		for k, v := range m {
			if out == nil {
				out = make(map[string]any, len(m))
			}
			out[k] = v
		}
	}
	return out
}
