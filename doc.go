// Package pego implements a Parsing Expression Grammar (PEG) combinator
// engine: parser trees are built from a small set of node constructors and
// run against a string input to produce either a successful Match (value,
// captures, consumed range) or a structured Result carrying the deepest
// failure the engine could reach.
//
// Grammars are built programmatically, leaves first:
//
//	digit := pego.NewRegExp(`[0-9]`)
//	number := pego.NewAction(pego.Plus(digit), func(a *pego.ActionArgs) (any, error) {
//		return strconv.Atoi(a.Raw)
//	})
//	result := pego.New(number).Parse("42")
//
// Ordered choice, sequencing, repetition, named rules and semantic actions
// compose the same way a hand-written recursive-descent parser would, but
// every node is data: the tree is read-only during a match and safe to
// share across goroutines as long as each Parse call gets its own
// *Options/*Internals, which Parser.Parse always allocates fresh.
package pego
