package pego

import (
	"github.com/kadirpekel/pego/internal/pegerr"
	"github.com/pkg/errors"
)

// Rule names one entry of a GrammarNode's rule table. Declaration order is
// kept (a Go map has none) so the grammar's first rule can act as its
// default entry point when the grammar itself is matched (spec §4.6).
type Rule struct {
	Name string
	Node Node
}

// GrammarNode owns a named-rule table by exclusive ownership; it is what
// gets installed into Options.Grammar so Reference nodes can resolve their
// labels (spec §3's "Grammar and Reference together enable named
// recursion... breaks the ownership cycle"). Matching a GrammarNode
// directly delegates to its first declared rule.
type GrammarNode struct {
	order []string
	rules map[string]Node
}

// NewGrammar builds a grammar from an ordered list of named rules,
// validating at construction time that every Reference reachable from any
// rule resolves to a declared name (spec §7: configuration errors surface
// immediately, not on first use).
func NewGrammar(rules ...Rule) *GrammarNode {
	g := &GrammarNode{rules: make(map[string]Node, len(rules))}
	for _, r := range rules {
		if _, exists := g.rules[r.Name]; exists {
			pegerr.Fatalf("pego: duplicate rule %q in grammar", r.Name)
		}
		g.order = append(g.order, r.Name)
		g.rules[r.Name] = r.Node
	}
	g.validate()
	return g
}

func (g *GrammarNode) validate() {
	seen := make(map[Node]bool)
	for _, name := range g.order {
		walkReferences(g.rules[name], seen, func(label string) {
			if _, ok := g.rules[label]; !ok {
				pegerr.Fatalf("pego: rule %q references undefined rule %q", name, label)
			}
		})
	}
}

func walkReferences(n Node, seen map[Node]bool, visit func(label string)) {
	if n == nil || seen[n] {
		return
	}
	seen[n] = true
	if ref, ok := n.(*referenceNode); ok {
		visit(ref.label)
	}
	for _, child := range n.children() {
		walkReferences(child, seen, visit)
	}
}

// RuleNames exposes the grammar's declared rule names in declaration order,
// for tooling that names rules without re-deriving labels from a type
// switch (spec §6).
func (g *GrammarNode) RuleNames() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// MustCompile builds a grammar exactly like NewGrammar, panicking with a
// *pegerr.ConfigError on any unresolved reference or duplicate rule name.
// Construction-time validation catches configuration mistakes before the
// first Parse call, not on first use.
func MustCompile(rules ...Rule) *GrammarNode {
	return NewGrammar(rules...)
}

// Compile builds a grammar like MustCompile, but recovers a *ConfigError
// panic and returns it as an ordinary error instead, for callers that build
// grammars from untrusted or dynamic rule sets and would rather not panic.
func Compile(rules ...Rule) (g *GrammarNode, err error) {
	defer func() {
		if r := recover(); r != nil {
			if cfgErr, ok := r.(*pegerr.ConfigError); ok {
				err = errors.WithStack(cfgErr)
				return
			}
			panic(r)
		}
	}()
	return NewGrammar(rules...), nil
}

func (g *GrammarNode) Label() string { return "grammar" }

func (g *GrammarNode) children() []Node {
	out := make([]Node, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.rules[name])
	}
	return out
}

func (g *GrammarNode) exec(opts *Options, in *Internals) (result *Match) {
	untrace := trace(opts.Tracer, g.Label(), opts)
	defer func() { untrace(result) }()

	scoped := opts.Clone()
	scoped.Grammar = g
	if len(g.order) == 0 {
		return &Match{Range: Range{From: opts.From, To: opts.From}, Value: noValue}
	}
	return g.rules[g.order[0]].exec(scoped, in)
}
