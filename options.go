package pego

// Options is the per-call, treated-as-immutable configuration spec §3 calls
// ParseOptions: the input text, the cursor, the active skipper, the
// skip/case-fold switches, the resolved grammar (if any) and user context.
// Nodes never mutate an *Options in place; every override goes through
// Clone so a failed branch can never observe another branch's state.
type Options struct {
	Input      string
	From       int
	Grammar    *GrammarNode
	Skipper    Node
	Skip       bool
	IgnoreCase bool
	Context    any
	Tracer     Tracer
}

// Clone returns a shallow copy of o, the building block every node uses to
// produce a scoped override (spec §9: "use scoped overrides rather than
// persistent pointer chains").
func (o *Options) Clone() *Options {
	clone := *o
	return &clone
}

func (o *Options) at(from int) *Options {
	c := o.Clone()
	c.From = from
	return c
}

func (o *Options) withSkip(skip bool) *Options {
	c := o.Clone()
	c.Skip = skip
	return c
}

// DefaultSkipper matches zero or more ASCII whitespace characters; it is
// the skipper Parser.Parse installs when the caller doesn't supply one.
var DefaultSkipper Node = NewRegExp(`[ \t\r\n]*`)

// Override mutates an *Options in place while building the initial call
// options; used as the functional-option shape for Parser.Parse.
type Override func(*Options)

// WithFrom starts the parse at a cursor other than 0.
func WithFrom(from int) Override {
	return func(o *Options) { o.From = from }
}

// WithSkipper installs a custom skipper parser.
func WithSkipper(skipper Node) Override {
	return func(o *Options) { o.Skipper = skipper }
}

// WithSkip turns preskip on or off for the whole parse.
func WithSkip(skip bool) Override {
	return func(o *Options) { o.Skip = skip }
}

// WithIgnoreCase turns on case-insensitive Literal/RegExp matching.
func WithIgnoreCase(ignoreCase bool) Override {
	return func(o *Options) { o.IgnoreCase = ignoreCase }
}

// WithContext attaches a user-defined value, retrievable by semantic
// actions via ActionArgs.Options.Context.
func WithContext(ctx any) Override {
	return func(o *Options) { o.Context = ctx }
}

// WithTracer installs a Tracer sink.
func WithTracer(t Tracer) Override {
	return func(o *Options) { o.Tracer = t }
}
