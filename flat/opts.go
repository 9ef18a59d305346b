package flat

// DefaultSeparator joins path key segments unless overridden.
const DefaultSeparator = "."

type Option func(*flatOpts)

type flatOpts struct {
	sep      string
	maxDepth int
}

// Separator sets the string joining path key segments.
func Separator(s string) Option {
	return func(fo *flatOpts) { fo.sep = s }
}

// MaxDepth limits how deep Flatten descends.  Entries at the limit keep
// their remaining subtree verbatim as the value.
func MaxDepth(n int) Option {
	return func(fo *flatOpts) { fo.maxDepth = n }
}

func newOpts(opts []Option) *flatOpts {
	fo := &flatOpts{
		sep:      DefaultSeparator,
		maxDepth: -1,
	}
	for _, opt := range opts {
		opt(fo)
	}
	return fo
}

func (fo *flatOpts) limited(depth int) bool {
	return fo.maxDepth >= 0 && depth >= fo.maxDepth
}
