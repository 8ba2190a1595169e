package decode

const (
	// DefaultMaxDepth bounds list/dictionary nesting. Real-world
	// documents are a handful of levels deep; anything near this
	// bound is an attack on the call stack.
	DefaultMaxDepth = 64

	// DefaultMaxElements bounds the total node count, which bounds
	// arena memory for inputs made of enormous numbers of tiny
	// empty containers.
	DefaultMaxElements = 1 << 20
)

type decodeOpts struct {
	maxDepth    int
	maxElements int
}

type Option func(*decodeOpts)

// MaxDepth overrides the nesting bound. A document nesting containers
// to exactly n decodes; one level more fails with ErrDepthLimit.
func MaxDepth(n int) Option {
	return func(o *decodeOpts) { o.maxDepth = n }
}

// MaxElements overrides the node-count bound.
func MaxElements(n int) Option {
	return func(o *decodeOpts) { o.maxElements = n }
}
