package collision

type options struct {
	nodeCapacity int
	itemCapacity int
}

func defaultOptions() options {
	return options{
		nodeCapacity: 1,
	}
}

// Option configures a LooseQuadTree at construction.
type Option func(*options)

// WithNodeCapacity preallocates room for n node slots. A tree that grows
// past it reallocates its node storage, which is otherwise kept across
// Clear.
func WithNodeCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.nodeCapacity = n
		}
	}
}

// WithItemCapacity sets the initial item capacity of each node the first
// time it stores an entry. Zero leaves it to append.
func WithItemCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.itemCapacity = n
		}
	}
}
