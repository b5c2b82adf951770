package nfa

// Register is a tag-keyed multimap. Items are filed under the tag computed
// by an injected extractor; duplicate tags are allowed and all co-resident
// items are retained and jointly enumerable. Buckets and the tag catalog
// both preserve insertion order, and single-result lookups resolve ties by
// returning the first item added under the tag.
type Register[T comparable, V comparable] struct {
	tagOf   func(V) T
	order   []T
	buckets map[T][]V
	size    int
}

// NewRegister returns an empty register using tagOf to file items.
// Returns ErrNilTagFunc if tagOf is nil.
func NewRegister[T comparable, V comparable](tagOf func(V) T) (*Register[T, V], error) {
	if tagOf == nil {
		return nil, ErrNilTagFunc
	}
	return &Register[T, V]{
		tagOf:   tagOf,
		buckets: make(map[T][]V),
	}, nil
}

// Add files item under its extracted tag, creating the bucket on first use.
func (r *Register[T, V]) Add(item V) {
	tag := r.tagOf(item)
	if _, ok := r.buckets[tag]; !ok {
		r.order = append(r.order, tag)
	}
	r.buckets[tag] = append(r.buckets[tag], item)
	r.size++
}

// TryGet returns the first item filed under tag, in insertion order.
func (r *Register[T, V]) TryGet(tag T) (V, bool) {
	if items := r.buckets[tag]; len(items) > 0 {
		return items[0], true
	}
	var zero V
	return zero, false
}

// Get returns all items filed under tag in insertion order. The slice
// aliases internal storage and is valid until the next Add.
func (r *Register[T, V]) Get(tag T) []V {
	return r.buckets[tag]
}

// Contains reports whether item itself (not merely its tag) is filed
// under tag.
func (r *Register[T, V]) Contains(tag T, item V) bool {
	for _, it := range r.buckets[tag] {
		if it == item {
			return true
		}
	}
	return false
}

// Has reports whether any item is filed under tag.
func (r *Register[T, V]) Has(tag T) bool {
	return len(r.buckets[tag]) > 0
}

// Len returns the total number of filed items across all buckets.
func (r *Register[T, V]) Len() int {
	return r.size
}

// Tags returns the distinct tags in first-seen order.
func (r *Register[T, V]) Tags() []T {
	out := make([]T, len(r.order))
	copy(out, r.order)
	return out
}

// Items returns all filed items, grouped by first-seen tag order and in
// insertion order within each bucket.
func (r *Register[T, V]) Items() []V {
	out := make([]V, 0, r.size)
	for _, tag := range r.order {
		out = append(out, r.buckets[tag]...)
	}
	return out
}
