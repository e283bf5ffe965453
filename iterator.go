package generator

// Iterator adapts a Generator into a plain value iterator by answering every
// exchange with a provider-supplied reply.
type Iterator[T, O any] struct {
	gen     *Generator[T, O]
	provide func() O
}

// Provider adapts g into a value iterator; each exchange is answered with
// the provider's next value.
func (g *Generator[T, O]) Provider(f func() O) *Iterator[T, O] {
	return &Iterator[T, O]{gen: g, provide: f}
}

// Defaults adapts g into a value iterator; each exchange is answered with
// the zero reply value.
func (g *Generator[T, O]) Defaults() *Iterator[T, O] {
	return g.Provider(func() O {
		var zero O
		return zero
	})
}

// Next returns the next yielded value, answering its exchange immediately.
// Like Generator.Next, a false return is only final once Done reports
// completion.
func (it *Iterator[T, O]) Next() (T, bool) {
	x, ok := it.gen.Next()
	if !ok {
		var zero T
		return zero, false
	}
	return x.Provide(it.provide()), true
}

// SizeHint reports how many values are buffered and whether the count is
// exact.
func (it *Iterator[T, O]) SizeHint() (n int, exact bool) {
	return it.gen.SizeHint()
}

// Done reports whether the underlying generator completed.
func (it *Iterator[T, O]) Done() bool { return it.gen.Done() }

// Close closes the underlying generator.
func (it *Iterator[T, O]) Close() { it.gen.Close() }
