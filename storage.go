package generator

// storage locates the interchange of a bound producer, hiding whether it
// lives in caller-owned Storage or in a shared heap block. The reclaim method
// is the one-shot liveness-check-then-remove performed before a reply may be
// written; it erases the yielded value type for Reply.
type storage[T, O any] interface {
	interchange() *values[T, O]
	alive() bool
	reclaim(*answer[O]) bool
}

// stackMode is the borrowed strategy: the interchange lives in a caller-owned
// Storage and is valid for that scope's entire lifetime, so liveness checks
// are constant.
type stackMode[T, O any] struct {
	v *values[T, O]
}

func (m stackMode[T, O]) interchange() *values[T, O] { return m.v }

func (m stackMode[T, O]) alive() bool { return true }

func (m stackMode[T, O]) reclaim(r *answer[O]) bool {
	_, found := m.v.remove(r)
	return found
}

// block is the shared heap allocation of the owned strategy: the interchange
// plus the strong-owner count. The consumer-facing Generator is the sole
// strong owner; everything on the producer side only observes.
type block[T, O any] struct {
	v      values[T, O]
	strong int
}

func (b *block[T, O]) release() { b.strong-- }

// heapMode is the non-owning observation view handed to the producer side.
// It never extends the block's lifetime and re-validates liveness before
// every write, so yields against a torn-down consumer are dropped instead of
// landing in storage nobody will drain.
type heapMode[T, O any] struct {
	b *block[T, O]
}

func (m heapMode[T, O]) interchange() *values[T, O] { return &m.b.v }

func (m heapMode[T, O]) alive() bool { return m.b.strong > 0 }

func (m heapMode[T, O]) reclaim(r *answer[O]) bool {
	if m.b.strong <= 0 {
		return false
	}
	_, found := m.b.v.remove(r)
	return found
}
