package generator

// reclaimer is the interchange view a Reply keeps: the one-shot liveness
// check-then-remove that gates writing into the reply cell. Both storage
// variants implement it.
type reclaimer[O any] interface {
	reclaim(*answer[O]) bool
}

// Reply is the obligation half of an exchange: the capability to answer one
// specific yield operation. Exactly one of Provide or Discard takes effect;
// later calls are no-ops.
type Reply[O any] struct {
	slot reclaimer[O]
	data *answer[O]
	used bool
}

// Provide writes the reply for the originating yield operation. The write
// only happens if that operation is still waiting for it; replies to
// abandoned operations, or to operations whose storage was torn down, are
// dropped silently.
func (r *Reply[O]) Provide(v O) {
	if r.used {
		return
	}
	r.used = true
	if r.slot.reclaim(r.data) {
		r.data.value = v
		r.data.ready = true
	}
}

// ProvideDefault answers with the zero reply value.
func (r *Reply[O]) ProvideDefault() {
	var zero O
	r.Provide(zero)
}

// Discard abandons the obligation without answering. The reply cell is
// released from the interchange so no later reply can match it; the
// originating yield operation then never completes.
func (r *Reply[O]) Discard() {
	if r.used {
		return
	}
	r.used = true
	r.slot.reclaim(r.data)
}

// Exchange carries one value yielded by the producer together with the
// obligation to reply to it.
type Exchange[T, O any] struct {
	value T
	back  Reply[O]
}

// Value returns the yielded value. It does not consume the exchange.
func (x *Exchange[T, O]) Value() T { return x.value }

// Provide answers the exchange and returns the yielded value.
func (x *Exchange[T, O]) Provide(v O) T {
	x.back.Provide(v)
	return x.value
}

// Handle derives the reply from the yielded value.
func (x *Exchange[T, O]) Handle(f func(T) O) {
	x.back.Provide(f(x.value))
}

// Take splits the exchange into the yielded value and the outstanding reply
// obligation.
func (x *Exchange[T, O]) Take() (T, *Reply[O]) {
	return x.value, &x.back
}

// Discard drops the exchange without answering it. The producer's yield
// operation stays suspended indefinitely, which is accepted behavior rather
// than an error.
func (x *Exchange[T, O]) Discard() {
	x.back.Discard()
}
