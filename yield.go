package generator

import "runtime"

// Pending is one suspendable yield operation, created by Context.Yield. It
// completes once the consumer answers the exchange carrying its value.
type Pending[T, O any] struct {
	ctx   *Context[T, O]
	reply *answer[O]
	done  bool
}

// Yield hands v to the consumer and returns the operation watching for the
// reply. The value is placed in the interchange immediately; if the consumer
// side of owned storage is already gone, the value is dropped and the
// operation never completes.
//
// Multiple yields may be issued before awaiting any of them, in which case
// the interchange buffers them in order.
func (c *Context[T, O]) Yield(v T) *Pending[T, O] {
	p := &Pending[T, O]{ctx: c, reply: new(answer[O])}
	if c.mode.alive() {
		c.mode.interchange().push(v, p.reply)
	}
	return p
}

// Await suspends the producer until the reply for this yield arrives. The
// consumer's reply is observed on the step following its write, never
// sooner. If the generator has been closed, Await unwinds the producer
// instead of suspending forever.
func (p *Pending[T, O]) Await() O {
	for {
		if p.reply.ready {
			p.done = true
			return p.reply.value
		}
		if p.ctx.stop {
			runtime.Goexit()
		}
		p.ctx.park()
	}
}

// Discard abandons the operation, removing its entry from the interchange.
// The removal is skipped if the value was already delivered and answered, so
// a completed exchange is never corrupted. Discard is idempotent and never
// blocks.
func (p *Pending[T, O]) Discard() {
	if p.done {
		return
	}
	p.done = true
	if p.reply.ready {
		return
	}
	if !p.ctx.mode.alive() {
		return
	}
	p.ctx.mode.interchange().remove(p.reply)
}
