package generator

import "runtime"

// Context is the capability handed to a producer function. It exposes the
// yield operation and carries the handoff machinery that lets the consumer
// drive the producer one step at a time.
//
// A Context is created exactly once per bound producer and must only be used
// from inside that producer.
type Context[T, O any] struct {
	mode storage[T, O]
	next chan struct{}
	stop bool
	done bool
}

func newContext[T, O any](mode storage[T, O]) *Context[T, O] {
	return &Context[T, O]{mode: mode, next: make(chan struct{})}
}

// run starts the producer goroutine. The goroutine stays parked until the
// first step, and signals completion by closing the handoff channel when the
// producer returns or unwinds.
func (c *Context[T, O]) run(f func(*Context[T, O])) {
	go func() {
		defer func() {
			c.done = true
			close(c.next)
		}()

		<-c.next

		if !c.stop {
			f(c)
		}
	}()
}

// step resumes the producer until it parks again or completes, and reports
// whether it can still make progress. Called only from the consumer side.
func (c *Context[T, O]) step() bool {
	if c.done {
		return false
	}
	c.next <- struct{}{}
	_, ok := <-c.next
	return ok
}

// park hands control back to the consumer and blocks until the next step.
// Called only from the producer goroutine. If the consumer stopped the
// generator in the meantime, the producer unwinds its call stack, running
// each defer statement in the inverse order that it was declared.
func (c *Context[T, O]) park() {
	c.next <- struct{}{}
	<-c.next
	if c.stop {
		runtime.Goexit()
	}
}
