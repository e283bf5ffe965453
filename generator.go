package generator

// Storage is caller-owned storage for a borrowed binding: the interchange of
// the bound producer lives inside it. The Storage must outlive the Generator
// returned by Bind, and can be reused once that generator is done.
//
// The zero value is ready to use.
type Storage[T, O any] struct {
	v values[T, O]
}

// Generator drives a bound producer one step per pull and surfaces each
// yielded value as an Exchange. The type parameter T is the type of yielded
// values, O the type of the replies sent back through exchanges.
type Generator[T, O any] struct {
	ctx    *Context[T, O]
	owner  *block[T, O] // strong owner of the heap block; nil when borrowed
	done   bool
	closed bool
}

// Bind binds producer f to caller-owned storage. The returned generator must
// not outlive s.
func Bind[T, O any](s *Storage[T, O], f func(*Context[T, O])) *Generator[T, O] {
	ctx := newContext[T, O](stackMode[T, O]{v: &s.v})
	ctx.run(f)
	return &Generator[T, O]{ctx: ctx}
}

// BindParam is Bind for a producer that takes a parameter.
func BindParam[T, O, X any](s *Storage[T, O], f func(X, *Context[T, O]), x X) *Generator[T, O] {
	return Bind(s, func(c *Context[T, O]) { f(x, c) })
}

// New binds producer f to owned storage on a shared heap block, so the
// generator escapes freely and can be returned from the creating function.
// The generator is the block's sole strong owner: once it is closed, late
// yields observe the teardown and quietly drop their values.
//
// Callers should drain or Close the generator so the producer goroutine can
// unwind.
func New[T, O any](f func(*Context[T, O])) *Generator[T, O] {
	b := &block[T, O]{strong: 1}
	ctx := newContext[T, O](heapMode[T, O]{b: b})
	ctx.run(f)
	return &Generator[T, O]{ctx: ctx, owner: b}
}

// NewParam is New for a producer that takes a parameter.
func NewParam[T, O, X any](f func(X, *Context[T, O]), x X) *Generator[T, O] {
	return New(func(c *Context[T, O]) { f(x, c) })
}

// Next advances the generator by at most one producer step and returns the
// next exchange if one is pending. Buffered values are drained before the
// producer is resumed.
//
// A false return does not imply completion: a producer that suspended
// without yielding produces a gap, and more values may follow on a later
// pull. Use Done to distinguish.
func (g *Generator[T, O]) Next() (*Exchange[T, O], bool) {
	if g.closed {
		return nil, false
	}
	if v, r, ok := g.ctx.mode.interchange().next(); ok {
		return g.exchange(v, r), true
	}
	if g.done {
		return nil, false
	}
	if !g.ctx.step() {
		g.done = true
	}
	if v, r, ok := g.ctx.mode.interchange().next(); ok {
		return g.exchange(v, r), true
	}
	return nil, false
}

func (g *Generator[T, O]) exchange(v T, r *answer[O]) *Exchange[T, O] {
	return &Exchange[T, O]{
		value: v,
		back:  Reply[O]{slot: g.ctx.mode, data: r},
	}
}

// SizeHint reports how many yielded values are buffered and undelivered, and
// whether that count is exact because the producer has completed.
func (g *Generator[T, O]) SizeHint() (n int, exact bool) {
	return g.ctx.mode.interchange().len(), g.done
}

// Done reports whether the producer completed, either on its own or because
// the generator was closed.
func (g *Generator[T, O]) Done() bool { return g.done }

// Close tears down the consumer side: it releases strong ownership of owned
// storage, resumes the producer once so it unwinds its deferred statements,
// and discards any values still buffered in the interchange, so a Storage
// can be rebound cleanly afterwards. Replies provided after Close find no
// matching entry and are dropped. Close is idempotent, never blocks, and is
// safe to call mid-iteration.
func (g *Generator[T, O]) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.owner != nil {
		g.owner.release()
	}
	if !g.done {
		g.ctx.stop = true
		g.ctx.step()
		g.done = true
	}
	*g.ctx.mode.interchange() = values[T, O]{}
}

// Run pulls g to completion, deriving the reply to every exchange from f.
// The generator is closed on the way out, so a panic in f does not leave the
// producer suspended.
func Run[T, O any](g *Generator[T, O], f func(T) O) {
	defer g.Close()

	for {
		x, ok := g.Next()
		if !ok {
			return
		}
		x.Handle(f)
	}
}
