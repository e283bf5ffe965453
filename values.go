package generator

// answer is the reply cell: the single location a specific yield operation
// watches for its round-trip answer. Its address identifies the exchange
// entitled to write it.
type answer[O any] struct {
	value O
	ready bool
}

// entry pairs an optionally still-present yielded value with the reply cell
// of the operation that yielded it. Once the value has been delivered to the
// consumer the entry stays behind, value-less, until the exchange is answered
// or dropped.
type entry[T, O any] struct {
	value T
	full  bool
	reply *answer[O]
}

const (
	stateEmpty uint8 = iota
	stateSingle
	stateTaken
	stateQueued
)

// values is the interchange shared between a bound producer and its consumer:
// the pending (value, reply cell) entries in yield order. It is only ever
// touched from the single control flow stepping the producer or from the
// consumer call stack, never concurrently, so it involves no locking.
type values[T, O any] struct {
	state uint8
	head  entry[T, O]
	queue []entry[T, O]
}

// next removes and returns the oldest entry that still holds a value. The
// entry's reply cell stays registered until the exchange is answered or
// dropped, so replies can be matched against it.
func (s *values[T, O]) next() (T, *answer[O], bool) {
	switch s.state {
	case stateSingle:
		v, r := s.head.value, s.head.reply
		s.head = entry[T, O]{reply: r}
		s.state = stateTaken
		return v, r, true
	case stateQueued:
		for i := range s.queue {
			if e := &s.queue[i]; e.full {
				var zero T
				v := e.value
				e.value, e.full = zero, false
				return v, e.reply, true
			}
		}
	}
	var zero T
	return zero, nil, false
}

// push records a freshly yielded value, upgrading the interchange shape as
// needed: empty to single, single or taken to queued. The queued form
// persists once entered, and the displaced entry keeps its place in line.
func (s *values[T, O]) push(v T, r *answer[O]) {
	switch s.state {
	case stateEmpty:
		s.head = entry[T, O]{value: v, full: true, reply: r}
		s.state = stateSingle
	case stateSingle, stateTaken:
		s.queue = append(make([]entry[T, O], 0, 2), s.head)
		s.queue = append(s.queue, entry[T, O]{value: v, full: true, reply: r})
		s.head = entry[T, O]{}
		s.state = stateQueued
	case stateQueued:
		s.queue = append(s.queue, entry[T, O]{value: v, full: true, reply: r})
	}
}

// remove deletes the entry whose reply cell is r, if any. Matching is by cell
// identity, never by position. It reports whether a match existed and whether
// an undelivered value was dropped with it.
func (s *values[T, O]) remove(r *answer[O]) (discarded, found bool) {
	switch s.state {
	case stateSingle, stateTaken:
		if s.head.reply != r {
			return false, false
		}
		discarded = s.head.full
		s.head = entry[T, O]{}
		s.state = stateEmpty
		return discarded, true
	case stateQueued:
		for i := range s.queue {
			if s.queue[i].reply == r {
				discarded = s.queue[i].full
				s.queue = append(s.queue[:i], s.queue[i+1:]...)
				return discarded, true
			}
		}
	}
	return false, false
}

// len counts the buffered values not yet delivered to the consumer.
func (s *values[T, O]) len() int {
	switch s.state {
	case stateSingle:
		return 1
	case stateQueued:
		n := 0
		for i := range s.queue {
			if s.queue[i].full {
				n++
			}
		}
		return n
	}
	return 0
}
