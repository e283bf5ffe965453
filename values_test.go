package generator

import "testing"

func TestValuesSingle(t *testing.T) {
	var s values[int, string]
	if _, _, ok := s.next(); ok {
		t.Fatal("empty interchange returned an entry")
	}

	r := new(answer[string])
	s.push(42, r)
	if n := s.len(); n != 1 {
		t.Errorf("wrong len: got %d, expect 1", n)
	}

	v, got, ok := s.next()
	if !ok || v != 42 || got != r {
		t.Fatalf("wrong entry: got (%d, %p, %t), expect (42, %p, true)", v, got, ok, r)
	}
	if n := s.len(); n != 0 {
		t.Errorf("taken entry still counted: got len %d", n)
	}
	if _, _, ok := s.next(); ok {
		t.Error("taken entry delivered twice")
	}

	// the reply cell stays registered until removed
	if _, found := s.remove(r); !found {
		t.Error("taken entry not matched by its reply cell")
	}
	if _, found := s.remove(r); found {
		t.Error("entry matched twice")
	}
}

func TestValuesQueueUpgrade(t *testing.T) {
	var s values[int, struct{}]
	r1 := new(answer[struct{}])
	r2 := new(answer[struct{}])
	r3 := new(answer[struct{}])

	s.push(1, r1)
	s.push(2, r2)
	s.push(3, r3)
	if n := s.len(); n != 3 {
		t.Fatalf("wrong len: got %d, expect 3", n)
	}

	for i, want := range []int{1, 2, 3} {
		v, _, ok := s.next()
		if !ok || v != want {
			t.Fatalf("entry %d: got (%d, %t), expect (%d, true)", i, v, ok, want)
		}
	}
	if _, _, ok := s.next(); ok {
		t.Error("drained interchange returned an entry")
	}
}

func TestValuesUpgradePreservesTaken(t *testing.T) {
	// a taken entry displaced into the queue must keep its reply cell
	// registered without regaining a value
	var s values[int, struct{}]
	r1 := new(answer[struct{}])
	r2 := new(answer[struct{}])

	s.push(1, r1)
	if _, _, ok := s.next(); !ok {
		t.Fatal("expected an entry")
	}
	s.push(2, r2)

	v, got, ok := s.next()
	if !ok || v != 2 || got != r2 {
		t.Fatalf("wrong entry after upgrade: got (%d, %p, %t)", v, got, ok)
	}
	if _, found := s.remove(r1); !found {
		t.Error("displaced taken entry lost its reply cell")
	}
}

func TestValuesRemoveByIdentity(t *testing.T) {
	var s values[int, struct{}]
	r1 := new(answer[struct{}])
	r2 := new(answer[struct{}])
	r3 := new(answer[struct{}])

	s.push(1, r1)
	s.push(2, r2)
	s.push(3, r3)

	discarded, found := s.remove(r2)
	if !found || !discarded {
		t.Fatalf("wrong removal: got (discarded=%t, found=%t), expect (true, true)", discarded, found)
	}
	if n := s.len(); n != 2 {
		t.Errorf("wrong len after removal: got %d, expect 2", n)
	}

	if _, found := s.remove(new(answer[struct{}])); found {
		t.Error("foreign reply cell matched an entry")
	}

	for _, want := range []int{1, 3} {
		v, _, ok := s.next()
		if !ok || v != want {
			t.Fatalf("wrong order after removal: got (%d, %t), expect (%d, true)", v, ok, want)
		}
	}
}
