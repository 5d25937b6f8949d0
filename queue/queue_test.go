package queue_test

import (
	"testing"

	"github.com/lanrat/sortlab/queue"
)

func intLessFunc(a, b int) bool {
	return a < b
}

func TestInit0(t *testing.T) {
	q := queue.NewPriorityQueue(intLessFunc)
	for i := 20; i > 0; i-- {
		q.Push(0) // all elements are the same
	}

	l := q.Len()
	if l != 20 {
		t.Fatalf("queue len is %d, expected %d", l, 20)
	}

	for i := 1; q.Len() > 0; i++ {
		x := q.Peek()
		y := q.Pop()
		if x != y {
			t.Fatalf("q.Peek() and q.Pop() returned different values %d %d", x, y)
		}
		if x != 0 {
			t.Errorf("%d.th pop got %d; want %d", i, x, 0)
		}
	}
}

func Test(t *testing.T) {
	q := queue.NewPriorityQueue(intLessFunc)
	l := q.Len()
	if l != 0 {
		t.Fatalf("queue len is %d, expected %d", l, 0)
	}

	for i := 20; i > 10; i-- {
		q.Push(i)
	}

	l = q.Len()
	if l != 10 {
		t.Fatalf("queue len is %d, expected %d", l, 10)
	}

	for i := 10; i > 0; i-- {
		q.Push(i)
	}

	l = q.Len()
	if l != 20 {
		t.Fatalf("queue len is %d, expected %d", l, 20)
	}

	for i := 1; q.Len() > 0; i++ {
		x := q.Peek()
		y := q.Pop()
		if x != y {
			t.Fatalf("q.Peek() and q.Pop() returned different values %d %d", x, y)
		}
		if i < 20 {
			q.Push(20 + i)
		}
		if x != i {
			t.Errorf("%d.th pop got %d; want %d", i, x, i)
		}
	}
}

type ranked struct {
	name  string
	score int
}

func TestTiesPopInInsertionOrder(t *testing.T) {
	q := queue.NewPriorityQueue(func(a, b ranked) bool { return a.score < b.score })
	q.Push(ranked{"c", 2})
	q.Push(ranked{"a", 1})
	q.Push(ranked{"b", 1})
	q.Push(ranked{"d", 1})

	got := q.Drain()
	want := []string{"a", "b", "d", "c"}
	if len(got) != len(want) {
		t.Fatalf("drained %d items, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i].name != want[i] {
			t.Errorf("position %d got %q; want %q", i, got[i].name, want[i])
		}
	}
	if q.Len() != 0 {
		t.Fatalf("queue len is %d after Drain, expected 0", q.Len())
	}
}

func TestPeekUpdate(t *testing.T) {
	q := queue.NewPriorityQueue(func(a, b *ranked) bool { return a.score < b.score })
	first := &ranked{"first", 1}
	q.Push(first)
	q.Push(&ranked{"second", 5})

	q.Peek().score = 10
	q.PeekUpdate()

	if got := q.Pop().name; got != "second" {
		t.Fatalf("Pop after PeekUpdate got %q; want %q", got, "second")
	}
}
