package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

func TestArrayQueue_FIFO(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](initCap)
		var want []int
		rg := rand.New(rand.NewSource(int64(initCap)))
		for i := 0; i < 1000; i++ {
			if rg.Intn(3) == 0 && len(want) > 0 {
				v, err := q.Pop()
				if err != nil {
					t.Fatalf("cap %d: unexpected error %v", initCap, err)
				}
				if v != want[0] {
					t.Fatalf("cap %d: popped %d, want %d", initCap, v, want[0])
				}
				want = want[1:]
			} else {
				q.Push(i)
				want = append(want, i)
			}
			if q.Size() != uint(len(want)) {
				t.Fatalf("cap %d: size is %d, want %d", initCap, q.Size(), len(want))
			}
			if len(want) > 0 && q.Peek() != want[0] {
				t.Fatalf("cap %d: peek is %d, want %d", initCap, q.Peek(), want[0])
			}
			if i%97 == 0 {
				q.Shrink()
			}
		}
		for _, w := range want {
			if v, _ := q.Pop(); v != w {
				t.Fatalf("cap %d: drained %d, want %d", initCap, v, w)
			}
		}
		if !q.Empty() {
			t.Errorf("cap %d: queue not empty after drain", initCap)
		}
	}
}

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[string](4)
	if _, err := q.Pop(); err == nil {
		t.Fatal("pop on empty queue succeeded")
	} else {
		var e *EmptyQueueError
		if !errors.As(err, &e) {
			t.Errorf("error is %T, want *EmptyQueueError", err)
		}
	}
	if q.Peek() != "" {
		t.Errorf("peek on empty queue is %q", q.Peek())
	}
	q.Push("a")
	q.Push("b")
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Errorf("queue not empty after Clear")
	}
	q.Push("c")
	if v, _ := q.Pop(); v != "c" {
		t.Errorf("popped %q after Clear, want %q", v, "c")
	}
}
