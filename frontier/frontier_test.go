package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesearch/frontier"
)

// drain pops every item from f in order.
func drain[T any](t *testing.T, f frontier.Frontier[T]) []T {
	t.Helper()
	var out []T
	for !f.Empty() {
		v, err := f.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack[string]()
	assert.True(t, s.Empty())
	s.Push("A")
	s.Push("B")
	s.Push("C")
	assert.Equal(t, 3, s.Len())

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "C", top)
	assert.Equal(t, 3, s.Len(), "Peek must not remove")

	assert.Equal(t, []string{"C", "B", "A"}, drain[string](t, s))
	assert.True(t, s.Empty())
}

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue[int]()
	for i := 1; i <= 4; i++ {
		q.Push(i)
	}
	first, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	// interleave a push after a pop
	q.Push(5)
	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, head)
	assert.Equal(t, []int{2, 3, 4, 5}, drain[int](t, q))
}

func TestPriorityQueue_MinOrder(t *testing.T) {
	pq := frontier.NewPriorityQueue(frontier.ByKey(func(v float64) float64 { return v }))
	r := rand.New(rand.NewSource(7))
	want := make([]float64, 0, 50)
	for i := 0; i < 50; i++ {
		v := r.Float64() * 100
		want = append(want, v)
		pq.Push(v)
	}
	sort.Float64s(want)

	smallest, err := pq.Peek()
	require.NoError(t, err)
	assert.Equal(t, want[0], smallest)
	assert.Equal(t, want, drain[float64](t, pq))
}

func TestPriorityQueue_CustomLess(t *testing.T) {
	type item struct {
		name    string
		cost, h float64
	}
	pq := frontier.NewPriorityQueue[item](func(a, b item) bool { return a.cost+a.h < b.cost+b.h })
	pq.Push(item{"far", 1, 9})
	pq.Push(item{"near", 2, 1})
	pq.Push(item{"mid", 3, 3})

	got := drain[item](t, pq)
	names := make([]string, len(got))
	for i, it := range got {
		names[i] = it.name
	}
	assert.Equal(t, []string{"near", "mid", "far"}, names)
}

func TestPriorityQueue_NilLessPanics(t *testing.T) {
	assert.Panics(t, func() { frontier.NewPriorityQueue[int](nil) })
}

// TestUnderflow verifies every container reports ErrEmpty instead of panicking.
func TestUnderflow(t *testing.T) {
	containers := map[string]frontier.Frontier[int]{
		"stack":    frontier.NewStack[int](),
		"queue":    frontier.NewQueue[int](),
		"priority": frontier.NewPriorityQueue(frontier.ByKey(func(v int) int { return v })),
	}
	for name, f := range containers {
		t.Run(name, func(t *testing.T) {
			_, err := f.Pop()
			assert.ErrorIs(t, err, frontier.ErrEmpty)
			_, err = f.Peek()
			assert.ErrorIs(t, err, frontier.ErrEmpty)

			f.Push(1)
			v, err := f.Pop()
			require.NoError(t, err)
			assert.Equal(t, 1, v)
			_, err = f.Pop()
			assert.ErrorIs(t, err, frontier.ErrEmpty)
		})
	}
}
