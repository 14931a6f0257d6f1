package linq

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/golinq/errors"
)

func TestFrom(t *testing.T) {
	items := []int{1, 2, 3}
	assertSlice(t, From(&items).ToSlice(), []int{1, 2, 3})
}

func TestFrom_NilSourcePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"From", func() { From[int](nil) }},
		{"FromMutable", func() { FromMutable[int](nil) }},
		{"FromSeq", func() { FromSeq[int](nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectPanicCode(t, errors.ErrCodeNilSource, tt.fn)
		})
	}
}

func TestFrom_SeesAppendsBetweenTraversals(t *testing.T) {
	items := []int{1, 2}
	r := From(&items).Where(func(n int) bool { return n > 0 })
	assertSlice(t, r.ToSlice(), []int{1, 2})

	items = append(items, 3)
	assertSlice(t, r.ToSlice(), []int{1, 2, 3})
}

func TestFromMutable_EditsLandInSource(t *testing.T) {
	items := []int{1, 2, 3, 4}
	evens := FromMutable(&items).Where(func(p *int) bool { return *p%2 == 0 })
	for p := range evens.Values() {
		*p *= 10
	}
	assertSlice(t, items, []int{1, 20, 3, 40})
}

func TestFromCopy_IsSnapshot(t *testing.T) {
	items := []int{1, 2, 3}
	r := FromCopy(items)
	items[0] = 100
	items = append(items, 4)
	assertSlice(t, r.ToSlice(), []int{1, 2, 3})
}

func TestOf(t *testing.T) {
	assertSlice(t, Of("a", "b").ToSlice(), []string{"a", "b"})
	assertSlice(t, Of[int]().ToSlice(), []int{})
}

func TestFromSeq_StartsOncePerTraversal(t *testing.T) {
	starts := 0
	seq := func(yield func(int) bool) {
		starts++
		for i := 1; i <= 5; i++ {
			if !yield(i) {
				return
			}
		}
	}
	r := FromSeq(seq).Where(func(n int) bool { return n != 3 })

	assertSlice(t, r.ToSlice(), []int{1, 2, 4, 5})
	if starts != 1 {
		t.Errorf("starts = %d, want 1", starts)
	}
	assertSlice(t, r.ToSlice(), []int{1, 2, 4, 5})
	if starts != 2 {
		t.Errorf("starts = %d, want 2", starts)
	}
}

func TestFromSeq_EarlyStopReleasesIterator(t *testing.T) {
	stopped := false
	seq := func(yield func(int) bool) {
		defer func() { stopped = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	got, ok := FromSeq(seq).FirstWhere(func(n int) bool { return n == 7 })
	if !ok || got != 7 {
		t.Fatalf("FirstWhere = %d, %v", got, ok)
	}
	if !stopped {
		t.Error("iterator was not stopped after an early exit")
	}
}

func TestFromMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	got := ToUnorderedMap(FromMap(m))
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	var empty map[string]int
	if n := FromMap(empty).Count(); n != 0 {
		t.Errorf("Count of nil map = %d", n)
	}
}

func TestEmpty(t *testing.T) {
	if _, ok := Empty[string]().First(); ok {
		t.Error("Empty should have no first element")
	}
}

func TestPair(t *testing.T) {
	p := MakePair("k", 1)
	if p.Key != "k" || p.Value != 1 {
		t.Errorf("MakePair = %+v", p)
	}
}
