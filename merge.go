package iheap

// Source yields successive items of one sorted input stream and
// reports ok=false once drained.
type Source[T any] func() (item T, ok bool)

// SliceSource adapts a sorted slice into a Source.
func SliceSource[T any](items []T) Source[T] {
	i := 0
	return func() (x T, ok bool) {
		if i >= len(items) {
			return x, false
		}
		x = items[i]
		i++
		return x, true
	}
}

// feed is one input being merged: the cursor plus its current item.
type feed[T any] struct {
	pull Source[T]
	item T
	slot int
}

func (f *feed[T]) SetHeapIndex(i int) {
	f.slot = i
}

// MergeTo k-way merges pre-sorted sources into emit, smallest item
// first under less. An input that violates its sort order comes out in
// heap order, not sorted; keeping inputs sorted is the caller's
// contract, like everywhere else in the package.
func MergeTo[T any](emit func(T) error, less func(a, b T) bool, sources ...Source[T]) error {
	h := make([]*feed[T], 0, len(sources))
	// the root must hold the smallest item, so the heap ordering is
	// the inverse of less
	hless := func(a, b *feed[T]) bool { return less(b.item, a.item) }
	for _, src := range sources {
		item, ok := src()
		if !ok {
			continue
		}
		h = append(h, &feed[T]{pull: src, item: item})
		Push(h, hless)
	}
	for len(h) > 0 {
		f := h[0]
		if err := emit(f.item); err != nil {
			return err
		}
		if item, ok := f.pull(); ok {
			f.item = item
			Down(h, 0, hless)
		} else {
			Pop(h, hless)
			clear(h[len(h)-1:])
			h = h[:len(h)-1]
		}
	}
	return nil
}

// Merge collects the MergeTo output into a slice.
func Merge[T any](less func(a, b T) bool, sources ...Source[T]) []T {
	var out []T
	_ = MergeTo(func(x T) error {
		out = append(out, x)
		return nil
	}, less, sources...)
	return out
}
