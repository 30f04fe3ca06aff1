// Package iheap implements binary heap maintenance over a caller-owned
// slice, augmented so that every element is told its slot whenever the
// heap moves it. Keeping the slot on the element is what makes O(log n)
// removal, or priority re-evaluation, of an arbitrary element possible,
// not only of the root.
//
// The root holds the highest-priority element: less(a, b) reports that
// a is of strictly lower priority than b. The package never grows or
// shrinks the slice; the caller appends before Push and drops the last
// slot after Pop or PopAt.
package iheap

// Indexed is the one capability the heap requires of an element:
// remember the slot it was last written to. The recorded slot is what
// the element's owner passes back to PopAt, Up or Down later.
type Indexed interface {
	SetHeapIndex(i int)
}

// Less reports that a is of strictly lower priority than b. Its result
// for a fixed pair must not change between calls unless the caller
// re-sifts the changed element.
type Less[T any] func(a, b T) bool

// upHeap moves the hole at k toward the root while the parent is of
// lower priority than v, then drops v into the hole. top bounds the
// climb so a sift can be confined to a subtree.
func upHeap[T Indexed](h []T, k, top int, v T, less Less[T]) {
	parent := (k - 1) / 2
	for k > top && less(h[parent], v) {
		h[k] = h[parent]
		h[k].SetHeapIndex(k)
		k = parent
		parent = (k - 1) / 2
	}
	h[k] = v
	h[k].SetHeapIndex(k)
}

// downHeapFast moves the hole at k toward the leaves, pulling the best
// child up, and stops as soon as v dominates both children of the
// hole. Reports whether the hole moved below k.
func downHeapFast[T Indexed](h []T, k, n int, v T, less Less[T]) bool {
	i := k
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && less(h[j1], h[j2]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !less(v, h[j]) {
			break
		}
		h[i] = h[j]
		h[i].SetHeapIndex(i)
		i = j
	}
	h[i] = v
	h[i].SetHeapIndex(i)
	return i > k
}

// downHeapStable walks the hole down the best-child path all the way
// to the bottom, then sifts v back up from there, bounded by top.
// Skipping the early exit costs about twice the comparisons of the
// fast variant, but v never comes to rest above an equal-priority
// element.
func downHeapStable[T Indexed](h []T, top, k, n int, v T, less Less[T]) {
	second := k
	for second < (n-1)/2 {
		second = 2 * (second + 1)
		if less(h[second], h[second-1]) {
			second-- // left child wins
		}
		h[k] = h[second]
		h[k].SetHeapIndex(k)
		k = second
	}
	// when n is even the walk stops on the last internal node, which
	// has a lone left child at n-1
	if n&1 == 0 && second == (n-2)/2 {
		second = 2 * (second + 1)
		h[k] = h[second-1]
		h[k].SetHeapIndex(k)
		k = second - 1
	}
	upHeap(h, k, top, v, less)
}

// downHeap runs the configured down-sift variant. It reports whether v
// is known to rest at a valid slot: the fast variant may leave v at k
// still needing a lift when v arrived from an unrelated subtree, while
// the stable variant ends with an up-sift of its own.
func downHeap[T Indexed](h []T, top, k, n int, v T, less Less[T]) bool {
	if preserveStability {
		downHeapStable(h, top, k, n, v, less)
		return true
	}
	return downHeapFast(h, k, n, v, less)
}

// removeAt extracts the element at popPos, parks it at the last slot
// for the caller to collect, and restores heap order over the range
// shrunk by one. Both Pop and PopAt funnel here.
func removeAt[T Indexed](h []T, popPos int, less Less[T]) {
	last := len(h) - 1
	v := h[last]
	h[last] = h[popPos]
	if popPos == last {
		// the element being removed is the excess element itself
		return
	}
	if !downHeap(h, 0, popPos, last, v, less) {
		// v came from the bottom of the tree; at an arbitrary slot it
		// may beat its new parent
		upHeap(h, popPos, 0, v, less)
	}
}

// Push restores heap order after the caller appended a new element at
// h[len(h)-1]. h[:len(h)-1] must already be a valid heap.
func Push[T Indexed](h []T, less Less[T]) {
	if len(h) == 0 {
		return
	}
	upHeap(h, len(h)-1, 0, h[len(h)-1], less)
}

// Pop moves the root to h[len(h)-1] and restores heap order over
// h[:len(h)-1]; the caller then drops the last slot. A range of one
// element or less is left untouched.
func Pop[T Indexed](h []T, less Less[T]) {
	if len(h) > 1 {
		removeAt(h, 0, less)
	}
}

// PopAt removes the element at pos exactly like Pop removes the root.
// pos must be the slot the element was last told via SetHeapIndex; a
// stale slot silently corrupts heap order.
func PopAt[T Indexed](h []T, pos int, less Less[T]) {
	if len(h) > 1 {
		removeAt(h, pos, less)
	}
}

// Up restores heap order after the element at pos had its priority
// raised.
func Up[T Indexed](h []T, pos int, less Less[T]) {
	upHeap(h, pos, 0, h[pos], less)
}

// Down restores heap order after the element at pos had its priority
// lowered.
func Down[T Indexed](h []T, pos int, less Less[T]) {
	downHeap(h, 0, pos, len(h), h[pos], less)
}
