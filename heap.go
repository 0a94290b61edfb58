package hufftext

import (
	"container/heap"
)

// Weighted is implemented by the entries of a MinHeap.
type Weighted interface {
	Weight() uint64
}

// MinHeap is a binary min-heap of Weighted entries.
//
// Entries are only swapped when one weight is strictly less than the other,
// so the relative order of equal weights depends on nothing but the sequence
// of Insert and ExtractMin calls.  The zero value is an empty heap.
//
type MinHeap[T Weighted] struct {
	list weightedList[T]
}

// Len returns the number of entries in the heap.
func (h *MinHeap[T]) Len() int {
	return h.list.Len()
}

// Insert adds x to the heap.
func (h *MinHeap[T]) Insert(x T) {
	heap.Push(&h.list, x)
}

// ExtractMin removes and returns the entry with the smallest weight.  If the
// heap is empty, ok is false.
func (h *MinHeap[T]) ExtractMin() (x T, ok bool) {
	if h.list.Len() == 0 {
		return x, false
	}
	return heap.Pop(&h.list).(T), true
}

// type weightedList {{{

// weightedList is stored in the usual 0-based layout: the parent of i is
// (i-1)/2 and its children are 2i+1 and 2i+2.
type weightedList[T Weighted] []T

func (list weightedList[T]) Len() int {
	return len(list)
}

func (list weightedList[T]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list weightedList[T]) Less(i, j int) bool {
	return list[i].Weight() < list[j].Weight()
}

func (list *weightedList[T]) Push(x interface{}) {
	*list = append(*list, x.(T))
}

func (list *weightedList[T]) Pop() interface{} {
	old := *list
	last := uint(len(old)) - 1
	x := old[last]
	var zero T
	old[last] = zero
	*list = old[:last]
	return x
}

var _ heap.Interface = (*weightedList[*Node])(nil)

// }}}
