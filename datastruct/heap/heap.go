package heap

import (
	"cmp"

	"github.com/pkg/errors"

	"github.com/salleya/Hash-and-Heap/datastruct/array"
)

var ErrEmptyHeap = errors.New("heap is empty")

// MinHeap 是基于 DynamicArray 的二叉最小堆，非线程安全。
// 每次修改返回后，对任意非根下标 i 都有 heap[i] >= heap[(i-1)/2]
type MinHeap[T cmp.Ordered] struct {
	heap *array.DynamicArray[T]
}

// NewMinHeap 逐个 Add start 中的元素
func NewMinHeap[T cmp.Ordered](start []T) *MinHeap[T] {
	h := &MinHeap[T]{heap: &array.DynamicArray[T]{}}
	for _, x := range start {
		h.Add(x)
	}
	return h
}

func (h *MinHeap[T]) IsEmpty() bool {
	return h.heap.Size() == 0
}

func (h *MinHeap[T]) Size() int {
	return h.heap.Size()
}

// Add 追加到末尾后上浮，O(log n)
func (h *MinHeap[T]) Add(x T) {
	h.heap.Add(x)
	child := h.heap.Size() - 1
	for child > 0 {
		parent := (child - 1) / 2
		if !(h.at(child) < h.at(parent)) {
			return
		}
		h.swap(parent, child)
		child = parent
	}
}

func (h *MinHeap[T]) GetMin() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.at(0), nil
}

// RemoveMin 移除并返回堆顶，O(log n)
func (h *MinHeap[T]) RemoveMin() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrEmptyHeap
	}
	root := h.at(0)
	h.swap(0, h.heap.Size()-1)
	if _, err := h.heap.Pop(); err != nil {
		panic(err)
	}
	if h.heap.Size() > 1 {
		siftDown(h.heap, 0)
	}
	return root, nil
}

// BuildHeap 复制 items，从最后一个非叶子节点 (n-2)/2 开始逐个下沉到根，
// 然后替换原有内容，O(n)
func (h *MinHeap[T]) BuildHeap(items []T) {
	da := array.NewDynamicArray(items)
	for i := (da.Size() - 2) / 2; i >= 0; i-- {
		siftDown(da, i)
	}
	h.heap = da
}

// Slice 按堆内顺序返回元素的拷贝
func (h *MinHeap[T]) Slice() []T {
	return h.heap.Slice()
}

func (h *MinHeap[T]) String() string {
	return "HEAP " + h.heap.String()
}

func (h *MinHeap[T]) at(i int) T {
	return mustGet(h.heap, i)
}

func (h *MinHeap[T]) swap(i, j int) {
	if err := h.heap.Swap(i, j); err != nil {
		panic(err)
	}
}

// siftDown 在 parent 严格大于较小子节点时不断下沉，相等时取左子节点
func siftDown[T cmp.Ordered](da *array.DynamicArray[T], parent int) {
	n := da.Size()
	for {
		left, right := 2*parent+1, 2*parent+2
		if left >= n {
			return
		}
		child := left
		if right < n && mustGet(da, right) < mustGet(da, left) {
			child = right
		}
		if !(mustGet(da, parent) > mustGet(da, child)) {
			return
		}
		if err := da.Swap(parent, child); err != nil {
			panic(err)
		}
		parent = child
	}
}

// 越界只可能来自堆内部的下标计算错误
func mustGet[T any](da *array.DynamicArray[T], i int) T {
	v, err := da.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}
