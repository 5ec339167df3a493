package array

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrOutOfRange 表示下标不在 [0, Size()) 内
var ErrOutOfRange = errors.New("index out of range")

type Consumer[T any] func(int, T) bool

// DynamicArray 是可变长的顺序容器，零值可直接使用
type DynamicArray[T any] struct {
	data []T
}

func NewDynamicArray[T any](l []T) *DynamicArray[T] {
	res := &DynamicArray[T]{data: make([]T, 0, len(l))}
	for _, val := range l {
		res.Add(val)
	}
	return res
}

func (a *DynamicArray[T]) Size() int {
	if a == nil {
		panic("DynamicArray is nil")
	}
	return len(a.data)
}

func (a *DynamicArray[T]) Add(val T) {
	if a == nil {
		panic("DynamicArray is nil")
	}
	a.data = append(a.data, val)
}

func (a *DynamicArray[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return a.data[index], nil
}

func (a *DynamicArray[T]) Set(index int, val T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.data[index] = val
	return nil
}

// Pop 移除并返回最后一个元素
func (a *DynamicArray[T]) Pop() (T, error) {
	var zero T
	n := a.Size()
	if n == 0 {
		return zero, errors.Wrap(ErrOutOfRange, "pop from empty array")
	}
	val := a.data[n-1]
	a.data[n-1] = zero
	a.data = a.data[:n-1]
	return val, nil
}

func (a *DynamicArray[T]) Swap(i, j int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if err := a.checkIndex(j); err != nil {
		return err
	}
	a.data[i], a.data[j] = a.data[j], a.data[i]
	return nil
}

func (a *DynamicArray[T]) ForEach(c Consumer[T]) {
	if a == nil {
		panic("DynamicArray is nil")
	}
	for i, val := range a.data {
		if !c(i, val) {
			break
		}
	}
}

// Slice 返回底层数据的拷贝
func (a *DynamicArray[T]) Slice() []T {
	res := make([]T, a.Size())
	copy(res, a.data)
	return res
}

func (a *DynamicArray[T]) String() string {
	parts := make([]string, a.Size())
	for i, val := range a.data {
		parts[i] = fmt.Sprint(val)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *DynamicArray[T]) checkIndex(index int) error {
	if n := a.Size(); index < 0 || index >= n {
		return errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, n)
	}
	return nil
}
