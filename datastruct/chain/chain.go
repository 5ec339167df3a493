package chain

import (
	"fmt"
	"iter"
	"strings"
)

type Node[V any] struct {
	Key   string
	Value V
	next  *Node[V]
}

func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Chain 是单向链表，同一条链中 key 唯一由调用方保证
type Chain[V any] struct {
	head *Node[V]
	size int
}

func NewChain[V any]() *Chain[V] {
	return &Chain[V]{}
}

func (c *Chain[V]) Size() int {
	if c == nil {
		panic("Chain is nil")
	}
	return c.size
}

// Insert 在链表头部插入新节点
func (c *Chain[V]) Insert(key string, val V) {
	if c == nil {
		panic("Chain is nil")
	}
	c.head = &Node[V]{Key: key, Value: val, next: c.head}
	c.size++
}

// Remove 删除第一个 key 匹配的节点
func (c *Chain[V]) Remove(key string) (found bool) {
	if c == nil {
		panic("Chain is nil")
	}
	var prev *Node[V]
	for n := c.head; n != nil; prev, n = n, n.next {
		if n.Key != key {
			continue
		}
		if prev == nil {
			c.head = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		c.size--
		return true
	}
	return false
}

func (c *Chain[V]) Contains(key string) *Node[V] {
	if c == nil {
		panic("Chain is nil")
	}
	for n := c.head; n != nil; n = n.next {
		if n.Key == key {
			return n
		}
	}
	return nil
}

func (c *Chain[V]) ForEach(f func(*Node[V]) bool) {
	if c == nil {
		panic("Chain is nil")
	}
	for n := c.head; n != nil; {
		next := n.next
		if !f(n) {
			break
		}
		n = next
	}
}

// Nodes 返回从头到尾的遍历序列，可以重复遍历
func (c *Chain[V]) Nodes() iter.Seq[*Node[V]] {
	return func(yield func(*Node[V]) bool) {
		c.ForEach(yield)
	}
}

func (c *Chain[V]) Clear() {
	if c == nil {
		panic("Chain is nil")
	}
	c.head, c.size = nil, 0
}

func (c *Chain[V]) String() string {
	parts := make([]string, 0, c.Size())
	for n := c.head; n != nil; n = n.next {
		parts = append(parts, fmt.Sprintf("[%s: %v]", n.Key, n.Value))
	}
	return "SLL " + strings.Join(parts, " -> ")
}
