package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf[V any](c *Chain[V]) []string {
	var res []string
	for n := range c.Nodes() {
		res = append(res, n.Key)
	}
	return res
}

func TestInsertContains(t *testing.T) {
	c := NewChain[int]()
	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Insert("c", 3)
	require.Equal(t, 3, c.Size())

	n := c.Contains("b")
	require.NotNil(t, n)
	assert.Equal(t, 2, n.Value)
	assert.Nil(t, c.Contains("z"))
	assert.Equal(t, []string{"c", "b", "a"}, keysOf(c))
	assert.Equal(t, "SLL [c: 3] -> [b: 2] -> [a: 1]", c.String())
}

func TestRemove(t *testing.T) {
	c := NewChain[string]()
	for _, k := range []string{"a", "b", "c", "d"} {
		c.Insert(k, k+k)
	}
	assert.True(t, c.Remove("d")) // head
	assert.True(t, c.Remove("a")) // tail
	assert.True(t, c.Remove("b")) // middle
	assert.False(t, c.Remove("b"))
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, []string{"c"}, keysOf(c))

	assert.True(t, c.Remove("c"))
	assert.Equal(t, 0, c.Size())
	assert.Empty(t, keysOf(c))
	assert.Equal(t, "SLL ", c.String())
}

func TestNodesRestartable(t *testing.T) {
	c := NewChain[int]()
	c.Insert("x", 1)
	c.Insert("y", 2)
	assert.Equal(t, keysOf(c), keysOf(c))

	count := 0
	for range c.Nodes() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestForEachRemoveWhileIterating(t *testing.T) {
	c := NewChain[int]()
	for i, k := range []string{"a", "b", "c"} {
		c.Insert(k, i)
	}
	c.ForEach(func(n *Node[int]) bool {
		c.Remove(n.Key)
		return true
	})
	assert.Equal(t, 0, c.Size())
}

func TestClear(t *testing.T) {
	c := NewChain[int]()
	c.Insert("a", 1)
	c.Clear()
	assert.Equal(t, 0, c.Size())
	assert.Nil(t, c.Contains("a"))
}
