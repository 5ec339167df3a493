package dict

import (
	"strconv"
	"strings"

	"github.com/salleya/Hash-and-Heap/config"
	"github.com/salleya/Hash-and-Heap/datastruct/array"
	"github.com/salleya/Hash-and-Heap/datastruct/chain"
	"github.com/salleya/Hash-and-Heap/lib/logger"
)

var _ Dict[any] = (*ChainedHashMap[any])(nil)

type LookupMode int

const (
	// HashedBucket 只在 hash(key) % capacity 对应的桶中查找
	HashedBucket LookupMode = iota
	// FullScan 按下标顺序扫描所有桶
	FullScan
)

// ChainedHashMap 使用拉链法解决冲突，只有显式调用 ResizeTable 时才会 rehash。
// 非线程安全
type ChainedHashMap[V any] struct {
	buckets  *array.DynamicArray[*chain.Chain[V]]
	capacity int
	size     int
	hashFunc HashFunc
	mode     LookupMode
}

func NewChainedHashMap[V any](capacity int, f HashFunc, mode LookupMode) *ChainedHashMap[V] {
	if capacity < 0 {
		capacity = 0
	}
	if f == nil {
		f = HashFunction1
	}
	return &ChainedHashMap[V]{
		buckets:  makeBuckets[V](capacity),
		capacity: capacity,
		hashFunc: f,
		mode:     mode,
	}
}

// MakeFromProperties 根据配置创建 map，hash-function 无法识别时使用 HashFunction1
func MakeFromProperties[V any](p *config.DictProperties) *ChainedHashMap[V] {
	if p == nil {
		p = config.Properties
	}
	f, ok := HashFuncByName(p.HashFunction)
	if !ok {
		logger.Warnf("unknown hash-function %q, falling back to hash1", p.HashFunction)
		f = HashFunction1
	}
	mode := HashedBucket
	if p.FullScan {
		mode = FullScan
	}
	return NewChainedHashMap[V](p.Capacity, f, mode)
}

func makeBuckets[V any](capacity int) *array.DynamicArray[*chain.Chain[V]] {
	buckets := &array.DynamicArray[*chain.Chain[V]]{}
	for i := 0; i < capacity; i++ {
		buckets.Add(chain.NewChain[V]())
	}
	return buckets
}

func (m *ChainedHashMap[V]) Size() int {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	return m.size
}

func (m *ChainedHashMap[V]) Capacity() int {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	return m.capacity
}

func (m *ChainedHashMap[V]) Put(key string, value V) {
	bucket := m.bucketOf(key)
	if node := bucket.Contains(key); node != nil {
		node.Value = value
		return
	}
	bucket.Insert(key, value)
	m.size++
}

func (m *ChainedHashMap[V]) PutIfAbsent(key string, value V) (ok bool) {
	bucket := m.bucketOf(key)
	if bucket.Contains(key) != nil {
		return false
	}
	bucket.Insert(key, value)
	m.size++
	return true
}

func (m *ChainedHashMap[V]) PutIfExists(key string, value V) (ok bool) {
	node := m.find(key)
	if node == nil {
		return false
	}
	node.Value = value
	return true
}

func (m *ChainedHashMap[V]) Get(key string) (value V, ok bool) {
	if node := m.find(key); node != nil {
		return node.Value, true
	}
	return
}

func (m *ChainedHashMap[V]) ContainsKey(key string) bool {
	return m.find(key) != nil
}

func (m *ChainedHashMap[V]) Remove(key string) (ok bool) {
	bucket, _ := m.locate(key)
	if bucket == nil || !bucket.Remove(key) {
		return false
	}
	m.size--
	return true
}

// EmptyBuckets 返回链表长度为 0 的桶的数量
func (m *ChainedHashMap[V]) EmptyBuckets() int {
	count := 0
	m.eachBucket(func(_ int, bucket *chain.Chain[V]) bool {
		if bucket.Size() == 0 {
			count++
		}
		return true
	})
	return count
}

// TableLoad 返回 size / capacity，capacity 为 0 时结果为 NaN
func (m *ChainedHashMap[V]) TableLoad() float64 {
	return float64(m.Size()) / float64(m.Capacity())
}

func (m *ChainedHashMap[V]) Clear() {
	m.eachBucket(func(_ int, bucket *chain.Chain[V]) bool {
		bucket.Clear()
		return true
	})
	m.size = 0
}

// ResizeTable 将所有键值对 rehash 到 newCapacity 个桶中。
// 当前容量或 newCapacity 小于 1 时什么也不做
func (m *ChainedHashMap[V]) ResizeTable(newCapacity int) {
	if m.Capacity() < 1 || newCapacity < 1 {
		logger.Warnf("resize rejected: capacity %d -> %d", m.capacity, newCapacity)
		return
	}
	buckets := makeBuckets[V](newCapacity)
	m.ForEach(func(key string, value V) bool {
		index := int(m.hashFunc(key) % uint64(newCapacity))
		mustBucket(buckets, index).Insert(key, value)
		return true
	})
	logger.Debugf("resized: capacity %d -> %d, size %d", m.capacity, newCapacity, m.size)
	m.buckets, m.capacity = buckets, newCapacity
}

// ForEach 按桶下标、链表顺序遍历
func (m *ChainedHashMap[V]) ForEach(p Processor[V]) {
	m.eachBucket(func(_ int, bucket *chain.Chain[V]) bool {
		goOn := true
		bucket.ForEach(func(node *chain.Node[V]) bool {
			goOn = p(node.Key, node.Value)
			return goOn
		})
		return goOn
	})
}

func (m *ChainedHashMap[V]) Keys() []string {
	keys := make([]string, 0, m.Size())
	m.ForEach(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (m *ChainedHashMap[V]) String() string {
	sb := strings.Builder{}
	m.eachBucket(func(i int, bucket *chain.Chain[V]) bool {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(bucket.String())
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

// bucketOf 返回 key 应当所在的桶
func (m *ChainedHashMap[V]) bucketOf(key string) *chain.Chain[V] {
	if m.Capacity() == 0 {
		panic("ChainedHashMap has no buckets")
	}
	index := int(m.hashFunc(key) % uint64(m.capacity))
	return mustBucket(m.buckets, index)
}

// locate 根据查找模式找到包含 key 的桶与节点，未找到时均为 nil
func (m *ChainedHashMap[V]) locate(key string) (*chain.Chain[V], *chain.Node[V]) {
	if m.Capacity() == 0 {
		return nil, nil
	}
	if m.mode != FullScan {
		bucket := m.bucketOf(key)
		if node := bucket.Contains(key); node != nil {
			return bucket, node
		}
		return nil, nil
	}
	var (
		found *chain.Chain[V]
		node  *chain.Node[V]
	)
	m.eachBucket(func(_ int, bucket *chain.Chain[V]) bool {
		if node = bucket.Contains(key); node != nil {
			found = bucket
			return false
		}
		return true
	})
	return found, node
}

func (m *ChainedHashMap[V]) find(key string) *chain.Node[V] {
	_, node := m.locate(key)
	return node
}

func (m *ChainedHashMap[V]) eachBucket(f func(int, *chain.Chain[V]) bool) {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	m.buckets.ForEach(f)
}

func mustBucket[V any](buckets *array.DynamicArray[*chain.Chain[V]], index int) *chain.Chain[V] {
	bucket, err := buckets.Get(index)
	if err != nil {
		panic(err)
	}
	return bucket
}
