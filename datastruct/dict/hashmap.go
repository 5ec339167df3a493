package dict

type Processor[V any] func(key string, value V) bool

type Dict[V any] interface {
	Size() int
	Put(key string, value V)
	PutIfAbsent(key string, value V) (ok bool)
	PutIfExists(key string, value V) (ok bool)
	Get(key string) (value V, ok bool)
	Remove(key string) (ok bool)
	ContainsKey(key string) bool
	ForEach(p Processor[V])
	Keys() []string
	Clear()
}
