package dict

import "strings"

// HashFunc 必须是纯函数，只有对容量取模后的结果会影响桶的位置
type HashFunc func(key string) uint64

// HashFunction1 将所有字符的码点相加
func HashFunction1(key string) uint64 {
	var hash uint64
	for _, letter := range key {
		hash += uint64(letter)
	}
	return hash
}

// HashFunction2 按位置加权：第 i 个字符（从 0 开始）乘以 i+1
func HashFunction2(key string) uint64 {
	var hash, index uint64
	for _, letter := range key {
		hash += (index + 1) * uint64(letter)
		index++
	}
	return hash
}

func HashFuncByName(name string) (HashFunc, bool) {
	switch strings.ToLower(name) {
	case "hash1", "sum":
		return HashFunction1, true
	case "hash2", "weighted":
		return HashFunction2, true
	}
	return nil, false
}
