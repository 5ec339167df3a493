package utils

import "math/rand"

// AlnumString 生成长度为 l 的随机字母数字字符串
func AlnumString(l int) string {
	a := make([]byte, l)
	for i := 0; i < l; i++ {
		index := rand.Intn(62)
		if index < 10 {
			a[i] = byte(48 + index)
		} else if index < 36 {
			a[i] = byte(55 + index)
		} else {
			a[i] = byte(61 + index)
		}
	}
	return string(a)
}

// DistinctAlnumStrings 生成 n 个互不相同的随机字符串
func DistinctAlnumStrings(n, l int) []string {
	seen := make(map[string]struct{}, n)
	res := make([]string, 0, n)
	for len(res) < n {
		s := AlnumString(l)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res
}
