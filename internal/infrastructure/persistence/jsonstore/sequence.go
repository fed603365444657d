package jsonstore

import (
	"github.com/samber/lo"
)

// nextID 生成整数ID：当前最大ID+1，空集合（或全部ID<=0）时为1
func nextID[T any](records []T, id func(T) int) int {
	return max(lo.Max(lo.Map(records, func(r T, _ int) int { return id(r) })), 0) + 1
}
