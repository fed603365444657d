// Package store 以整个JSON文档为单位读写命名集合
//
// 分两层：
//   - Backend：按名字读写原始字节（文件或Redis）
//   - Collection[T]：种子数据策略 + JSON编解码
//
// 不做进程内缓存，也不加锁：每次调用都重新读取，后写覆盖先写。
package store

import (
	"context"
	"errors"
)

// ErrNotExist 集合尚未创建
var ErrNotExist = errors.New("store: collection does not exist")

// Backend 集合字节存储
type Backend interface {
	// Read 读取集合的完整内容，不存在时返回ErrNotExist
	Read(ctx context.Context, name string) ([]byte, error)

	// Write 整体覆盖集合内容
	Write(ctx context.Context, name string, data []byte) error
}
