package vcs

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize 默认缓存的文件数
const DefaultCacheSize = 512

// CachedSource 为 LatestChange 结果加一层 LRU 缓存，错误不缓存
type CachedSource struct {
	Source
	cache *lru.Cache[string, ChangeRecord]
}

// NewCachedSource 包装 src，size <= 0 时使用 DefaultCacheSize
func NewCachedSource(src Source, size int) (*CachedSource, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, ChangeRecord](size)
	if err != nil {
		return nil, err
	}
	return &CachedSource{Source: src, cache: cache}, nil
}

func (c *CachedSource) LatestChange(ctx context.Context, repoRoot, file string) (*ChangeRecord, error) {
	key := repoRoot + "\x00" + file
	if record, ok := c.cache.Get(key); ok {
		return &record, nil
	}
	record, err := c.Source.LatestChange(ctx, repoRoot, file)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, *record)
	return record, nil
}

// Len 返回当前缓存条目数
func (c *CachedSource) Len() int {
	return c.cache.Len()
}
