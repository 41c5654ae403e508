package coroutine

import (
	"context"
)

// Map 并行执行map操作，将输入切片中的每个元素应用函数并返回结果
// 返回结果与 items 一一对应，顺序不变
func Map[T, R any](ctx context.Context, maxWorkers int, items []T, mapFunc func(int, T) (R, error)) []Result[R] {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers()
	}

	works := make([]WorkFunc[R], len(items))
	for i, item := range items {
		// 捕获循环变量
		capturedIndex, capturedItem := i, item
		works[i] = func() (R, error) {
			return mapFunc(capturedIndex, capturedItem)
		}
	}

	pool := NewCoroutinePool[R](maxWorkers)
	return pool.Execute(ctx, works)
}

// Values 提取结果值，遇到错误时返回下标最小的错误
func Values[R any](results []Result[R]) ([]R, error) {
	if err := FirstError(results); err != nil {
		return nil, err
	}
	values := make([]R, len(results))
	for i, r := range results {
		values[i] = r.Value
	}
	return values, nil
}
