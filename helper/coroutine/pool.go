package coroutine

import (
	"context"
	"runtime"
	"sync"
)

// WorkFunc 单个工作函数
type WorkFunc[T any] func() (T, error)

// Result 工作函数的执行结果，Index 对应提交时的下标
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// CoroutinePool 固定大小的协程池，结果按提交顺序返回
type CoroutinePool[T any] struct {
	maxWorkers int
}

// DefaultMaxWorkers 默认并发数
func DefaultMaxWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// NewCoroutinePool 创建协程池
func NewCoroutinePool[T any](maxWorkers int) *CoroutinePool[T] {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers()
	}
	return &CoroutinePool[T]{maxWorkers: maxWorkers}
}

// Execute 执行所有工作函数并等待完成
// 任一工作出错或 ctx 取消后，尚未开始的工作不再执行，直接以导致取消的错误结束
func (p *CoroutinePool[T]) Execute(ctx context.Context, works []WorkFunc[T]) []Result[T] {
	results := make([]Result[T], len(works))
	if len(works) == 0 {
		return results
	}
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	workers := p.maxWorkers
	if workers > len(works) {
		workers = len(works)
	}

	// 单协程时直接顺序执行
	if workers == 1 {
		for i, work := range works {
			results[i] = run(ctx, cancel, i, work)
		}
		return results
	}

	indexCh := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexCh {
				// 每个下标只由一个协程写入，无需加锁
				results[i] = run(ctx, cancel, i, works[i])
			}
		}()
	}
	for i := range works {
		indexCh <- i
	}
	close(indexCh)
	wg.Wait()

	return results
}

func run[T any](ctx context.Context, cancel context.CancelCauseFunc, index int, work WorkFunc[T]) Result[T] {
	if ctx.Err() != nil {
		return Result[T]{Index: index, Err: context.Cause(ctx)}
	}
	value, err := work()
	if err != nil {
		cancel(err)
	}
	return Result[T]{Index: index, Value: value, Err: err}
}

// FirstError 返回下标最小的错误
func FirstError[T any](results []Result[T]) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
