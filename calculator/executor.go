package calculator

import (
	"sync"
)

// 基于下标区间的任务分配，各计算点相互独立，因此可以任意切分
type executor struct {
	workers   int
	threshold int // 计算点少于该值时不切分
}

type task struct {
	start int
	end   int
}

func newExecutor(workers, threshold int) *executor {
	if workers < 1 {
		workers = 1
	}
	if threshold < 1 {
		threshold = 1
	}
	return &executor{workers: workers, threshold: threshold}
}

func (e *executor) worthSplitting(t task) bool {
	return e.workers > 1 && t.end-t.start >= e.threshold
}

// 将区间切分为子任务，每个 worker 分两段，余数逐个分配
func (e *executor) split(t task) []task {
	total := t.end - t.start
	if total <= 0 {
		return nil
	}
	taskLen, remainder := total/e.workers, total%e.workers
	tasks := make([]task, 0, e.workers*2+remainder)
	start := t.start
	if taskLen > 0 {
		half1, half2 := taskLen/2, taskLen/2
		if taskLen%2 == 1 {
			half2++
		}
		for start < t.end-remainder {
			if half1 != 0 {
				tasks = append(tasks, task{start: start, end: start + half1})
				start += half1
			}
			if half2 != 0 {
				tasks = append(tasks, task{start: start, end: start + half2})
				start += half2
			}
		}
	}
	for i := 0; i < remainder; i++ {
		tasks = append(tasks, task{start: start, end: start + 1})
		start++
	}
	return tasks
}

// 分发任务并等待全部完成，返回下标最小的错误
func (e *executor) dispatch(t task, f func(t task) *Error) *Error {
	tasks := e.split(t)
	errs := make([]*Error, len(tasks))
	dispatchChan := make(chan int, len(tasks))
	for i := range tasks {
		dispatchChan <- i
	}
	close(dispatchChan)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range dispatchChan {
				errs[i] = runTask(tasks[i], f)
			}
		}()
	}
	wg.Wait()

	// tasks 按下标递增排列
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func runTask(t task, f func(t task) *Error) (err *Error) {
	defer func() {
		if r := recover(); r != nil {
			err = programmingError("integrate", r)
		}
	}()
	return f(t)
}
