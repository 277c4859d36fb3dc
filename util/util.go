package util

import (
	"sync"
)

// Runs process on every item concurrently and waits for all of them to
// complete.  process must be safe to call from multiple goroutines.
func ParallelProcess[T any](
	list []T,
	process func(int, T),
) {
	wg := sync.WaitGroup{}
	wg.Add(len(list))
	for idx, item := range list {
		go func(idx int, item T) {
			defer wg.Done()
			process(idx, item)
		}(idx, item)
	}
	wg.Wait()
}

// Applies convert to every item concurrently.  The result preserves the
// input order.
func ParallelMap[In any, Out any](
	list []In,
	convert func(In) Out,
) []Out {
	result := make([]Out, len(list))
	ParallelProcess(
		list,
		func(idx int, item In) {
			result[idx] = convert(item)
		})
	return result
}
