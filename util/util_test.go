package util

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelProcess(t *testing.T) {
	seen := make([]int32, 100)
	total := int64(0)

	ParallelProcess(
		make([]int, len(seen)),
		func(idx int, _ int) {
			atomic.AddInt32(&seen[idx], 1)
			atomic.AddInt64(&total, int64(idx))
		})

	for _, count := range seen {
		assert.Equal(t, int32(1), count)
	}
	assert.Equal(t, int64(99*100/2), total)

	ParallelProcess([]string{}, func(int, string) { t.Fatal("unexpected call") })
}

func TestParallelMapPreservesOrder(t *testing.T) {
	input := []int{5, 3, 8, 1, 9, 2}
	result := ParallelMap(input, func(value int) int { return value * value })
	assert.Equal(t, []int{25, 9, 64, 1, 81, 4}, result)

	assert.Empty(t, ParallelMap([]int(nil), func(value int) int { return value }))
}
