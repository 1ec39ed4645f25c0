package dot

import "github.com/ajroetker/quadlane/hwy/contrib/workerpool"

// batchRows is the number of rows a worker takes at a time.
const batchRows = 8

// DotBatch computes multiple dot products efficiently.
// For each i, computes the dot product of queries[i] and keys[i].
//
// Returns a slice of results with length min(len(queries), len(keys)).
func DotBatch(queries, keys [][]float32) []float32 {
	n := min(len(queries), len(keys))
	results := make([]float32, n)

	for i := range n {
		results[i] = Dot(queries[i], keys[i])
	}

	return results
}

// DotBatchParallel is DotBatch with the rows spread over pool. Each row is
// still reduced by one goroutine, so the results are identical to DotBatch.
// A nil pool runs on the calling goroutine.
func DotBatchParallel(pool *workerpool.Pool, queries, keys [][]float32) []float32 {
	if pool == nil {
		return DotBatch(queries, keys)
	}
	n := min(len(queries), len(keys))
	results := make([]float32, n)

	pool.ForBatched(n, batchRows, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = Dot(queries[i], keys[i])
		}
	})

	return results
}
