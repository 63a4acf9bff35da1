// Copyright 2025 go-isort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package isort

import "github.com/ajroetker/go-isort/isort/contrib/workerpool"

// SortBatch sorts every input independently with variant v and returns the
// results in input order. Inputs are distributed over pool's workers; each
// one is still sorted sequentially. A nil pool sorts on the caller's
// goroutine. No input is modified.
func SortBatch[T Ordered](pool *workerpool.Pool, inputs [][]T, v Variant) [][]T {
	out := make([][]T, len(inputs))
	sortOne := func(i int) {
		out[i] = SortWith(v, inputs[i])
	}
	if pool == nil {
		for i := range inputs {
			sortOne(i)
		}
		return out
	}
	// Input lengths vary, so steal work per input instead of fixed chunks.
	pool.ParallelForAtomic(len(inputs), sortOne)
	return out
}

// SortBatchCompare is SortBatch for types ordered by their Compare method.
func SortBatchCompare[T Comparer[T]](pool *workerpool.Pool, inputs [][]T, v Variant) [][]T {
	out := make([][]T, len(inputs))
	sortOne := func(i int) {
		out[i] = SortCompareWith(v, inputs[i])
	}
	if pool == nil {
		for i := range inputs {
			sortOne(i)
		}
		return out
	}
	pool.ParallelForAtomic(len(inputs), sortOne)
	return out
}
