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

import "slices"

// SwapSort returns a sorted copy of values using adjacent-swap insertion sort.
//
// Each new element is swapped with its left neighbor for as long as it is
// strictly smaller, so equal elements are never exchanged and the sort is
// stable. Every inner step rewrites both slots, which makes SwapSort slower
// than ShiftSort on the same input even though both are O(n²) worst case.
// values is not modified.
func SwapSort[T Ordered](values []T) []T {
	out := slices.Clone(values)
	swapInsertion(out)
	return out
}

// SwapSortCompare is SwapSort for types ordered by their Compare method.
func SwapSortCompare[T Comparer[T]](values []T) []T {
	out := slices.Clone(values)
	swapInsertionCompare(out)
	return out
}

func swapInsertion[T Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		for j := i; j > 0 && data[j] < data[j-1]; j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

func swapInsertionCompare[T Comparer[T]](data []T) {
	for i := 1; i < len(data); i++ {
		for j := i; j > 0 && data[j].Compare(data[j-1]) < 0; j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}
