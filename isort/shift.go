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

// ShiftSort returns a sorted copy of values using shift-based insertion sort.
//
// Each element is lifted out as the key, every larger element before it
// moves one slot to the right, and the key is written once into the gap.
// Only strictly greater elements are shifted, so equal elements keep their
// input order (the sort is stable). values is not modified.
func ShiftSort[T Ordered](values []T) []T {
	out := slices.Clone(values)
	shiftInsertion(out)
	return out
}

// ShiftSortCompare is ShiftSort for types ordered by their Compare method.
func ShiftSortCompare[T Comparer[T]](values []T) []T {
	out := slices.Clone(values)
	shiftInsertionCompare(out)
	return out
}

// shiftInsertion sorts data in-place.
func shiftInsertion[T Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

func shiftInsertionCompare[T Comparer[T]](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j].Compare(key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
