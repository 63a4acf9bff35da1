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

// IsSorted reports whether values is in non-decreasing order.
func IsSorted[T Ordered](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

// IsSortedCompare reports whether values is in non-decreasing order under
// T's Compare method.
func IsSortedCompare[T Comparer[T]](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i].Compare(values[i-1]) < 0 {
			return false
		}
	}
	return true
}

// Inversions returns the number of index pairs i < j with values[i] > values[j].
//
// This is exactly the number of shifts ShiftSort performs and the number of
// swaps SwapSort performs on values. It runs in O(n log n) on a private copy;
// values is not modified.
func Inversions[T Ordered](values []T) int {
	return countInversions(values, func(a, b T) bool { return a < b })
}

// InversionsCompare is Inversions for types ordered by their Compare method.
func InversionsCompare[T Comparer[T]](values []T) int {
	return countInversions(values, func(a, b T) bool { return a.Compare(b) < 0 })
}

func countInversions[T any](values []T, less func(a, b T) bool) int {
	if len(values) <= 1 {
		return 0
	}
	data := slices.Clone(values)
	buf := make([]T, len(data))
	return mergeCount(data, buf, less)
}

// mergeCount sorts data with a stable merge sort and returns the number of
// inversions it removed. buf must be at least len(data) long.
func mergeCount[T any](data, buf []T, less func(a, b T) bool) int {
	n := len(data)
	if n <= 1 {
		return 0
	}
	mid := n / 2
	count := mergeCount(data[:mid], buf[:mid], less) + mergeCount(data[mid:], buf[mid:], less)

	left, right := data[:mid], data[mid:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// Only strictly smaller right elements jump ahead; equal ones are
		// not inversions.
		if less(right[j], left[i]) {
			buf[k] = right[j]
			count += len(left) - i
			j++
		} else {
			buf[k] = left[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], left[i:])
	copy(buf[k:], right[j:])
	copy(data, buf[:n])
	return count
}
