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

import (
	"slices"
	"testing"

	"github.com/ajroetker/go-isort/isort/contrib/gen"
)

// TestIsSorted tests the IsSorted function
func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []float32
		want bool
	}{
		{"empty", []float32{}, true},
		{"single", []float32{1}, true},
		{"sorted", []float32{1, 2, 3, 4, 5}, true},
		{"unsorted", []float32{1, 3, 2, 4, 5}, false},
		{"reverse", []float32{5, 4, 3, 2, 1}, false},
		{"equal", []float32{3, 3, 3, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSorted(tt.data)
			if got != tt.want {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestIsSortedCompare(t *testing.T) {
	if !IsSortedCompare(gen.Tag([]int{1, 1, 2, 3})) {
		t.Error("IsSortedCompare([1 1 2 3]) = false, want true")
	}
	if IsSortedCompare(gen.Tag([]int{1, 3, 2})) {
		t.Error("IsSortedCompare([1 3 2]) = true, want false")
	}
}

func bruteInversions(data []int) int {
	count := 0
	for i := range data {
		for j := i + 1; j < len(data); j++ {
			if data[i] > data[j] {
				count++
			}
		}
	}
	return count
}

// TestInversions tests inversion counting against a brute-force count
func TestInversions(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{1}, 0},
		{"sorted", []int{1, 2, 3, 4}, 0},
		{"equal", []int{2, 2, 2}, 0},
		{"one_swap", []int{2, 1, 3}, 1},
		{"example", []int{5, 3, 4, 1, 2}, 8},
		{"reverse", []int{4, 3, 2, 1}, 6},
		{"pairs", []int{2, 2, 1, 1}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := slices.Clone(tt.data)
			if got := Inversions(tt.data); got != tt.want {
				t.Errorf("Inversions(%v) = %d, want %d", tt.data, got, tt.want)
			}
			if !slices.Equal(orig, tt.data) {
				t.Errorf("Inversions mutated input: %v, was %v", tt.data, orig)
			}
		})
	}

	for _, n := range []int{10, 100, 1000} {
		data := gen.Random(n, uint64(n))
		if got, want := Inversions(data), bruteInversions(data); got != want {
			t.Errorf("Inversions(random, n=%d) = %d, want %d", n, got, want)
		}
	}
}

// TestInversionsBounds checks the best and worst case counts.
func TestInversionsBounds(t *testing.T) {
	const n = 6000
	if got := Inversions(gen.Ascending(n)); got != 0 {
		t.Errorf("Inversions(ascending) = %d, want 0", got)
	}
	if got, want := Inversions(gen.Descending(n)), n*(n-1)/2; got != want {
		t.Errorf("Inversions(descending) = %d, want %d", got, want)
	}
}

func TestInversionsCompare(t *testing.T) {
	data := gen.Tag([]int{2, 2, 1, 1})
	if got := InversionsCompare(data); got != 4 {
		t.Errorf("InversionsCompare([2 2 1 1]) = %d, want 4", got)
	}
}
