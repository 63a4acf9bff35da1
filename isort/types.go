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

// Package isort provides copy-on-call, stable insertion sort in two variants.
//
// The shift variant (ShiftSort) moves larger elements one slot to the right
// and writes the key once. The swap variant (SwapSort) exchanges adjacent
// elements until the key settles. Both run in Θ(n + d) time, where d is the
// number of inversions in the input, and both leave the input untouched.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-isort/isort"
//
//	sorted := isort.Sort([]int{5, 3, 4, 1, 2}) // [1 2 3 4 5]
//
// Sort dispatches to the variant selected by the ISORT_VARIANT environment
// variable ("shift" by default). Use ShiftSort or SwapSort directly to pick
// one explicitly.
//
// Element types must be totally ordered. For float types this excludes NaN:
// a NaN in the input leaves the result in an unspecified order (still a
// permutation of the input).
package isort

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for all types that support the < operator.
type Ordered interface {
	Integers | Floats | ~string
}

// Comparer is implemented by types that define their own three-way ordering.
//
// Compare returns a negative number when the receiver sorts before other,
// zero when the two are equal, and a positive number otherwise. It must be a
// total order; anything else leaves sort results unspecified.
type Comparer[T any] interface {
	Compare(other T) int
}
