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

// Package gen builds inputs for exercising and timing the sorts: best case
// (ascending), worst case (descending), random, and tagged records for
// checking stability.
package gen

import (
	"cmp"
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
)

// Order names the arrangement of a generated input.
type Order string

const (
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
	OrderRandom     Order = "random"
)

// Orders lists every supported Order.
func Orders() []Order {
	return []Order{OrderAscending, OrderDescending, OrderRandom}
}

// Ascending returns 1, 2, ..., n.
func Ascending(n int) []int {
	return lo.Map(lo.Range(max(n, 0)), func(i, _ int) int { return i + 1 })
}

// Descending returns n, n-1, ..., 1.
func Descending(n int) []int {
	return lo.Map(lo.Range(max(n, 0)), func(i, _ int) int { return n - i })
}

// Random returns n values in [0, n) drawn from a generator seeded with seed.
// The same seed always yields the same slice.
func Random(n int, seed uint64) []int {
	n = max(n, 0)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return lo.Map(lo.Range(n), func(_, _ int) int { return r.IntN(n) })
}

// Generate returns n integers arranged by order.
func Generate(order Order, n int, seed uint64) ([]int, error) {
	switch order {
	case OrderAscending:
		return Ascending(n), nil
	case OrderDescending:
		return Descending(n), nil
	case OrderRandom:
		return Random(n, seed), nil
	default:
		return nil, fmt.Errorf("gen: unknown order %q", order)
	}
}

// Tagged is a sort key carrying a tag that does not take part in ordering.
// Equal keys with different tags let tests observe stability.
type Tagged struct {
	Key int
	Tag string
}

// Compare orders Tagged values by Key only.
func (t Tagged) Compare(other Tagged) int {
	return cmp.Compare(t.Key, other.Key)
}

func (t Tagged) String() string {
	return fmt.Sprintf("(%d,%s)", t.Key, t.Tag)
}

// Tag pairs each key with a tag naming its input position: "a", "b", ...,
// "z", "aa", "ab", ...
func Tag(keys []int) []Tagged {
	return lo.Map(keys, func(k, i int) Tagged {
		return Tagged{Key: k, Tag: tagName(i)}
	})
}

func tagName(i int) string {
	var buf []byte
	for i++; i > 0; i = (i - 1) / 26 {
		buf = append([]byte{byte('a' + (i-1)%26)}, buf...)
	}
	return string(buf)
}

// Tags returns the tags of values in order.
func Tags(values []Tagged) []string {
	return lo.Map(values, func(t Tagged, _ int) string { return t.Tag })
}

// SameElements reports whether a and b hold the same multiset of values.
func SameElements[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := lo.CountValues(a), lo.CountValues(b)
	if len(ca) != len(cb) {
		return false
	}
	for v, n := range ca {
		if cb[v] != n {
			return false
		}
	}
	return true
}
