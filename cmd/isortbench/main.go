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

// Command isortbench times the insertion sort variants on generated inputs.
//
// Usage:
//
//	isortbench                               # both variants, all orders, n=6000
//	isortbench -variant swap -order descending -n 20000
//	isortbench -order random -seed 7 -rounds 5
//
// For each input order it prints the best wall time of each variant over
// the requested number of rounds, together with the input's inversion
// count (the number of element moves either variant performs).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ajroetker/go-isort/isort"
	"github.com/ajroetker/go-isort/isort/contrib/gen"
)

var (
	size     = flag.Int("n", 6000, "Number of elements per input")
	variant  = flag.String("variant", "both", "Variant to time: shift, swap or both")
	order    = flag.String("order", "all", "Input order: ascending, descending, random or all")
	rounds   = flag.Int("rounds", 3, "Timed rounds per variant; the best is reported")
	seedFlag = flag.Uint64("seed", 1, "Seed for random inputs")
)

func main() {
	flag.Parse()

	variants, err := parseVariants(*variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	orders, err := parseOrders(*order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if *size < 0 || *rounds < 1 {
		fmt.Fprintf(os.Stderr, "Error: -n must be >= 0 and -rounds >= 1\n")
		os.Exit(1)
	}

	fmt.Printf("CPU: %s [%s], default variant: %s\n",
		isort.CPUName(), strings.Join(isort.CPUFeatures(), " "), isort.CurrentName())

	for _, o := range orders {
		data, err := gen.Generate(o, *size, *seedFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n%s n=%d inversions=%d\n", o, *size, isort.Inversions(data))
		for _, v := range variants {
			best, err := timeVariant(v, data, *rounds)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("  %-6s %12v\n", v, best)
		}
	}
}

// timeVariant returns the fastest of rounds runs of v over data and checks
// every result.
func timeVariant(v isort.Variant, data []int, rounds int) (time.Duration, error) {
	best := time.Duration(-1)
	for range rounds {
		start := time.Now()
		out := isort.SortWith(v, data)
		elapsed := time.Since(start)

		if !isort.IsSorted(out) || !gen.SameElements(data, out) {
			return 0, fmt.Errorf("variant %s produced a wrong result", v)
		}
		if best < 0 || elapsed < best {
			best = elapsed
		}
	}
	return best, nil
}

func parseVariants(s string) ([]isort.Variant, error) {
	if s == "both" || s == "all" {
		return isort.Variants(), nil
	}
	v, err := isort.ParseVariant(s)
	if err != nil {
		return nil, err
	}
	return []isort.Variant{v}, nil
}

func parseOrders(s string) ([]gen.Order, error) {
	if s == "all" {
		return gen.Orders(), nil
	}
	for _, o := range gen.Orders() {
		if string(o) == s {
			return []gen.Order{o}, nil
		}
	}
	return nil, fmt.Errorf("unknown order %q", s)
}
