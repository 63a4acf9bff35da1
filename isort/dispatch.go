package isort

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Variant identifies one of the insertion sort implementations.
type Variant int

const (
	// VariantShift shifts larger elements right and writes the key once.
	VariantShift Variant = iota

	// VariantSwap exchanges adjacent elements until the key settles.
	VariantSwap
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case VariantShift:
		return "shift"
	case VariantSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// Variants lists every supported variant in declaration order.
func Variants() []Variant {
	return []Variant{VariantShift, VariantSwap}
}

// ErrUnknownVariant is returned by ParseVariant for unrecognized names.
var ErrUnknownVariant = errors.New("unknown sort variant")

// ParseVariant converts a variant name ("shift" or "swap", case-insensitive)
// into a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return VariantShift, nil
	case "swap":
		return VariantSwap, nil
	default:
		return VariantShift, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// currentVariant is the variant used by Sort and SortCompare.
// Set by init() from ISORT_VARIANT.
var currentVariant = VariantShift

// cpuName and cpuFeatures describe the host for timing reports.
// Set by init() in dispatch_*.go files.
var (
	cpuName     string
	cpuFeatures []string
)

// CurrentVariant returns the variant used by Sort and SortCompare.
func CurrentVariant() Variant {
	return currentVariant
}

// CurrentName returns the name of the variant used by Sort and SortCompare.
func CurrentName() string {
	return currentVariant.String()
}

// CPUName returns the detected CPU architecture family, e.g. "amd64".
func CPUName() string {
	return cpuName
}

// CPUFeatures returns the CPU features detected at startup. It is purely
// informational and never changes which sort runs.
func CPUFeatures() []string {
	return append([]string(nil), cpuFeatures...)
}

// VariantEnv returns the variant requested through the ISORT_VARIANT
// environment variable. ok is false when the variable is unset or names no
// known variant.
func VariantEnv() (v Variant, ok bool) {
	val := os.Getenv("ISORT_VARIANT")
	if val == "" {
		return VariantShift, false
	}
	v, err := ParseVariant(val)
	if err != nil {
		return VariantShift, false
	}
	return v, true
}

func init() {
	if v, ok := VariantEnv(); ok {
		currentVariant = v
	}
}

// Sort returns a sorted copy of values using the current variant.
func Sort[T Ordered](values []T) []T {
	return SortWith(currentVariant, values)
}

// SortCompare returns a sorted copy of values using the current variant.
func SortCompare[T Comparer[T]](values []T) []T {
	return SortCompareWith(currentVariant, values)
}

// SortWith returns a sorted copy of values using variant v.
// Unknown variants fall back to VariantShift.
func SortWith[T Ordered](v Variant, values []T) []T {
	if v == VariantSwap {
		return SwapSort(values)
	}
	return ShiftSort(values)
}

// SortCompareWith returns a sorted copy of values using variant v.
// Unknown variants fall back to VariantShift.
func SortCompareWith[T Comparer[T]](v Variant, values []T) []T {
	if v == VariantSwap {
		return SwapSortCompare(values)
	}
	return ShiftSortCompare(values)
}
