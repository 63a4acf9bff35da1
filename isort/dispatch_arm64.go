//go:build arm64

package isort

import "golang.org/x/sys/cpu"

func init() {
	cpuName = "arm64"

	// ASIMD (NEON) is part of the ARMv8-A base, but report what the cpu
	// package sees rather than assume.
	if cpu.ARM64.HasASIMD {
		cpuFeatures = append(cpuFeatures, "asimd")
	}
	if cpu.ARM64.HasATOMICS {
		cpuFeatures = append(cpuFeatures, "atomics")
	}
	if cpu.ARM64.HasAES {
		cpuFeatures = append(cpuFeatures, "aes")
	}
	if cpu.ARM64.HasSVE {
		cpuFeatures = append(cpuFeatures, "sve")
	}
}
