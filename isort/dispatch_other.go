//go:build !amd64 && !arm64

package isort

import "runtime"

func init() {
	// No feature detection for other architectures yet.
	cpuName = runtime.GOARCH
}
