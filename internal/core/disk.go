package core

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// FreeSpace returns the bytes available on the filesystem holding path.
func FreeSpace(ctx context.Context, path string) (uint64, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return usage.Free, nil
}

// Reclaimed returns how much free space grew between two measurements.
// A shrink (other processes writing meanwhile) counts as zero.
func Reclaimed(before, after uint64) int64 {
	if after <= before {
		return 0
	}
	return int64(after - before)
}
