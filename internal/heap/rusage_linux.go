//go:build linux

package heap

import "golang.org/x/sys/unix"

// MaxRSSKB reports the process's peak resident set size in kilobytes, for
// the "-v" CLI flag to print alongside Pool.Stats. Linux reports Maxrss in
// kilobytes already; on other platforms rusage_other.go reports zero.
func MaxRSSKB() (int64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}

	return ru.Maxrss, nil
}
