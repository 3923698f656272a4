package dolphin

import (
	"strconv"
	"strings"
)

// CompareVersions orders two dotted version strings ("3.4.0" style,
// optional leading "v"). It returns -1, 0 or 1 as a is older than, equal
// to, or newer than b. Non-numeric segments compare as zero.
func CompareVersions(a, b string) int {
	as := splitVersion(a)
	bs := splitVersion(b)

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// IsOutdated reports whether installed is older than latest. An empty
// installed version is always outdated; an empty latest never is.
func IsOutdated(installed, latest string) bool {
	if latest == "" {
		return false
	}
	if installed == "" {
		return true
	}
	return CompareVersions(installed, latest) < 0
}

func splitVersion(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	parts := strings.Split(v, ".")
	nums := make([]int, len(parts))
	for i, p := range parts {
		// "0-beta1" and similar suffixes count by their numeric prefix.
		end := 0
		for end < len(p) && p[end] >= '0' && p[end] <= '9' {
			end++
		}
		if n, err := strconv.Atoi(p[:end]); err == nil {
			nums[i] = n
		}
	}
	return nums
}
