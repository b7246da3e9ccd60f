package xstrconv

// Sentinel terminates the logical content of a string.
const Sentinel = '\x00'

// Length returns the count of bytes preceding the first Sentinel.
// Bytes after the sentinel are never looked at.
func Length(s string) int {
	i := 0
	for i < len(s) && s[i] != Sentinel {
		i++
	}

	return i
}
