package logger

import (
	"strings"
)

// Header centers an upper-cased name in a line of '=', e.g. for report titles.
func Header(name string) string {
	base := []byte("=================================")
	upper := []byte(strings.ToUpper(name))

	offset := len(base)/2 - len(upper)/2
	if offset < 0 {
		offset = 0
	}

	copy(base[offset:], upper)

	return string(base) + "\n"
}
