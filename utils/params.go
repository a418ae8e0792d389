package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a positive integer path parameter
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
