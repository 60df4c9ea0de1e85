package utils

// ClampLimit returns def for a non-positive limit and caps it at max.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
