package download

// ComputeProgress returns floor(received/total*100) clamped to [0,100].
// ok is false when total is zero or unknown: the caller must not publish.
func ComputeProgress(received, total int64) (percent int, ok bool) {
	if total <= 0 {
		return 0, false
	}
	if received <= 0 {
		return 0, true
	}
	if received >= total {
		return 100, true
	}
	return int(received * 100 / total), true
}
