package query

// Dedup keeps the first item for each key, preserving order.
func Dedup[T any, K comparable](items []T, key func(T) K) []T {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// DedupStrings collapses identical strings, keeping the first occurrence.
func DedupStrings(items []string) []string {
	return Dedup(items, func(s string) string { return s })
}
