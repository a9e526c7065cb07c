package palette

// Intn is the slice of a random source Sample needs.
type Intn interface {
	IntN(n int) int
}

// Sample draws min(k, len(entries)) entries without replacement. The input
// slice is not modified. k <= 0 yields an empty sample.
func Sample(entries []Entry, k int, src Intn) []Entry {
	k = max(0, min(k, len(entries)))
	pool := append([]Entry(nil), entries...)
	// Partial Fisher-Yates: the first k slots end up holding the sample.
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
