package hufftext

// Symbol represents a symbol of the input alphabet, i.e. a single byte.
type Symbol byte

// FrequencyEntry pairs a Symbol with the number of times it occurs.
type FrequencyEntry struct {
	Symbol Symbol
	Count  uint64
}

// Histogram lists each distinct Symbol of a text exactly once, in order of
// first appearance.
type Histogram []FrequencyEntry

// Count builds the Histogram of text in a single pass.
func Count(text []byte) Histogram {
	// index[b] is 1 + the position of b in hist, or 0 if not seen yet.
	var index [256]int
	var hist Histogram
	for _, ch := range text {
		if i := index[ch]; i != 0 {
			hist[i-1].Count++
			continue
		}
		hist = append(hist, FrequencyEntry{Symbol: Symbol(ch), Count: 1})
		index[ch] = len(hist)
	}
	return hist
}

// Total returns the sum of all counts, which equals the length of the text
// the Histogram was built from.
func (hist Histogram) Total() uint64 {
	var sum uint64
	for _, entry := range hist {
		sum += entry.Count
	}
	return sum
}
