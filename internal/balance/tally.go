package balance

import "strings"

// Tally captures delimiter occurrence counts for a piece of content.
type Tally struct {
	OpenCount  int
	CloseCount int
}

// Count tallies occurrences of the pair's delimiters in the provided content.
func Count(content string, pair Pair) Tally {
	return Tally{
		OpenCount:  strings.Count(content, string(pair.Open)),
		CloseCount: strings.Count(content, string(pair.Close)),
	}
}

// Difference returns the number of opening delimiters without a matching closer.
// Positive values indicate missing closers, negative values surplus closers.
func (tally Tally) Difference() int {
	return tally.OpenCount - tally.CloseCount
}

// Balanced reports whether opening and closing counts match.
func (tally Tally) Balanced() bool {
	return tally.OpenCount == tally.CloseCount
}
