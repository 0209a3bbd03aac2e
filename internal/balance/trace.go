package balance

import "strings"

// LineDepth records the running delimiter depth after a single line.
type LineDepth struct {
	LineNumber int
	Depth      int
	Text       string
}

// TraceResult captures the per-line depth progression of a piece of content.
type TraceResult struct {
	Lines      []LineDepth
	FinalDepth int
	MaxDepth   int
	Tally      Tally
}

// Trace walks the content line by line, tracking the running delimiter depth
// after each line together with the maximum depth reached.
func Trace(content string, pair Pair) TraceResult {
	lines := strings.Split(content, lineBreakConstant)

	result := TraceResult{
		Lines: make([]LineDepth, 0, len(lines)),
		Tally: Count(content, pair),
	}

	runningDepth := 0
	for lineIndex, lineText := range lines {
		for _, character := range lineText {
			switch character {
			case pair.Open:
				runningDepth++
				if runningDepth > result.MaxDepth {
					result.MaxDepth = runningDepth
				}
			case pair.Close:
				runningDepth--
			}
		}

		result.Lines = append(result.Lines, LineDepth{
			LineNumber: lineIndex + 1,
			Depth:      runningDepth,
			Text:       lineText,
		})
	}

	result.FinalDepth = runningDepth
	return result
}

// TailLines returns the final requested number of traced lines. A count of
// zero or less selects every line.
func (result TraceResult) TailLines(requestedCount int) []LineDepth {
	if requestedCount <= 0 || requestedCount >= len(result.Lines) {
		return result.Lines
	}
	return result.Lines[len(result.Lines)-requestedCount:]
}
