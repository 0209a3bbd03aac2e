package balance

import "strings"

const (
	lineBreakConstant        = "\n"
	whitespaceCutsetConstant = " \t\r\n"
)

// RepairOutcome enumerates how ApplyRepair altered a piece of content.
type RepairOutcome string

// Repair outcomes reported alongside rewritten content.
const (
	RepairOutcomeUnchanged RepairOutcome = "unchanged"
	RepairOutcomeAppended  RepairOutcome = "appended"
	RepairOutcomeTrimmed   RepairOutcome = "trimmed"
)

// RepairResult describes the content produced by ApplyRepair.
type RepairResult struct {
	Content        string
	Outcome        RepairOutcome
	DelimiterDelta int
	Tally          Tally
}

// RepairOptions adjusts which repairs ApplyRepair is allowed to perform.
type RepairOptions struct {
	// TrimTrailingSurplus permits removal of surplus closing delimiter lines at
	// end of file when closing count exceeds opening count. Appending missing
	// closers never removes content; this variant does, so it stays opt-in.
	TrimTrailingSurplus bool
}

// ApplyRepair balances delimiter counts by appending missing closing delimiter
// lines. Trailing whitespace is trimmed and a final line break guaranteed
// before closers are appended. Content with balanced counts is returned
// untouched, byte for byte, which keeps repeated runs idempotent.
func ApplyRepair(content string, pair Pair, options RepairOptions) RepairResult {
	tally := Count(content, pair)

	switch {
	case tally.Difference() > 0:
		return appendMissingClosers(content, pair, tally)
	case tally.Difference() < 0 && options.TrimTrailingSurplus:
		return trimTrailingSurplus(content, pair, tally)
	default:
		return RepairResult{Content: content, Outcome: RepairOutcomeUnchanged, Tally: tally}
	}
}

func appendMissingClosers(content string, pair Pair, tally Tally) RepairResult {
	missingCloserCount := tally.Difference()

	rebuiltContent := strings.TrimRight(content, whitespaceCutsetConstant) + lineBreakConstant
	rebuiltContent += strings.Repeat(string(pair.Close)+lineBreakConstant, missingCloserCount)

	return RepairResult{
		Content:        rebuiltContent,
		Outcome:        RepairOutcomeAppended,
		DelimiterDelta: missingCloserCount,
		Tally:          tally,
	}
}

// trimTrailingSurplus removes surplus closing delimiters only when every
// surplus closer sits at end of file on a line of its own. Anything else is
// left untouched; guessing at interior structure is out of scope.
func trimTrailingSurplus(content string, pair Pair, tally Tally) RepairResult {
	surplusCloserCount := -tally.Difference()

	remainingContent := strings.TrimRight(content, whitespaceCutsetConstant)
	for removedCount := 0; removedCount < surplusCloserCount; removedCount++ {
		withoutCloser, trimmed := trimOneTrailingCloserLine(remainingContent, pair)
		if !trimmed {
			return RepairResult{Content: content, Outcome: RepairOutcomeUnchanged, Tally: tally}
		}
		remainingContent = withoutCloser
	}

	return RepairResult{
		Content:        remainingContent + lineBreakConstant,
		Outcome:        RepairOutcomeTrimmed,
		DelimiterDelta: -surplusCloserCount,
		Tally:          tally,
	}
}

func trimOneTrailingCloserLine(content string, pair Pair) (string, bool) {
	trimmedContent := strings.TrimRight(content, whitespaceCutsetConstant)
	if !strings.HasSuffix(trimmedContent, string(pair.Close)) {
		return content, false
	}

	withoutCloser := strings.TrimSuffix(trimmedContent, string(pair.Close))
	lastLine := withoutCloser
	if lineBreakIndex := strings.LastIndex(withoutCloser, lineBreakConstant); lineBreakIndex >= 0 {
		lastLine = withoutCloser[lineBreakIndex+1:]
	}
	if len(strings.TrimSpace(lastLine)) != 0 {
		return content, false
	}

	return strings.TrimRight(withoutCloser, whitespaceCutsetConstant), true
}
