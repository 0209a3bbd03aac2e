// Package repair implements the in-place delimiter balance repair command.
//
// It walks the configured roots, appends missing closing delimiters to files
// whose opening count exceeds the closing count, and reports every file it
// rewrote. Optional settings narrow the run: a dry-run mode, a trailing
// pre-filter pattern, and a guarded trim of surplus trailing closers.
package repair
