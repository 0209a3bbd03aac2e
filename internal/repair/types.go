package repair

import (
	"io/fs"
	"regexp"

	"github.com/codetidy/bracefix/internal/balance"
	"github.com/codetidy/bracefix/internal/report"
)

// CommandOptions captures the configurable parameters for the repair command.
type CommandOptions struct {
	Roots      []string
	Extensions []string
	Format     report.Format
	Pair       balance.Pair
	DryRun     bool
	// TrailingPattern, when non-nil, restricts repair to files whose content
	// matches the pattern. Used to target a known suspicious shape, such as two
	// consecutive closing delimiters at end of file.
	TrailingPattern *regexp.Regexp
	TrimTrailing    bool
	Debug           bool
}

// FileDiscoverer locates candidate files beneath the configured roots.
type FileDiscoverer interface {
	DiscoverFiles(roots []string, extensions []string) ([]string, error)
}

// FileSystem exposes the filesystem operations the repair service performs.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
	Stat(path string) (fs.FileInfo, error)
}
