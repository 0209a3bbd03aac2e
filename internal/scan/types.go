package scan

import (
	"github.com/codetidy/bracefix/internal/balance"
	"github.com/codetidy/bracefix/internal/report"
)

// CommandOptions captures the configurable parameters for the scan command.
type CommandOptions struct {
	Roots      []string
	Extensions []string
	Format     report.Format
	Pair       balance.Pair
	Debug      bool
}

// FileDiscoverer locates candidate files beneath the configured roots.
type FileDiscoverer interface {
	DiscoverFiles(roots []string, extensions []string) ([]string, error)
}

// FileReader reads full file contents for counting.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}
