package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	entrySkippedLogMessageConstant = "directory entry skipped"
	logFieldPathConstant           = "path"
)

// skippedDirectoryNames lists directories never worth descending into:
// version-control metadata and generated dependency trees.
var skippedDirectoryNames = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"__pycache__":  {},
	".venv":        {},
}

// FilesystemFileDiscoverer locates files matching an extension set on disk.
type FilesystemFileDiscoverer struct {
	logger *zap.Logger
}

// NewFilesystemFileDiscoverer constructs a discoverer backed by filepath.WalkDir.
func NewFilesystemFileDiscoverer() *FilesystemFileDiscoverer {
	return NewFilesystemFileDiscovererWithLogger(nil)
}

// NewFilesystemFileDiscovererWithLogger constructs a discoverer that logs the
// entries it skips. A nil logger disables the diagnostics.
func NewFilesystemFileDiscovererWithLogger(logger *zap.Logger) *FilesystemFileDiscoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FilesystemFileDiscoverer{logger: logger}
}

// DiscoverFiles walks the provided roots and returns every file whose name
// ends in one of the extension suffixes. Results are deduplicated and sorted.
// A root that is itself a matching file is included. Entries below a root
// that cannot be read are logged and skipped; a missing or unreadable root is
// an error.
func (discoverer *FilesystemFileDiscoverer) DiscoverFiles(roots []string, extensions []string) ([]string, error) {
	seen := make(map[string]struct{})
	var matchedFiles []string

	for _, root := range roots {
		walkError := filepath.WalkDir(root, func(path string, directoryEntry fs.DirEntry, walkError error) error {
			if walkError != nil {
				if path == root {
					return walkError
				}
				discoverer.logger.Warn(
					entrySkippedLogMessageConstant,
					zap.String(logFieldPathConstant, path),
					zap.Error(walkError),
				)
				if directoryEntry != nil && directoryEntry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if directoryEntry.IsDir() {
				if _, skipped := skippedDirectoryNames[directoryEntry.Name()]; skipped && path != root {
					return fs.SkipDir
				}
				return nil
			}

			if !matchesExtension(directoryEntry.Name(), extensions) {
				return nil
			}

			if _, alreadySeen := seen[path]; alreadySeen {
				return nil
			}

			seen[path] = struct{}{}
			matchedFiles = append(matchedFiles, path)
			return nil
		})
		if walkError != nil {
			return nil, walkError
		}
	}

	sort.Strings(matchedFiles)
	return matchedFiles, nil
}

func matchesExtension(fileName string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, extension := range extensions {
		if strings.HasSuffix(fileName, extension) {
			return true
		}
	}
	return false
}
