package repair

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/codetidy/bracefix/internal/balance"
	"github.com/codetidy/bracefix/internal/report"
)

const (
	defaultRootPathConstant            = "."
	fallbackFilePermissionsConstant    = fs.FileMode(0o644)
	debugDiscoveredTemplateConstant    = "DEBUG: discovered %d candidate files under: %s\n"
	debugSkippedPatternTemplate        = "DEBUG: pre-filter pattern did not match, skipping %s\n"
	dryRunNoticeTemplateConstant       = "DRY RUN: would rewrite %s\n"
	readFailureNoticeTemplateConstant  = "Error reading %s: %v\n"
	writeFailureNoticeTemplateConstant = "Error writing %s: %v\n"
	invalidEncodingNoticeTemplate      = "Error reading %s: content is not valid UTF-8\n"
	fileSkippedLogMessageConstant      = "file skipped"
	fileRewrittenLogMessageConstant    = "file rewritten"
	logFieldPathConstant               = "path"
	logFieldReasonConstant             = "reason"
	logFieldDelimiterCountConstant     = "delimiter_count"
	logFieldActionConstant             = "action"
	invalidEncodingReasonConstant      = "invalid_utf8"
)

// Service coordinates file discovery, balance repair, and report emission.
type Service struct {
	discoverer   FileDiscoverer
	fileSystem   FileSystem
	outputWriter io.Writer
	errorWriter  io.Writer
	logger       *zap.Logger
}

// NewService constructs a Service using the provided dependencies.
func NewService(discoverer FileDiscoverer, fileSystem FileSystem, outputWriter io.Writer, errorWriter io.Writer, logger *zap.Logger) *Service {
	if fileSystem == nil {
		fileSystem = NewOSFileSystem()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		discoverer:   discoverer,
		fileSystem:   fileSystem,
		outputWriter: outputWriter,
		errorWriter:  errorWriter,
		logger:       logger,
	}
}

// Run repairs every matched file and reports the files it changed. Per-file
// read and write failures are reported and skipped; they never abort the run.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	roots := options.Roots
	if len(roots) == 0 {
		roots = []string{defaultRootPathConstant}
	}

	discoveredFiles, discoveryError := service.discoverer.DiscoverFiles(roots, options.Extensions)
	if discoveryError != nil {
		return discoveryError
	}

	if options.Debug {
		fmt.Fprintf(service.errorWriter, debugDiscoveredTemplateConstant, len(discoveredFiles), strings.Join(roots, " "))
	}

	var repairRows []report.RepairRow
	for _, filePath := range discoveredFiles {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		repairRow, repaired := service.repairFile(filePath, options)
		if repaired {
			repairRows = append(repairRows, repairRow)
		}
	}

	return report.WriteRepairReport(service.outputWriter, options.Format, repairRows)
}

// repairFile processes one file from read to optional rewrite. The boolean
// result reports whether the file produced a report row.
func (service *Service) repairFile(filePath string, options CommandOptions) (report.RepairRow, bool) {
	contentBytes, readError := service.fileSystem.ReadFile(filePath)
	if readError != nil {
		fmt.Fprintf(service.errorWriter, readFailureNoticeTemplateConstant, filePath, readError)
		service.logger.Warn(fileSkippedLogMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(readError))
		return report.RepairRow{}, false
	}

	if !utf8.Valid(contentBytes) {
		fmt.Fprintf(service.errorWriter, invalidEncodingNoticeTemplate, filePath)
		service.logger.Warn(
			fileSkippedLogMessageConstant,
			zap.String(logFieldPathConstant, filePath),
			zap.String(logFieldReasonConstant, invalidEncodingReasonConstant),
		)
		return report.RepairRow{}, false
	}

	originalContent := string(contentBytes)

	if options.TrailingPattern != nil && !options.TrailingPattern.MatchString(originalContent) {
		if options.Debug {
			fmt.Fprintf(service.errorWriter, debugSkippedPatternTemplate, filePath)
		}
		return report.RepairRow{}, false
	}

	repairResult := balance.ApplyRepair(originalContent, options.Pair, balance.RepairOptions{
		TrimTrailingSurplus: options.TrimTrailing,
	})
	if repairResult.Outcome == balance.RepairOutcomeUnchanged || repairResult.Content == originalContent {
		return report.RepairRow{}, false
	}

	if options.DryRun {
		fmt.Fprintf(service.errorWriter, dryRunNoticeTemplateConstant, filePath)
	} else if writeError := service.writeRepairedFile(filePath, repairResult.Content); writeError != nil {
		fmt.Fprintf(service.errorWriter, writeFailureNoticeTemplateConstant, filePath, writeError)
		service.logger.Warn(fileSkippedLogMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(writeError))
		return report.RepairRow{}, false
	}

	repairRow := rewriteRow(filePath, repairResult)
	service.logger.Info(
		fileRewrittenLogMessageConstant,
		zap.String(logFieldPathConstant, filePath),
		zap.String(logFieldActionConstant, string(repairRow.Action)),
		zap.Int(logFieldDelimiterCountConstant, repairRow.DelimiterCount),
	)
	return repairRow, true
}

// writeRepairedFile preserves the original file permissions when they can be
// determined and falls back to a conventional mode otherwise.
func (service *Service) writeRepairedFile(filePath string, content string) error {
	filePermissions := fallbackFilePermissionsConstant
	if fileInfo, statError := service.fileSystem.Stat(filePath); statError == nil {
		filePermissions = fileInfo.Mode().Perm()
	}
	return service.fileSystem.WriteFile(filePath, []byte(content), filePermissions)
}

func rewriteRow(filePath string, repairResult balance.RepairResult) report.RepairRow {
	action := report.RepairActionAppended
	delimiterCount := repairResult.DelimiterDelta
	if repairResult.Outcome == balance.RepairOutcomeTrimmed {
		action = report.RepairActionTrimmed
		delimiterCount = -repairResult.DelimiterDelta
	}
	return report.RepairRow{
		Path:           filePath,
		OpenCount:      repairResult.Tally.OpenCount,
		CloseCount:     repairResult.Tally.CloseCount,
		Action:         action,
		DelimiterCount: delimiterCount,
	}
}
