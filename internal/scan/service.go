package scan

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/codetidy/bracefix/internal/balance"
	"github.com/codetidy/bracefix/internal/report"
)

const (
	defaultRootPathConstant           = "."
	debugDiscoveredTemplateConstant   = "DEBUG: discovered %d candidate files under: %s\n"
	readFailureNoticeTemplateConstant = "Error reading %s: %v\n"
	invalidEncodingNoticeTemplate     = "Error reading %s: content is not valid UTF-8\n"
	fileSkippedLogMessageConstant     = "file skipped"
	logFieldPathConstant              = "path"
	logFieldReasonConstant            = "reason"
	invalidEncodingReasonConstant     = "invalid_utf8"
)

// Service coordinates file discovery and imbalance reporting.
type Service struct {
	discoverer   FileDiscoverer
	fileReader   FileReader
	outputWriter io.Writer
	errorWriter  io.Writer
	logger       *zap.Logger
}

// NewService constructs a Service using the provided dependencies.
func NewService(discoverer FileDiscoverer, fileReader FileReader, outputWriter io.Writer, errorWriter io.Writer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		discoverer:   discoverer,
		fileReader:   fileReader,
		outputWriter: outputWriter,
		errorWriter:  errorWriter,
		logger:       logger,
	}
}

// Run scans every matched file and reports delimiter count imbalances.
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

	var scanRows []report.ScanRow
	for _, filePath := range discoveredFiles {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		fileContent, readable := service.readTextFile(filePath)
		if !readable {
			continue
		}

		tally := balance.Count(fileContent, options.Pair)
		if tally.Balanced() {
			continue
		}

		scanRows = append(scanRows, imbalanceRow(filePath, tally))
	}

	orderRowsByImbalance(scanRows)

	return report.WriteScanReport(service.outputWriter, options.Format, scanRows)
}

// readTextFile loads a file and rejects content that is not valid UTF-8. Both
// failure modes are per-file notices, never fatal to the run.
func (service *Service) readTextFile(filePath string) (string, bool) {
	contentBytes, readError := service.fileReader.ReadFile(filePath)
	if readError != nil {
		fmt.Fprintf(service.errorWriter, readFailureNoticeTemplateConstant, filePath, readError)
		service.logger.Warn(fileSkippedLogMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(readError))
		return "", false
	}

	if !utf8.Valid(contentBytes) {
		fmt.Fprintf(service.errorWriter, invalidEncodingNoticeTemplate, filePath)
		service.logger.Warn(
			fileSkippedLogMessageConstant,
			zap.String(logFieldPathConstant, filePath),
			zap.String(logFieldReasonConstant, invalidEncodingReasonConstant),
		)
		return "", false
	}

	return string(contentBytes), true
}

func imbalanceRow(filePath string, tally balance.Tally) report.ScanRow {
	status := report.ImbalanceStatusMissing
	if tally.Difference() < 0 {
		status = report.ImbalanceStatusExtra
	}
	return report.ScanRow{
		Path:       filePath,
		OpenCount:  tally.OpenCount,
		CloseCount: tally.CloseCount,
		Difference: tally.Difference(),
		Status:     status,
	}
}

// orderRowsByImbalance sorts by descending absolute difference, then path,
// matching the severity-first listing the report consumers expect.
func orderRowsByImbalance(rows []report.ScanRow) {
	sort.SliceStable(rows, func(first int, second int) bool {
		firstMagnitude := absoluteValue(rows[first].Difference)
		secondMagnitude := absoluteValue(rows[second].Difference)
		if firstMagnitude == secondMagnitude {
			return rows[first].Path < rows[second].Path
		}
		return firstMagnitude > secondMagnitude
	})
}

func absoluteValue(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
