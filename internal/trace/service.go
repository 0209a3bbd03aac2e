package trace

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/codetidy/bracefix/internal/balance"
)

const (
	maximumLineExcerptLengthConstant = 80
	traceHeaderTemplateConstant      = "Analyzing: %s\n"
	traceLineTemplateConstant        = "Line %d: depth=%d, content: %s\n"
	traceFinalDepthTemplateConstant  = "Final depth: %d\n"
	traceMaxDepthTemplateConstant    = "Max depth: %d\n"
	traceTotalOpenTemplateConstant   = "Total open: %d\n"
	traceTotalCloseTemplateConstant  = "Total close: %d\n"
	readFailureErrorTemplateConstant = "unable to read %s: %w"
	invalidEncodingErrorTemplate     = "%s: content is not valid UTF-8"
)

// FileReader reads full file contents for tracing.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// CommandOptions captures the configurable parameters for the trace command.
type CommandOptions struct {
	FilePath string
	Tail     int
	Pair     balance.Pair
}

// Service renders delimiter depth diagnostics for a single file.
type Service struct {
	fileReader   FileReader
	outputWriter io.Writer
}

// NewService constructs a Service using the provided dependencies.
func NewService(fileReader FileReader, outputWriter io.Writer) *Service {
	return &Service{fileReader: fileReader, outputWriter: outputWriter}
}

// Run traces the delimiter depth of the requested file. Unlike the bulk
// commands, a read failure here is the command's result and is returned.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}

	contentBytes, readError := service.fileReader.ReadFile(options.FilePath)
	if readError != nil {
		return fmt.Errorf(readFailureErrorTemplateConstant, options.FilePath, readError)
	}
	if !utf8.Valid(contentBytes) {
		return fmt.Errorf(invalidEncodingErrorTemplate, options.FilePath)
	}

	traceResult := balance.Trace(string(contentBytes), options.Pair)

	fmt.Fprintf(service.outputWriter, traceHeaderTemplateConstant, options.FilePath)
	for _, tracedLine := range traceResult.TailLines(options.Tail) {
		fmt.Fprintf(service.outputWriter, traceLineTemplateConstant, tracedLine.LineNumber, tracedLine.Depth, excerpt(tracedLine.Text))
	}
	fmt.Fprintf(service.outputWriter, traceFinalDepthTemplateConstant, traceResult.FinalDepth)
	fmt.Fprintf(service.outputWriter, traceMaxDepthTemplateConstant, traceResult.MaxDepth)
	fmt.Fprintf(service.outputWriter, traceTotalOpenTemplateConstant, traceResult.Tally.OpenCount)
	fmt.Fprintf(service.outputWriter, traceTotalCloseTemplateConstant, traceResult.Tally.CloseCount)

	return nil
}

func excerpt(lineText string) string {
	lineRunes := []rune(lineText)
	if len(lineRunes) <= maximumLineExcerptLengthConstant {
		return lineText
	}
	return string(lineRunes[:maximumLineExcerptLengthConstant])
}
