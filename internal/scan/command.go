package scan

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codetidy/bracefix/internal/balance"
	"github.com/codetidy/bracefix/internal/discovery"
	"github.com/codetidy/bracefix/internal/report"
	"github.com/codetidy/bracefix/internal/utils"
)

const (
	commandUseConstant              = "scan [roots...]"
	commandShortDescriptionConstant = "Report files with unbalanced delimiter counts"
	commandLongDescriptionConstant  = "scan walks the configured roots, counts the opening and closing delimiters in every matched file, and reports files whose counts differ. It never modifies files."
	flagRootNameConstant            = "root"
	flagRootDescriptionConstant     = "Root directory to scan (repeatable)."
	flagExtensionNameConstant       = "extension"
	flagExtensionDescription        = "File name suffix to match (repeatable)."
	flagFormatNameConstant          = "format"
	flagFormatDescriptionConstant   = "Report format: text, csv, or yaml."
	flagDebugNameConstant           = "debug"
	flagDebugDescriptionConstant    = "Emit discovery diagnostics to stderr."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies persisted scan configuration.
type ConfigurationProvider func() CommandConfiguration

// DelimitersProvider supplies the configured delimiter pair.
type DelimitersProvider func() balance.PairConfiguration

// CommandBuilder assembles the scan cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	DelimitersProvider    DelimitersProvider
	Discoverer            FileDiscoverer
	FileReader            FileReader
}

// Build constructs the cobra command for the scan workflow.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().StringArray(flagRootNameConstant, nil, flagRootDescriptionConstant)
	command.Flags().StringArray(flagExtensionNameConstant, nil, flagExtensionDescription)
	command.Flags().String(flagFormatNameConstant, "", flagFormatDescriptionConstant)
	command.Flags().Bool(flagDebugNameConstant, false, flagDebugDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	service := NewService(
		builder.resolveDiscoverer(),
		builder.resolveFileReader(),
		command.OutOrStdout(),
		utils.NewFlushingWriter(command.ErrOrStderr()),
		builder.resolveLogger(),
	)

	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (CommandOptions, error) {
	configuration := builder.resolveConfiguration()

	roots, _ := command.Flags().GetStringArray(flagRootNameConstant)
	roots = append(roots, arguments...)
	if len(sanitizeValues(roots)) == 0 {
		roots = configuration.Roots
	}

	extensions, _ := command.Flags().GetStringArray(flagExtensionNameConstant)
	if len(sanitizeValues(extensions)) == 0 {
		extensions = configuration.Extensions
	}

	formatValue, _ := command.Flags().GetString(flagFormatNameConstant)
	if !command.Flags().Changed(flagFormatNameConstant) {
		formatValue = configuration.Format
	}
	parsedFormat, formatError := report.ParseFormat(formatValue)
	if formatError != nil {
		return CommandOptions{}, formatError
	}

	debugValue, _ := command.Flags().GetBool(flagDebugNameConstant)
	if !command.Flags().Changed(flagDebugNameConstant) {
		debugValue = configuration.Debug
	}

	resolvedPair, pairError := builder.resolvePair()
	if pairError != nil {
		return CommandOptions{}, pairError
	}

	return CommandOptions{
		Roots:      sanitizeValues(roots),
		Extensions: sanitizeValues(extensions),
		Format:     parsedFormat,
		Pair:       resolvedPair,
		Debug:      debugValue,
	}, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration().sanitize()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolvePair() (balance.Pair, error) {
	if builder.DelimitersProvider == nil {
		return balance.DefaultPair(), nil
	}
	return builder.DelimitersProvider().Pair()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveDiscoverer() FileDiscoverer {
	if builder.Discoverer != nil {
		return builder.Discoverer
	}
	return discovery.NewFilesystemFileDiscovererWithLogger(builder.resolveLogger())
}

func (builder *CommandBuilder) resolveFileReader() FileReader {
	if builder.FileReader != nil {
		return builder.FileReader
	}
	return osFileReader{}
}

type osFileReader struct{}

func (osFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
