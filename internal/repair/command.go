package repair

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codetidy/bracefix/internal/balance"
	"github.com/codetidy/bracefix/internal/discovery"
	"github.com/codetidy/bracefix/internal/report"
	"github.com/codetidy/bracefix/internal/utils"
)

const (
	commandUseConstant                  = "repair [roots...]"
	commandShortDescriptionConstant     = "Append missing closing delimiters to unbalanced files"
	commandLongDescriptionConstant      = "repair walks the configured roots and rewrites every matched file whose opening delimiter count exceeds its closing count, appending one closing delimiter line per missing closer. Balanced files are never touched."
	flagRootNameConstant                = "root"
	flagRootDescriptionConstant         = "Root directory to repair (repeatable)."
	flagExtensionNameConstant           = "extension"
	flagExtensionDescriptionConstant    = "File name suffix to match (repeatable)."
	flagFormatNameConstant              = "format"
	flagFormatDescriptionConstant       = "Report format: text, csv, or yaml."
	flagDryRunNameConstant              = "dry-run"
	flagDryRunDescriptionConstant       = "Report what would change without rewriting files."
	flagTrailingPatternNameConstant     = "require-trailing-pattern"
	flagTrailingPatternDescription      = "Only repair files whose content matches this regular expression."
	flagTrimTrailingNameConstant        = "trim-trailing"
	flagTrimTrailingDescriptionConstant = "Also remove surplus closing delimiter lines at end of file."
	flagDebugNameConstant               = "debug"
	flagDebugDescriptionConstant        = "Emit discovery diagnostics to stderr."
	invalidPatternErrorTemplateConstant = "invalid trailing pattern: %w"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies persisted repair configuration.
type ConfigurationProvider func() CommandConfiguration

// DelimitersProvider supplies the configured delimiter pair.
type DelimitersProvider func() balance.PairConfiguration

// CommandBuilder assembles the repair cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	DelimitersProvider    DelimitersProvider
	Discoverer            FileDiscoverer
	FileSystem            FileSystem
}

// Build constructs the cobra command for the repair workflow.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().StringArray(flagRootNameConstant, nil, flagRootDescriptionConstant)
	command.Flags().StringArray(flagExtensionNameConstant, nil, flagExtensionDescriptionConstant)
	command.Flags().String(flagFormatNameConstant, "", flagFormatDescriptionConstant)
	command.Flags().Bool(flagDryRunNameConstant, false, flagDryRunDescriptionConstant)
	command.Flags().String(flagTrailingPatternNameConstant, "", flagTrailingPatternDescription)
	command.Flags().Bool(flagTrimTrailingNameConstant, false, flagTrimTrailingDescriptionConstant)
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
		builder.FileSystem,
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

	dryRunValue, _ := command.Flags().GetBool(flagDryRunNameConstant)
	if !command.Flags().Changed(flagDryRunNameConstant) {
		dryRunValue = configuration.DryRun
	}

	trimTrailingValue, _ := command.Flags().GetBool(flagTrimTrailingNameConstant)
	if !command.Flags().Changed(flagTrimTrailingNameConstant) {
		trimTrailingValue = configuration.TrimTrailing
	}

	debugValue, _ := command.Flags().GetBool(flagDebugNameConstant)
	if !command.Flags().Changed(flagDebugNameConstant) {
		debugValue = configuration.Debug
	}

	trailingPattern, patternError := builder.resolveTrailingPattern(command, configuration)
	if patternError != nil {
		return CommandOptions{}, patternError
	}

	resolvedPair, pairError := builder.resolvePair()
	if pairError != nil {
		return CommandOptions{}, pairError
	}

	return CommandOptions{
		Roots:           sanitizeValues(roots),
		Extensions:      sanitizeValues(extensions),
		Format:          parsedFormat,
		Pair:            resolvedPair,
		DryRun:          dryRunValue,
		TrailingPattern: trailingPattern,
		TrimTrailing:    trimTrailingValue,
		Debug:           debugValue,
	}, nil
}

func (builder *CommandBuilder) resolveTrailingPattern(command *cobra.Command, configuration CommandConfiguration) (*regexp.Regexp, error) {
	patternValue, _ := command.Flags().GetString(flagTrailingPatternNameConstant)
	if !command.Flags().Changed(flagTrailingPatternNameConstant) {
		patternValue = configuration.RequireTrailingPattern
	}
	if len(patternValue) == 0 {
		return nil, nil
	}

	compiledPattern, compileError := regexp.Compile(patternValue)
	if compileError != nil {
		return nil, fmt.Errorf(invalidPatternErrorTemplateConstant, compileError)
	}
	return compiledPattern, nil
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
