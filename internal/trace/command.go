package trace

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codetidy/bracefix/internal/balance"
)

const (
	commandUseConstant              = "trace <file>"
	commandShortDescriptionConstant = "Show the running delimiter depth of a single file"
	commandLongDescriptionConstant  = "trace reads one file and prints the running delimiter depth over its final lines, together with the maximum depth and total delimiter counts. Use it to locate where an imbalance was introduced."
	flagTailNameConstant            = "tail"
	flagTailDescriptionConstant     = "Number of trailing lines to display (0 displays every line)."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies persisted trace configuration.
type ConfigurationProvider func() CommandConfiguration

// DelimitersProvider supplies the configured delimiter pair.
type DelimitersProvider func() balance.PairConfiguration

// CommandBuilder assembles the trace cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	DelimitersProvider    DelimitersProvider
	FileReader            FileReader
}

// Build constructs the cobra command for the trace workflow.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().Int(flagTailNameConstant, 0, flagTailDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	tailValue, _ := command.Flags().GetInt(flagTailNameConstant)
	if !command.Flags().Changed(flagTailNameConstant) {
		tailValue = configuration.Tail
	}

	resolvedPair, pairError := builder.resolvePair()
	if pairError != nil {
		return pairError
	}

	service := NewService(builder.resolveFileReader(), command.OutOrStdout())
	return service.Run(command.Context(), CommandOptions{
		FilePath: arguments[0],
		Tail:     tailValue,
		Pair:     resolvedPair,
	})
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
