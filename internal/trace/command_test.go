package trace_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codetidy/bracefix/internal/trace"
)

func buildTraceCommandOutput(testInstance *testing.T, configuredTail int, commandArguments []string) string {
	testInstance.Helper()

	fileReader := stubFileReader{contents: map[string][]byte{
		"/tmp/app/parser.ts": []byte("class Parser {\n  parse() {\n    body\n  }\n"),
	}}

	builder := trace.CommandBuilder{
		ConfigurationProvider: func() trace.CommandConfiguration {
			return trace.CommandConfiguration{Tail: configuredTail}
		},
		FileReader: fileReader,
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetContext(context.Background())
	command.SetArgs(commandArguments)
	outputBuffer := &strings.Builder{}
	command.SetOut(outputBuffer)
	command.SetErr(&strings.Builder{})

	require.NoError(testInstance, command.Execute())
	return outputBuffer.String()
}

func TestCommandTailDefaultsToConfiguredValue(testInstance *testing.T) {
	outputText := buildTraceCommandOutput(testInstance, 2, []string{"/tmp/app/parser.ts"})

	require.NotContains(testInstance, outputText, "Line 1:")
	require.Contains(testInstance, outputText, "Line 4: depth=1")
	require.Contains(testInstance, outputText, "Line 5: depth=1")
}

func TestCommandExplicitZeroTailDisplaysEveryLine(testInstance *testing.T) {
	outputText := buildTraceCommandOutput(testInstance, 2, []string{"/tmp/app/parser.ts", "--tail", "0"})

	require.Contains(testInstance, outputText, "Line 1: depth=1")
	require.Contains(testInstance, outputText, "Line 3: depth=2")
	require.Contains(testInstance, outputText, "Line 5: depth=1")
}
