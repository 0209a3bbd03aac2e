package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	integrationInfoMessageConstant         = "\"msg\":\"bracefix CLI executed\""
	integrationDebugMessageConstant        = "\"msg\":\"bracefix CLI diagnostics\""
	integrationLogLevelEnvKeyConstant      = "BRACEFIX_COMMON_LOG_LEVEL"
	integrationConfigFileNameConstant      = "config.yaml"
	integrationConfigTemplateConstant      = "common:\n  log_level: %s\n"
	integrationConfigFlagTemplateConstant  = "--config=%s"
	integrationEnvironmentPairTemplate     = "%s=%s"
	integrationSubtestNameTemplateConstant = "%d_%s"
	integrationHelpUsagePrefixConstant     = "Usage:"
	integrationHelpDescriptionSnippet      = "bracefix scans directory trees for text files with unbalanced delimiter counts"
	integrationUnbalancedContentConstant   = "export function widget() {\n  if (ready) {\n}\n"
	integrationBalancedContentConstant     = "export function widget() {\n  return 1;\n}\n"
	integrationRepairedContentConstant     = "export function widget() {\n  if (ready) {\n}\n}\n"
)

func TestCLIIntegrationLogLevels(testInstance *testing.T) {
	testCases := []struct {
		name                 string
		configurationLevel   string
		environmentLevel     string
		expectedInfoVisible  bool
		expectedDebugVisible bool
	}{
		{
			name:                 "default_info",
			configurationLevel:   "",
			environmentLevel:     "",
			expectedInfoVisible:  true,
			expectedDebugVisible: false,
		},
		{
			name:                 "config_debug",
			configurationLevel:   "debug",
			environmentLevel:     "",
			expectedInfoVisible:  true,
			expectedDebugVisible: true,
		},
		{
			name:                 "environment_error",
			configurationLevel:   "",
			environmentLevel:     "error",
			expectedInfoVisible:  false,
			expectedDebugVisible: false,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(integrationSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			arguments := []string{}
			environmentOverrides := []string{}
			tempDirectory := testInstance.TempDir()

			if len(testCase.configurationLevel) > 0 {
				configurationPath := filepath.Join(tempDirectory, integrationConfigFileNameConstant)
				configurationContent := fmt.Sprintf(integrationConfigTemplateConstant, testCase.configurationLevel)
				require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationContent), 0o600))
				arguments = append(arguments, fmt.Sprintf(integrationConfigFlagTemplateConstant, configurationPath))
			}

			if len(testCase.environmentLevel) > 0 {
				environmentOverrides = append(environmentOverrides, fmt.Sprintf(integrationEnvironmentPairTemplate, integrationLogLevelEnvKeyConstant, testCase.environmentLevel))
			}

			outputText, runError := runCLICommand(testInstance, environmentOverrides, arguments...)
			require.NoError(testInstance, runError, outputText)

			if testCase.expectedInfoVisible {
				require.Contains(testInstance, outputText, integrationInfoMessageConstant)
			} else {
				require.NotContains(testInstance, outputText, integrationInfoMessageConstant)
			}

			if testCase.expectedDebugVisible {
				require.Contains(testInstance, outputText, integrationDebugMessageConstant)
			} else {
				require.NotContains(testInstance, outputText, integrationDebugMessageConstant)
			}
		})
	}
}

func TestCLIIntegrationDisplaysHelpWhenNoArgumentsProvided(testInstance *testing.T) {
	outputText, runError := runCLICommand(testInstance, nil)
	require.NoError(testInstance, runError, outputText)
	require.Contains(testInstance, outputText, integrationHelpUsagePrefixConstant)
	require.Contains(testInstance, outputText, integrationHelpDescriptionSnippet)
}

func TestCLIIntegrationScanReportsUnbalancedFiles(testInstance *testing.T) {
	scanRootDirectory := testInstance.TempDir()
	firstBrokenPath := writeIntegrationFile(testInstance, scanRootDirectory, "first.ts", integrationUnbalancedContentConstant)
	secondBrokenPath := writeIntegrationFile(testInstance, scanRootDirectory, "second.tsx", integrationUnbalancedContentConstant)
	balancedPath := writeIntegrationFile(testInstance, scanRootDirectory, "healthy.ts", integrationBalancedContentConstant)

	outputText, runError := runCLICommand(testInstance, nil, "scan", "--root", scanRootDirectory)
	require.NoError(testInstance, runError, outputText)

	require.Contains(testInstance, outputText, firstBrokenPath)
	require.Contains(testInstance, outputText, secondBrokenPath)
	require.NotContains(testInstance, outputText, balancedPath)
	require.Contains(testInstance, outputText, "Total files with issues: 2")
}

func TestCLIIntegrationRepairIsIdempotent(testInstance *testing.T) {
	repairRootDirectory := testInstance.TempDir()
	brokenFilePath := writeIntegrationFile(testInstance, repairRootDirectory, "broken.ts", integrationUnbalancedContentConstant)

	firstOutput, firstRunError := runCLICommand(testInstance, nil, "repair", "--root", repairRootDirectory)
	require.NoError(testInstance, firstRunError, firstOutput)
	require.Contains(testInstance, firstOutput, "Total files changed: 1")

	repairedContent, readError := os.ReadFile(brokenFilePath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, integrationRepairedContentConstant, string(repairedContent))

	secondOutput, secondRunError := runCLICommand(testInstance, nil, "repair", "--root", repairRootDirectory)
	require.NoError(testInstance, secondRunError, secondOutput)
	require.Contains(testInstance, secondOutput, "Total files changed: 0")

	untouchedContent, rereadError := os.ReadFile(brokenFilePath)
	require.NoError(testInstance, rereadError)
	require.Equal(testInstance, integrationRepairedContentConstant, string(untouchedContent))
}

func TestCLIIntegrationTraceReportsLineDepths(testInstance *testing.T) {
	traceRootDirectory := testInstance.TempDir()
	tracedFilePath := writeIntegrationFile(testInstance, traceRootDirectory, "traced.ts", integrationUnbalancedContentConstant)

	outputText, runError := runCLICommand(testInstance, nil, "trace", tracedFilePath)
	require.NoError(testInstance, runError, outputText)

	require.Contains(testInstance, outputText, fmt.Sprintf("Analyzing: %s", tracedFilePath))
	require.Contains(testInstance, outputText, "Final depth: 1")
	require.Contains(testInstance, outputText, "Max depth: 2")
	require.Contains(testInstance, outputText, "Total open: 2")
	require.Contains(testInstance, outputText, "Total close: 1")
}
