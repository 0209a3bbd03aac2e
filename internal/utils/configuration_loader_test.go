package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codetidy/bracefix/internal/utils"
)

const (
	testConfigurationNameConstant       = "config"
	testConfigurationTypeConstant       = "yaml"
	testEnvironmentPrefixConstant       = "BRACEFIXTEST"
	testConfigurationFileNameConstant   = "config.yaml"
	testConfigurationFileContent        = "common:\n  log_level: debug\n"
	testEmbeddedConfigurationContent    = "common:\n  log_level: warn\n  log_format: console\n"
	testEnvironmentVariableNameConstant = "BRACEFIXTEST_COMMON_LOG_LEVEL"
)

type testLoaderConfiguration struct {
	Common struct {
		LogLevel  string `mapstructure:"log_level"`
		LogFormat string `mapstructure:"log_format"`
	} `mapstructure:"common"`
}

func TestLoadConfigurationPrecedence(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(temporaryDirectory, testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(testConfigurationFileContent), 0o644))

	testInstance.Run("defaults_apply_without_file", func(subTest *testing.T) {
		loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{temporaryDirectory})

		var loadedConfiguration testLoaderConfiguration
		_, loadError := loader.LoadConfiguration("", map[string]any{"common.log_format": "structured"}, &loadedConfiguration)
		require.NoError(subTest, loadError)
		require.Equal(subTest, "structured", loadedConfiguration.Common.LogFormat)
	})

	testInstance.Run("file_overrides_defaults", func(subTest *testing.T) {
		loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{temporaryDirectory})

		var loadedConfiguration testLoaderConfiguration
		loadedMetadata, loadError := loader.LoadConfiguration(configurationFilePath, map[string]any{"common.log_level": "info"}, &loadedConfiguration)
		require.NoError(subTest, loadError)
		require.Equal(subTest, "debug", loadedConfiguration.Common.LogLevel)
		require.Equal(subTest, configurationFilePath, loadedMetadata.ConfigFileUsed)
	})

	testInstance.Run("environment_overrides_file", func(subTest *testing.T) {
		subTest.Setenv(testEnvironmentVariableNameConstant, "error")

		loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{temporaryDirectory})

		var loadedConfiguration testLoaderConfiguration
		_, loadError := loader.LoadConfiguration(configurationFilePath, map[string]any{"common.log_level": "info"}, &loadedConfiguration)
		require.NoError(subTest, loadError)
		require.Equal(subTest, "error", loadedConfiguration.Common.LogLevel)
	})

	testInstance.Run("embedded_configuration_merged_first", func(subTest *testing.T) {
		loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{subTest.TempDir()})
		loader.SetEmbeddedConfiguration([]byte(testEmbeddedConfigurationContent), testConfigurationTypeConstant)

		var loadedConfiguration testLoaderConfiguration
		_, loadError := loader.LoadConfiguration("", nil, &loadedConfiguration)
		require.NoError(subTest, loadError)
		require.Equal(subTest, "warn", loadedConfiguration.Common.LogLevel)
		require.Equal(subTest, "console", loadedConfiguration.Common.LogFormat)
	})

	testInstance.Run("missing_explicit_file_fails", func(subTest *testing.T) {
		loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

		var loadedConfiguration testLoaderConfiguration
		_, loadError := loader.LoadConfiguration(filepath.Join(temporaryDirectory, "absent.yaml"), nil, &loadedConfiguration)
		require.Error(subTest, loadError)
	})
}
