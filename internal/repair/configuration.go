package repair

import "strings"

const (
	rootsConfigurationKeySuffixConstant           = ".roots"
	extensionsConfigurationKeySuffixConstant      = ".extensions"
	formatConfigurationKeySuffixConstant          = ".format"
	dryRunConfigurationKeySuffixConstant          = ".dry_run"
	trailingPatternConfigurationKeySuffixConstant = ".require_trailing_pattern"
	trimTrailingConfigurationKeySuffixConstant    = ".trim_trailing"
	debugConfigurationKeySuffixConstant           = ".debug"
	defaultFormatValueConstant                    = "text"
)

// defaultExtensionValues lists the file suffixes repaired when none are configured.
var defaultExtensionValues = []string{".ts", ".tsx"}

// CommandConfiguration captures persistent settings for the repair command.
type CommandConfiguration struct {
	Roots                  []string `mapstructure:"roots"`
	Extensions             []string `mapstructure:"extensions"`
	Format                 string   `mapstructure:"format"`
	DryRun                 bool     `mapstructure:"dry_run"`
	RequireTrailingPattern string   `mapstructure:"require_trailing_pattern"`
	TrimTrailing           bool     `mapstructure:"trim_trailing"`
	Debug                  bool     `mapstructure:"debug"`
}

// DefaultCommandConfiguration returns baseline configuration values for the repair command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Roots:                  nil,
		Extensions:             append([]string{}, defaultExtensionValues...),
		Format:                 defaultFormatValueConstant,
		DryRun:                 false,
		RequireTrailingPattern: "",
		TrimTrailing:           false,
		Debug:                  false,
	}
}

// DefaultConfigurationValues exposes repair defaults keyed beneath the provided configuration prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + rootsConfigurationKeySuffixConstant:           defaults.Roots,
		configurationKeyPrefix + extensionsConfigurationKeySuffixConstant:      defaults.Extensions,
		configurationKeyPrefix + formatConfigurationKeySuffixConstant:          defaults.Format,
		configurationKeyPrefix + dryRunConfigurationKeySuffixConstant:          defaults.DryRun,
		configurationKeyPrefix + trailingPatternConfigurationKeySuffixConstant: defaults.RequireTrailingPattern,
		configurationKeyPrefix + trimTrailingConfigurationKeySuffixConstant:    defaults.TrimTrailing,
		configurationKeyPrefix + debugConfigurationKeySuffixConstant:           defaults.Debug,
	}
}

// sanitize trims whitespace and removes empty configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Roots = sanitizeValues(configuration.Roots)
	sanitized.Extensions = sanitizeValues(configuration.Extensions)
	sanitized.Format = strings.TrimSpace(configuration.Format)
	sanitized.RequireTrailingPattern = strings.TrimSpace(configuration.RequireTrailingPattern)
	return sanitized
}

func sanitizeValues(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	if len(sanitized) == 0 {
		return nil
	}
	return sanitized
}
