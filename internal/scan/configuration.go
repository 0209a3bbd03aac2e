package scan

import "strings"

const (
	rootsConfigurationKeySuffixConstant      = ".roots"
	extensionsConfigurationKeySuffixConstant = ".extensions"
	formatConfigurationKeySuffixConstant     = ".format"
	debugConfigurationKeySuffixConstant      = ".debug"
	defaultFormatValueConstant               = "text"
)

// defaultExtensionValues lists the file suffixes scanned when none are configured.
var defaultExtensionValues = []string{".ts", ".tsx"}

// CommandConfiguration captures persistent settings for the scan command.
type CommandConfiguration struct {
	Roots      []string `mapstructure:"roots"`
	Extensions []string `mapstructure:"extensions"`
	Format     string   `mapstructure:"format"`
	Debug      bool     `mapstructure:"debug"`
}

// DefaultCommandConfiguration returns baseline configuration values for the scan command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Roots:      nil,
		Extensions: append([]string{}, defaultExtensionValues...),
		Format:     defaultFormatValueConstant,
		Debug:      false,
	}
}

// DefaultConfigurationValues exposes scan defaults keyed beneath the provided configuration prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + rootsConfigurationKeySuffixConstant:      defaults.Roots,
		configurationKeyPrefix + extensionsConfigurationKeySuffixConstant: defaults.Extensions,
		configurationKeyPrefix + formatConfigurationKeySuffixConstant:     defaults.Format,
		configurationKeyPrefix + debugConfigurationKeySuffixConstant:      defaults.Debug,
	}
}

// sanitize trims whitespace and removes empty configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Roots = sanitizeValues(configuration.Roots)
	sanitized.Extensions = sanitizeValues(configuration.Extensions)
	sanitized.Format = strings.TrimSpace(configuration.Format)
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
