package trace

const (
	tailConfigurationKeySuffixConstant = ".tail"
	defaultTailLineCountConstant       = 20
)

// CommandConfiguration captures persistent settings for the trace command.
type CommandConfiguration struct {
	Tail int `mapstructure:"tail"`
}

// DefaultCommandConfiguration returns baseline configuration values for the trace command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{Tail: defaultTailLineCountConstant}
}

// DefaultConfigurationValues exposes trace defaults keyed beneath the provided configuration prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + tailConfigurationKeySuffixConstant: defaults.Tail,
	}
}

// sanitize applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	if sanitized.Tail <= 0 {
		sanitized.Tail = defaultTailLineCountConstant
	}
	return sanitized
}
