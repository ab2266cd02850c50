package logger

import "sync"

// Config defines the logging configuration for the context it is attached to.
type Config struct {
	Active             systemConfig
	Main               *systemConfig
	IncludedSubSystems map[string]bool          // If true, log in main log
	SubSystems         map[string]*systemConfig // SubSystem specific loggers

	mutex sync.Mutex
}

// NewConfig creates a config with a single main logger. isDevelopment lowers the minimum level to
// verbose. isText switches the output format from JSON to tab delimited. filePath, if non-empty,
// writes to that file instead of stderr.
func NewConfig(isDevelopment, isText bool, filePath string) *Config {
	result := &Config{
		IncludedSubSystems: make(map[string]bool),
		SubSystems:         make(map[string]*systemConfig),
	}

	main, err := newSystemConfig(isDevelopment, isText, filePath)
	if err != nil {
		main, _ = newEmptySystemConfig()
	}

	result.Main = &main
	result.Active = main
	return result
}

// NewProductionLogger creates a system logger with production defaults: info level and above,
// JSON formatted, written to stderr.
func NewProductionLogger() (*systemConfig, error) {
	result, err := newSystemConfig(false, false, "")
	return &result, err
}

// NewProductionTextLogger is NewProductionLogger with tab delimited text output.
func NewProductionTextLogger() (*systemConfig, error) {
	result, err := newSystemConfig(false, true, "")
	return &result, err
}

// NewDevelopmentLogger creates a system logger with development defaults: verbose level and
// above, JSON formatted, written to stderr.
func NewDevelopmentLogger() (*systemConfig, error) {
	result, err := newSystemConfig(true, false, "")
	return &result, err
}

// NewDevelopmentTextLogger is NewDevelopmentLogger with tab delimited text output.
func NewDevelopmentTextLogger() (*systemConfig, error) {
	result, err := newSystemConfig(true, true, "")
	return &result, err
}

// NewEmptyLogger creates a system logger that discards every entry.
func NewEmptyLogger() (*systemConfig, error) {
	result, err := newEmptySystemConfig()
	return &result, err
}

// NewProductionConfig creates a new config with default production values.
//   Logs info level and above to stderr.
func NewProductionConfig() *Config {
	result := Config{
		IncludedSubSystems: make(map[string]bool),
		SubSystems:         make(map[string]*systemConfig),
	}

	result.Main, _ = NewProductionLogger()
	result.Active = *result.Main
	return &result
}

// NewProductionTextConfig creates a new config with default production values.
//   Logs info level and above to stderr.
func NewProductionTextConfig() *Config {
	result := Config{
		IncludedSubSystems: make(map[string]bool),
		SubSystems:         make(map[string]*systemConfig),
	}

	result.Main, _ = NewProductionTextLogger()
	result.Active = *result.Main
	return &result
}

// NewDevelopmentConfig creates a new config with default development values.
//   Logs verbose level and above to stderr.
func NewDevelopmentConfig() *Config {
	result := Config{
		IncludedSubSystems: make(map[string]bool),
		SubSystems:         make(map[string]*systemConfig),
	}

	result.Main, _ = NewDevelopmentLogger()
	result.Active = *result.Main
	return &result
}

// NewDevelopmentTextConfig creates a new config with default development values.
//   Logs verbose level and above to stderr.
func NewDevelopmentTextConfig() *Config {
	result := Config{
		IncludedSubSystems: make(map[string]bool),
		SubSystems:         make(map[string]*systemConfig),
	}

	result.Main, _ = NewDevelopmentTextLogger()
	result.Active = *result.Main
	return &result
}

// NewEmptyConfig creates a new config that doesn't log.
func NewEmptyConfig() *Config {
	result := Config{
		IncludedSubSystems: make(map[string]bool),
		SubSystems:         make(map[string]*systemConfig),
	}

	result.Main, _ = NewEmptyLogger()
	result.Active = *result.Main
	return &result
}

// EnableSubSystem enables a subsytem to log to the main log
func (config *Config) EnableSubSystem(subsystem string) {
	config.IncludedSubSystems[subsystem] = true
}

// emptyConfig is the sentinel attached by ContextWithNoLogger; LogDepth checks for it by pointer
// identity and returns immediately without taking the mutex.
var emptyConfig Config

// DefaultConfig is used when a context carries no Config at all.
var DefaultConfig = *NewProductionConfig()
