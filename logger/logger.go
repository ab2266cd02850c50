package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Logger allows you to control logging with message levels and subsystem controls.
// Use the "Include" flags in the Format field to specify which fields should be included in each
//   log message.
// Subsystem log entries can be enabled per subsystem.
// For example the parent package can specify if they want to see logs from a subsystem and how
//   they want to see them.
//
// Sample Setup:
// // Create a log config and set it up.
// logConfig := logger.NewDevelopmentConfig()
// // Attach the log config to the context.
// ctx := logger.ContextWithLogConfig(context.Background(), logConfig)
//

type Level int

const (
	LevelDebug   Level = -2
	LevelVerbose Level = -1
	LevelInfo    Level = 0
	LevelWarn    Level = 1
	LevelError   Level = 2
	LevelFatal   Level = 3 // Calls exit
	LevelPanic   Level = 4 // Calls panic
)

// Log entry formatting (which prefix fields to include)
const (
	IncludeDate      = 0x01 // date in the local time zone: 2018/01/01
	IncludeTime      = 0x02 // time in the local time zone: 06:54:32
	IncludeMicro     = 0x04 // microseconds .123123
	IncludeCaller    = 0x08 // file name and line number
	IncludeSystem    = 0x10 // system name
	IncludeLevel     = 0x20 // level of log entry
	IncludeTimeStamp = 0x40 // unix timestamp
)

// Returns a context with the logging config attached.
func ContextWithLogConfig(ctx context.Context, config *Config) context.Context {
	return context.WithValue(ctx, configKey, config)
}

func ContextWithNoLogger(ctx context.Context) context.Context {
	return context.WithValue(ctx, configKey, &emptyConfig)
}

// ContextWithLogger attaches a new Config built from the given parameters.
func ContextWithLogger(ctx context.Context, isDevelopment, isText bool, filePath string) context.Context {
	return ContextWithLogConfig(ctx, NewConfig(isDevelopment, isText, filePath))
}

// Returns a context with the logging subsystem attached.
func ContextWithLogSubSystem(ctx context.Context, subsystem string) context.Context {
	return context.WithValue(ctx, subSystemKey, subsystem)
}

// Returns a context with the logging subsystem cleared. Used when a context is passed back from a
//   subsystem.
func ContextWithOutLogSubSystem(ctx context.Context) context.Context {
	return context.WithValue(ctx, subSystemKey, nil)
}

// Returns a context with a trace value attached. It is included in every log entry written with
//   this context or one derived from it.
func ContextWithLogTrace(ctx context.Context, trace string) context.Context {
	return context.WithValue(ctx, traceKey, trace)
}

// ContextWithLogFields attaches fields that are included in every subsequent log entry written
//   with this context or one derived from it, in addition to any passed directly to the call.
func ContextWithLogFields(ctx context.Context, fields ...Field) context.Context {
	merged := append(append([]Field{}, getContextFields(ctx)...), fields...)
	return context.WithValue(ctx, fieldsKey, merged)
}

func getContextFields(ctx context.Context) []Field {
	value := ctx.Value(fieldsKey)
	if value == nil {
		return nil
	}

	fields, ok := value.([]Field)
	if !ok {
		return nil
	}

	return fields
}

// GetCaller returns the depth value to pass to LogDepth so the log entry's caller annotation
// attributes to the function skip frames above the caller of GetCaller.
func GetCaller(skip int) int {
	return skip
}

// Log an entry to the main Outputs if:
//   There is no subsystem specified or if the current subsystem is included in the attached
//     Config.IncludedSubSystems.
//   And the level is equal to or above the specified minimum logging level.
// Logs to the Config.SubSystems if the level is above minimum.
func Log(ctx context.Context, level Level, format string, values ...interface{}) error {
	return logDepth(ctx, level, 1, nil, format, values...)
}

// Debug adds a debug level entry to the log.
func Debug(ctx context.Context, format string, values ...interface{}) error {
	return logDepth(ctx, LevelDebug, 1, nil, format, values...)
}

// Verbose adds a verbose level entry to the log.
func Verbose(ctx context.Context, format string, values ...interface{}) error {
	return logDepth(ctx, LevelVerbose, 1, nil, format, values...)
}

// Info adds a info level entry to the log.
func Info(ctx context.Context, format string, values ...interface{}) error {
	return logDepth(ctx, LevelInfo, 1, nil, format, values...)
}

// Warn adds a warn level entry to the log.
func Warn(ctx context.Context, format string, values ...interface{}) error {
	return logDepth(ctx, LevelWarn, 1, nil, format, values...)
}

// Error adds a error level entry to the log.
func Error(ctx context.Context, format string, values ...interface{}) error {
	return logDepth(ctx, LevelError, 1, nil, format, values...)
}

// Fatal adds a fatal level entry to the log and then calls os.Exit(1).
func Fatal(ctx context.Context, format string, values ...interface{}) error {
	return logDepth(ctx, LevelFatal, 1, nil, format, values...)
}

// Panic adds a panic level entry to the log and then calls panic().
func Panic(ctx context.Context, format string, values ...interface{}) error {
	return logDepth(ctx, LevelPanic, 1, nil, format, values...)
}

// InfoWithFields adds an info level entry to the log with extra structured fields.
func InfoWithFields(ctx context.Context, fields []Field, format string, values ...interface{}) error {
	return logDepth(ctx, LevelInfo, 1, fields, format, values...)
}

// Same as Log, but the number of levels above the current call in the stack from which to get the
//   file name/line of code can be specified as depth.
func LogDepth(ctx context.Context, level Level, depth int, format string, values ...interface{}) error {
	return logDepth(ctx, level, depth+1, nil, format, values...)
}

// LogDepthWithFields is LogDepth with extra structured fields attached to just this entry.
func LogDepthWithFields(ctx context.Context, level Level, depth int, fields []Field, format string,
	values ...interface{}) error {

	return logDepth(ctx, level, depth+1, fields, format, values...)
}

func getTrace(ctx context.Context) string {
	traceValue := ctx.Value(traceKey)
	if traceValue == nil {
		return ""
	}

	trace, ok := traceValue.(string)
	if !ok {
		return ""
	}

	return trace
}

func logDepth(ctx context.Context, level Level, depth int, fields []Field, format string,
	values ...interface{}) error {

	// Fatal entries exit and panic entries panic once the entry is written.
	switch level {
	case LevelFatal:
		defer os.Exit(1)
	case LevelPanic:
		defer panic(fmt.Sprintf(format, values...))
	}

	configValue := ctx.Value(configKey)
	if configValue == nil {
		configValue = &DefaultConfig
	}

	config, ok := configValue.(*Config)
	if !ok {
		return errors.New("Invalid Config Type")
	}

	if config == &emptyConfig {
		return nil
	}

	// A field passed to the call is dropped when a context field has the same name.
	contextFields := getContextFields(ctx)
	allFields := append([]Field{}, contextFields...)
	for _, field := range fields {
		duplicate := false
		for _, existing := range contextFields {
			if existing.Name() == field.Name() {
				duplicate = true
				break
			}
		}
		if !duplicate {
			allFields = append(allFields, field)
		}
	}
	if trace := getTrace(ctx); trace != "" {
		allFields = append(allFields, String("trace", trace))
	}

	config.mutex.Lock()
	defer config.mutex.Unlock()

	subsystem := "Main"
	subsystemValue := ctx.Value(subSystemKey)
	if subsystemValue != nil {
		var ok bool
		subsystem, ok = subsystemValue.(string)
		if !ok {
			return errors.New("Invalid SubSystem Type")
		}

		// Log to subsystem specific config
		subConfig, subExists := config.SubSystems[subsystem]
		if subExists {
			if err := subConfig.writeEntry(level, depth+1, allFields, format, values...); err != nil {
				return err
			}
		}

		include, includeExists := config.IncludedSubSystems[subsystem]
		if !includeExists || !include {
			return nil // Don't log to main config
		}
	}

	// Log to main config
	return config.Main.writeEntry(level, depth+1, allFields, format, values...)
}

// Keys for context key/pairs
type loggerkey int

const (
	configKey    loggerkey = 1
	subSystemKey loggerkey = 2
	traceKey     loggerkey = 3
	fieldsKey    loggerkey = 4
)
