// internal/infra/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"exam_results_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

const serviceName = "exam_results_bot"

// Log is the global logger instance
var Log = logrus.New()

// Init configures the global logger to write to stdout.
func Init(cfg *config.AppConfig) {
	InitWithOutput(cfg, os.Stdout)
}

// InitWithOutput configures the global logger to write to out. The CLI passes stderr
// so reports on stdout stay clean.
func InitWithOutput(cfg *config.AppConfig, out io.Writer) {
	Log.SetOutput(out)
	Log.ReplaceHooks(make(logrus.LevelHooks))
	Log.AddHook(&defaultFieldsHook{fields: logrus.Fields{
		"service": serviceName,
		"env":     environment(cfg),
	}})
	Log.SetFormatter(formatterFor(environment(cfg)))

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		Log.Warnf("Invalid log level '%s', defaulting to 'info'", cfg.LogLevel)
	} else {
		Log.SetLevel(level)
	}
	Log.WithField("level", Log.GetLevel().String()).Debug("Logger configured")
}

// Get returns the configured global logger.
func Get() *logrus.Logger {
	return Log
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

func environment(cfg *config.AppConfig) string {
	env := strings.ToLower(cfg.Environment)
	if env == "" {
		return "development"
	}
	return env
}

// formatterFor emits JSON where logs are shipped and readable text elsewhere.
func formatterFor(env string) logrus.Formatter {
	switch env {
	case "production", "staging":
		return &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
	default:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"}
	}
}

// defaultFieldsHook stamps every entry with fields it does not already carry.
type defaultFieldsHook struct {
	fields logrus.Fields
}

func (h *defaultFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *defaultFieldsHook) Fire(e *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := e.Data[k]; !ok {
			e.Data[k] = v
		}
	}
	return nil
}
