// Package logging configures the logrus logger used by the lvlinear CLI and
// adapts container hooks into log entries.
package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlinear/internal/config"
	"github.com/katalvlaran/lvlinear/vector"
)

// New returns a logger writing to out, formatted and levelled from v.
// An unparsable level falls back to info and is reported as a warning.
func New(v *viper.Viper, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if v.GetBool(config.KeyLogJSON) {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	lvl := v.GetString(config.KeyLogLevel)
	parsed, err := logrus.ParseLevel(lvl)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	if err != nil {
		log.WithField("level", lvl).Warn("unknown log level, using info")
	}

	return log
}

// WithRun tags every entry of one CLI invocation with a fresh run id.
func WithRun(log *logrus.Logger) *logrus.Entry {
	return log.WithField("run", uuid.NewString())
}

// ResizeHook returns a vector.WithOnResize callback that logs every
// reallocation at debug level.
func ResizeHook(entry *logrus.Entry) func(vector.ResizeEvent) {
	return func(e vector.ResizeEvent) {
		entry.WithFields(logrus.Fields{
			"action": e.Action.String(),
			"from":   e.From,
			"to":     e.To,
			"size":   e.Size,
		}).Debug("resize")
	}
}
