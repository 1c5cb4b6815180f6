package easysteam

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"os"
	"strings"
)

// Logger is the generic interface for log recording.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Tracef(format string, args ...interface{})
}

// DefaultLogger is the default logger instance for this package.
// DefaultLogger uses logrus with a TextFormatter.
type DefaultLogger struct {
	rawLogger *logrus.Entry
}

var _ Logger = &DefaultLogger{}

// Log is the instance of Logger interface.
var Log Logger = newLogger()

func newLogger() *DefaultLogger {
	lg := logrus.New()
	lg.SetOutput(os.Stdout)
	lg.SetLevel(logrus.TraceLevel)
	lg.SetFormatter(NewTextFormatter())
	return &DefaultLogger{
		rawLogger: lg.WithField("scope", "easysteam"),
	}
}

// Errorf implements Logger Errorf method.
func (d *DefaultLogger) Errorf(format string, args ...interface{}) {
	d.rawLogger.Errorf(format, args...)
}

// Warnf implements Logger Warnf method.
func (d *DefaultLogger) Warnf(format string, args ...interface{}) {
	d.rawLogger.Warnf(format, args...)
}

// Tracef implements Logger Tracef method.
func (d *DefaultLogger) Tracef(format string, args ...interface{}) {
	d.rawLogger.Tracef(format, args...)
}

// MuteLogger is the empty logger instance.
type MuteLogger struct{}

var _ Logger = &MuteLogger{}

// Errorf is an empty implementation to Logger Errorf method.
func (m *MuteLogger) Errorf(format string, args ...interface{}) {}

// Warnf is an empty implementation to Logger Warnf method.
func (m *MuteLogger) Warnf(format string, args ...interface{}) {}

// Tracef is an empty implementation to Logger Tracef method.
func (m *MuteLogger) Tracef(format string, args ...interface{}) {}

// SetLogger sets the package logger.
func SetLogger(lg Logger) {
	Log = lg
}

// TextFormatter renders logrus entries as a single colored line:
// 	LEVEL [time] [scope] message
type TextFormatter struct {
	WithColor  bool
	TimeFormat string
}

var _ logrus.Formatter = &TextFormatter{}

// NewTextFormatter creates a TextFormatter with colors enabled.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		WithColor:  true,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
}

func (f *TextFormatter) formatLevel(level logrus.Level) string {
	levelTxt := fmt.Sprintf("%-7s", strings.ToUpper(level.String())) // align level
	if f.WithColor {
		// @see https://en.wikipedia.org/wiki/ANSI_escape_code for colors code
		var levelColor int
		switch level {
		case logrus.DebugLevel, logrus.TraceLevel:
			levelColor = 37 // gray
		case logrus.WarnLevel:
			levelColor = 33 // yellow
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			levelColor = 31 // red
		default:
			levelColor = 34 // blue
		}
		levelTxt = fmt.Sprintf("\u001B[%dm%s", levelColor, levelTxt)
	}
	return levelTxt
}

// Format implements the logrus.Formatter Format method.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(f.formatLevel(entry.Level))
	sb.WriteString(fmt.Sprintf(" [%s]", entry.Time.Format(f.TimeFormat)))
	if scope, _ := entry.Data["scope"].(string); scope != "" {
		sb.WriteString(fmt.Sprintf(" [%s]", scope))
	}
	if entry.Message != "" {
		sb.WriteString(" " + entry.Message)
	}
	if f.WithColor {
		sb.WriteString("\u001B[0m")
	}
	sb.WriteString("\n")
	return []byte(sb.String()), nil
}
