package log

import (
	"fmt"
)

// InitializeStdoutLogger installs a logger that writes only to stdout,
// for local runs and tests where no Cloud Logging credentials exist.
func InitializeStdoutLogger() Log {
	if logger != nil {
		return logger
	}

	logger = &stdoutLogger{}
	return logger
}

type stdoutLogger struct{}

func (sl *stdoutLogger) Close() error {
	return nil
}

func (sl *stdoutLogger) Log(l Labeler, message string, severity Severity) {
	tag := "-"
	switch severity {
	case Debug:
		tag = "D"
	case Info:
		tag = "I"
	case Notice:
		tag = "N"
	case Warning:
		tag = "W"
	case Error:
		tag = "E"
	case Critical:
		tag = "X"
	case Alert:
		tag = "Y"
	case Emergency:
		tag = "Z"
	}
	fmt.Printf("%s [%s] %s\n", timestamp(), tag, message)
}

func (sl *stdoutLogger) Rawf(severity Severity, format string, args ...any) {
	sl.Log(nil, fmt.Sprintf(format, args...), severity)
}

func (sl *stdoutLogger) Default(l Labeler, message any) {
	sl.Defaultf(l, "%s", message)
}

func (sl *stdoutLogger) Defaultf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Default)
}

func (sl *stdoutLogger) Debug(l Labeler, message any) {
	sl.Debugf(l, "%s", message)
}

func (sl *stdoutLogger) Debugf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Debug)
}

func (sl *stdoutLogger) Info(l Labeler, message any) {
	sl.Infof(l, "%s", message)
}

func (sl *stdoutLogger) Infof(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Info)
}

func (sl *stdoutLogger) Notice(l Labeler, message any) {
	sl.Noticef(l, "%s", message)
}

func (sl *stdoutLogger) Noticef(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Notice)
}

func (sl *stdoutLogger) Warning(l Labeler, message any) {
	sl.Warningf(l, "%s", message)
}

func (sl *stdoutLogger) Warningf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Warning)
}

func (sl *stdoutLogger) Error(l Labeler, message any) {
	sl.Errorf(l, "%s", message)
}

func (sl *stdoutLogger) Errorf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Error)
}

func (sl *stdoutLogger) Critical(l Labeler, message any) {
	sl.Criticalf(l, "%s", message)
}

func (sl *stdoutLogger) Criticalf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Critical)
}

func (sl *stdoutLogger) Alert(l Labeler, message any) {
	sl.Alertf(l, "%s", message)
}

func (sl *stdoutLogger) Alertf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Alert)
}

func (sl *stdoutLogger) Emergency(l Labeler, message any) {
	sl.Emergencyf(l, "%s", message)
}

func (sl *stdoutLogger) Emergencyf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Emergency)
}
