package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"weather-stats/pkg/logger"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// reportedZones are the environments whose errors reach Sentry.
var reportedZones = map[string]bool{
	"prod":        true,
	"production":  true,
	"dev":         true,
	"development": true,
}

// SentryHook is a log sink that forwards error-level JSON lines to Sentry.
type SentryHook struct {
	appZone string
	appName string
	l       *logger.Logger
	capture func(event *sentry.Event) *sentry.EventID
}

func NewSentryHook(appZone, appName string, isDebug bool, dsn string) (*SentryHook, error) {
	if dsn == "" {
		return nil, errors.New("sentry DSN is empty")
	}

	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appZone,
			MaxErrorDepth:    _sentryMaxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {
		return nil, errors.Wrap(err, "sentry init")
	}

	return newSentryHook(appZone, appName, sentry.CaptureEvent), nil
}

func newSentryHook(appZone, appName string, capture func(event *sentry.Event) *sentry.EventID) *SentryHook {
	return &SentryHook{
		appZone: appZone,
		appName: appName,
		capture: capture,
	}
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

type logLine struct {
	Level      string `json:"level"`
	AppName    string `json:"app_name"`
	AppZone    string `json:"app_zone"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

// Write never fails so that a broken hook cannot block the other log sinks.
func (h *SentryHook) Write(p []byte) (n int, err error) {
	if !reportedZones[h.appZone] {
		return len(p), nil
	}

	var t logLine
	if err := json.Unmarshal(p, &t); err != nil {
		h.report(errors.Wrap(err, "[SentryHook] json.Unmarshal data"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(t.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}

	if len(t.Message) == 0 || level < zapcore.ErrorLevel {
		return len(p), nil
	}

	timestamp, _ := time.ParseInLocation("2006-01-02T15-04-05.000", t.Timestamp, time.UTC)

	event := sentry.NewEvent()
	event.Extra["AppName"] = h.appName
	event.Environment = h.appZone
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = t.Message
	event.Extra["Error"] = t.Error
	event.Extra["CallerFile"] = t.CallerFile
	event.Extra["CallerLine"] = t.CallerLine
	event.Extra["CallerFunc"] = t.CallerFunc
	event.Extra["Stack"] = t.Stack
	event.Extra["TimeStamp"] = t.Timestamp
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       t.Message,
		Value:      t.Error,
		Stacktrace: sentry.NewStacktrace(),
	})
	h.capture(event)

	return len(p), nil
}

// report must not log at error level through l, or the hook would feed itself.
func (h *SentryHook) report(err error) {
	if h.l != nil {
		h.l.Warning(err.Error())
		return
	}
	log.Println(err.Error())
}

func (h *SentryHook) SetLogger(l *logger.Logger) {
	if l != nil {
		h.l = l
	}
}

func (h *SentryHook) Flush() bool {
	return sentry.Flush(_sentryFlushTimeout)
}
