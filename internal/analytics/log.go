package analytics

import (
	"sort"

	"lotview/internal/platform/logger"
)

// LogSink writes events to the application log.
type LogSink struct {
	log logger.Logger
}

func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{log: log.With("component", "analytics")}
}

func (s *LogSink) ReportEvent(name string, params map[string]any) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := []interface{}{"event", name}
	for _, k := range keys {
		fields = append(fields, k, params[k])
	}
	s.log.With(fields...).Info("analytics event")
}
