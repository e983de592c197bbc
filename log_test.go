package pcomb

import (
	"sync"

	"github.com/tliron/commonlog"
)

type logEntry struct {
	level   commonlog.Level
	message string
	keys    []any
}

// recordingLogger keeps debug and info messages in memory.
type recordingLogger struct {
	commonlog.MockLogger

	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) AllowLevel(level commonlog.Level) bool {
	return level <= commonlog.Debug
}

func (l *recordingLogger) Debug(message string, keysAndValues ...any) {
	l.record(commonlog.Debug, message, keysAndValues)
}

func (l *recordingLogger) Info(message string, keysAndValues ...any) {
	l.record(commonlog.Info, message, keysAndValues)
}

func (l *recordingLogger) record(level commonlog.Level, message string, keys []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: message, keys: keys})
}

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	ms := make([]string, len(l.entries))
	for i, e := range l.entries {
		ms[i] = e.message
	}
	return ms
}

// value returns the value logged under key by the i-th entry.
func (l *recordingLogger) value(i int, key string) any {
	l.mu.Lock()
	defer l.mu.Unlock()
	keys := l.entries[i].keys
	for j := 0; j+1 < len(keys); j += 2 {
		if keys[j] == key {
			return keys[j+1]
		}
	}
	return nil
}
