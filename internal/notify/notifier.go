package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Level classifies a toast message for the UI.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notifier delivers fire-and-forget user-facing messages. Implementations
// must never fail the calling operation.
type Notifier interface {
	Notify(ctx context.Context, level Level, message string)
}

// LogNotifier writes toasts to the structured log. It stands in for the
// storefront's toast widget on the server side.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify records the message at a log level matching the toast level.
func (n LogNotifier) Notify(_ context.Context, level Level, message string) {
	evt := n.Logger.Info()
	switch level {
	case LevelError:
		evt = n.Logger.Error()
	case LevelWarning:
		evt = n.Logger.Warn()
	}
	evt.Str("level", string(level)).Str("toast", message).Msg("notify")
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Entry is a single recorded notification.
type Entry struct {
	Level   Level
	Message string
}

// Notify appends the notification to the recorded list.
func (r *Recorder) Notify(_ context.Context, level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: message})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Last returns the most recent entry, if any.
func (r *Recorder) Last() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}
