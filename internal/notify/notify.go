// Package notify delivers transient user-facing notifications.
//
// This is the toast-equivalent channel: every degraded backend call surfaces
// here exactly once, never as a blocking dialog. The presentation layer
// subscribes to the hub and renders notifications however it likes.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/logging"
)

// Level classifies a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a single transient message.
type Notification struct {
	ID      uuid.UUID
	Level   Level
	Message string
	Time    time.Time
}

// Notifier is the interface the core depends on.
type Notifier interface {
	Notify(level Level, message string)
}

// Identical messages arriving faster than this are dropped, so a burst of
// failing calls produces one toast instead of a stack of them.
const duplicateInterval = 3 * time.Second

// Hub fans notifications out to subscribers.
//
// Safe for concurrent use. Subscriber callbacks run on the notifying
// goroutine and must not block.
type Hub struct {
	mu       sync.Mutex
	subs     []func(Notification)
	limiters map[string]*rate.Limiter
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{limiters: make(map[string]*rate.Limiter)}
}

// Subscribe registers a callback for every delivered notification.
func (h *Hub) Subscribe(fn func(Notification)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

// Notify delivers a notification to all subscribers, throttling duplicates.
func (h *Hub) Notify(level Level, message string) {
	h.mu.Lock()
	lim, ok := h.limiters[message]
	if !ok {
		lim = rate.NewLimiter(rate.Every(duplicateInterval), 1)
		h.limiters[message] = lim
	}
	if !lim.Allow() {
		h.mu.Unlock()
		logging.Debug("dropped duplicate notification", "message", message)
		return
	}
	subs := make([]func(Notification), len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	n := Notification{
		ID:      uuid.New(),
		Level:   level,
		Message: message,
		Time:    time.Now(),
	}
	for _, fn := range subs {
		fn(n)
	}
}
