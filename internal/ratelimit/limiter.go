package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Operation classes with separate ceilings. Reads are cheap, AI and commerce
// calls are not.
type Class string

const (
	ClassList    Class = "list"
	ClassGet     Class = "get"
	ClassUpdate  Class = "update"
	ClassDelete  Class = "delete"
	ClassUpload  Class = "upload"
	ClassChat    Class = "chat"
	ClassExport  Class = "export"
	ClassProduct Class = "product"
)

// Config contains per-class ceilings for one fixed window.
type Config struct {
	Window       time.Duration
	ListLimit    int
	GetLimit     int
	UpdateLimit  int
	DeleteLimit  int
	UploadLimit  int
	ChatLimit    int
	ExportLimit  int
	ProductLimit int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Window:       60 * time.Second,
		ListLimit:    100,
		GetLimit:     100,
		UpdateLimit:  30,
		DeleteLimit:  10,
		UploadLimit:  10,
		ChatLimit:    20,
		ExportLimit:  10,
		ProductLimit: 10,
	}
}

func (c Config) limitFor(class Class) int {
	switch class {
	case ClassList:
		return c.ListLimit
	case ClassGet:
		return c.GetLimit
	case ClassUpdate:
		return c.UpdateLimit
	case ClassDelete:
		return c.DeleteLimit
	case ClassUpload:
		return c.UploadLimit
	case ClassChat:
		return c.ChatLimit
	case ClassExport:
		return c.ExportLimit
	case ClassProduct:
		return c.ProductLimit
	}
	return c.ListLimit
}

// Result contains the outcome of a rate limit check
type Result struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
	Limit     int
}

type window struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window counter keyed by operation class and client
// identifier. State is in-memory and per-process: it resets on restart and is
// intentionally approximate. Windows reset lazily on the first request after
// expiry; expired entries are swept once the table grows past maxEntries.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	config  Config
	now     func() time.Time
}

const maxEntries = 10000

// NewLimiter creates a new in-memory rate limiter
func NewLimiter(config Config) *Limiter {
	return &Limiter{
		windows: make(map[string]*window),
		config:  config,
		now:     time.Now,
	}
}

// Allow checks and consumes one request for the given class and client.
func (l *Limiter) Allow(class Class, client string) *Result {
	limit := l.config.limitFor(class)
	key := fmt.Sprintf("ratelimit:%s:%s", client, class)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		if len(l.windows) >= maxEntries {
			l.sweep(now)
		}
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.config.Window)}
		return &Result{Allowed: true, Remaining: limit - 1, ResetIn: l.config.Window, Limit: limit}
	}

	if w.count >= limit {
		return &Result{Allowed: false, Remaining: 0, ResetIn: w.resetAt.Sub(now), Limit: limit}
	}

	w.count++
	return &Result{Allowed: true, Remaining: limit - w.count, ResetIn: w.resetAt.Sub(now), Limit: limit}
}

// sweep drops expired windows. Caller holds the lock.
func (l *Limiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
		}
	}
}

// Reset clears the window for one client and class (test and admin hook).
func (l *Limiter) Reset(class Class, client string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, fmt.Sprintf("ratelimit:%s:%s", client, class))
}

// SetNow replaces the clock, for tests.
func (l *Limiter) SetNow(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
