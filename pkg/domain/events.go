package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventParse       EventType = "parse"
	EventCacheLookup EventType = "cache_lookup"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ParseEvent reports a finished parse of one word.
type ParseEvent struct {
	EventBase
	Word     string        `json:"word"`
	Results  int           `json:"results"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// CacheEvent reports a cache lookup.
type CacheEvent struct {
	EventBase
	Word string `json:"word"`
	Hit  bool   `json:"hit"`
}

// LifecycleHooks defines callbacks for analyzer observability. Nil
// callbacks are skipped.
type LifecycleHooks struct {
	OnParse       func(context.Context, *ParseEvent)
	OnCacheLookup func(context.Context, *CacheEvent)
}

// EmitParse calls OnParse when set.
func (h LifecycleHooks) EmitParse(ctx context.Context, e *ParseEvent) {
	if h.OnParse != nil {
		e.Type = EventParse
		h.OnParse(ctx, e)
	}
}

// EmitCacheLookup calls OnCacheLookup when set.
func (h LifecycleHooks) EmitCacheLookup(ctx context.Context, e *CacheEvent) {
	if h.OnCacheLookup != nil {
		e.Type = EventCacheLookup
		h.OnCacheLookup(ctx, e)
	}
}

// Merge returns hooks that call h first and then o.
func (h LifecycleHooks) Merge(o LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnParse: func(ctx context.Context, e *ParseEvent) {
			h.EmitParse(ctx, e)
			o.EmitParse(ctx, e)
		},
		OnCacheLookup: func(ctx context.Context, e *CacheEvent) {
			h.EmitCacheLookup(ctx, e)
			o.EmitCacheLookup(ctx, e)
		},
	}
}
