package service

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator hands out record ids.
type IDGenerator interface {
	NewID() string
}

// ClockIDs issues the current Unix time in milliseconds as a decimal string.
// Ids are strictly increasing even when the clock stalls or steps back.
type ClockIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

func (g *ClockIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// UUIDs issues random version 4 UUIDs.
type UUIDs struct{}

func (UUIDs) NewID() string {
	return uuid.NewString()
}
