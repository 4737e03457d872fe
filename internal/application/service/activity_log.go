package service

import (
	"sync"
	"time"

	"ia-server/internal/application/port/output"
	"ia-server/internal/domain/entity"

	"github.com/google/uuid"
)

var _ output.ActivityLog = (*ActivityLogImpl)(nil)

// ActivityLogImpl is a bounded, newest-first list of exchanges shared by
// every handler.
type ActivityLogImpl struct {
	mu       sync.RWMutex
	entries  []entity.ActivityEntry
	capacity int
	now      func() time.Time
}

func NewActivityLog(capacity int) *ActivityLogImpl {
	if capacity < 1 {
		capacity = entity.DefaultActivityCapacity
	}
	return &ActivityLogImpl{
		entries:  make([]entity.ActivityEntry, 0, capacity+1),
		capacity: capacity,
		now:      time.Now,
	}
}

// Record puts entry at the front and drops the oldest one once the log is
// over capacity. A missing ID or timestamp is filled in.
func (l *ActivityLogImpl) Record(entry entity.ActivityEntry) entity.ActivityEntry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = l.now()
	}
	if entry.DurationMs < 0 {
		entry.DurationMs = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entity.ActivityEntry{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = entry

	if len(l.entries) > l.capacity {
		l.entries[len(l.entries)-1] = entity.ActivityEntry{}
		l.entries = l.entries[:l.capacity]
	}

	return entry
}

func (l *ActivityLogImpl) Snapshot() []entity.ActivityEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]entity.ActivityEntry, len(l.entries))
	copy(result, l.entries)
	return result
}

func (l *ActivityLogImpl) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

func (l *ActivityLogImpl) Capacity() int {
	return l.capacity
}
