package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"ia-server/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(i int) string {
	return fmt.Sprintf("q%d", i)
}

func TestActivityLog_KeepsMostRecentNewestFirst(t *testing.T) {
	log := NewActivityLog(entity.DefaultActivityCapacity)

	const total = 250
	for i := 0; i < total; i++ {
		log.Record(entity.ActivityEntry{Question: question(i), Answer: "a"})
	}

	snap := log.Snapshot()
	require.Len(t, snap, entity.DefaultActivityCapacity)
	for i, e := range snap {
		assert.Equal(t, question(total-1-i), e.Question)
	}
}

func TestActivityLog_DoesNotReorderEarlierEntries(t *testing.T) {
	log := NewActivityLog(5)

	log.Record(entity.ActivityEntry{Question: "a"})
	log.Record(entity.ActivityEntry{Question: "b"})
	before := log.Snapshot()

	log.Record(entity.ActivityEntry{Question: "c"})
	after := log.Snapshot()

	require.Len(t, after, 3)
	assert.Equal(t, "c", after[0].Question)
	assert.Equal(t, before, after[1:])
}

func TestActivityLog_AssignsIDAndTimestamp(t *testing.T) {
	log := NewActivityLog(3)
	fixed := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	log.now = func() time.Time { return fixed }

	got := log.Record(entity.ActivityEntry{Question: "q", DurationMs: -5})

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, fixed, got.Timestamp)
	assert.Equal(t, int64(0), got.DurationMs)
	assert.Equal(t, "01/05/2024 10:30:00", got.FormattedTimestamp())
}

func TestActivityLog_SnapshotIsACopy(t *testing.T) {
	log := NewActivityLog(3)
	log.Record(entity.ActivityEntry{Question: "original"})

	snap := log.Snapshot()
	snap[0].Question = "changed"

	assert.Equal(t, "original", log.Snapshot()[0].Question)
}

func TestActivityLog_EmptyAndInvalidCapacity(t *testing.T) {
	log := NewActivityLog(0)

	assert.Equal(t, entity.DefaultActivityCapacity, log.Capacity())
	assert.Equal(t, 0, log.Len())
	assert.Empty(t, log.Snapshot())
}

func TestActivityLog_ConcurrentRecord(t *testing.T) {
	log := NewActivityLog(entity.DefaultActivityCapacity)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				log.Record(entity.ActivityEntry{Question: "x"})
				_ = log.Snapshot()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, entity.DefaultActivityCapacity, log.Len())
}
