package output

import "ia-server/internal/domain/entity"

type ActivityLog interface {
	Record(entry entity.ActivityEntry) entity.ActivityEntry
	Snapshot() []entity.ActivityEntry
	Len() int
}
