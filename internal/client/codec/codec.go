// Package codec maps persisted records to and from the wire representation.
// It is the only place where sync-only bookkeeping is stripped before a push
// and attached after a pull. Both directions are pure: no clock, no I/O.
package codec

import (
	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/pkg/api"
)

// ToWire converts a persisted record into the push DTO, dropping sync
// bookkeeping.
func ToWire(rec *models.Record) api.Receipt {
	return api.Receipt{
		ID:        rec.ID,
		Data:      rec.Data,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// ToWireBatch converts records preserving input order. Order matters: the
// push acknowledgment is positional when the server omits explicit ids.
func ToWireBatch(recs []*models.Record) []api.Receipt {
	out := make([]api.Receipt, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ToWire(rec))
	}
	return out
}

// FromWire converts a pulled DTO into a candidate local record. The
// candidate is remote-originated: synced status, server id and sync
// timestamp carried over. Whether it replaces local state is the conflict
// resolver's decision, not the codec's.
func FromWire(dto api.Receipt) *models.Record {
	return &models.Record{
		ID:           dto.ID,
		ServerID:     dto.ServerID,
		Data:         dto.Data,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
		SyncStatus:   models.StatusSynced,
		LastSyncedAt: dto.SyncedAt,
	}
}
