// Package conflict decides, per record, whether the local or the remote
// payload wins when a pull brings down a remote version. The decision is a
// pure function of the two records; applying it is the engine's job.
package conflict

import "github.com/splittab/splittab/internal/models"

// Outcome is the resolver's verdict for one pulled record.
type Outcome int

const (
	// Insert: no local counterpart exists; adopt the remote record as-is.
	Insert Outcome = iota
	// KeepDirty: the local record has unsynced edits; never touch its
	// payload, only attach the server id and sync timestamp.
	KeepDirty
	// RemoteWins: the remote version is at least as recent; its payload
	// replaces the local one.
	RemoteWins
	// LocalWins: the local version is strictly newer; keep its payload and
	// flip it to pending so the next push republishes it.
	LocalWins
)

// String implements fmt.Stringer for log output.
func (o Outcome) String() string {
	switch o {
	case Insert:
		return "insert"
	case KeepDirty:
		return "keep-dirty"
	case RemoteWins:
		return "remote-wins"
	case LocalWins:
		return "local-wins"
	}
	return "unknown"
}

// Resolve applies last-writer-wins on UpdatedAt, with two carve-outs: a
// missing local record is always an insert, and a dirty local record is
// never overwritten regardless of remote recency.
//
// UpdatedAt comes from each device's own clock, so skew between devices can
// resolve the wrong way. Known limitation of last-writer-wins; the server
// would need a logical clock to do better.
func Resolve(local *models.Record, remote *models.Record) Outcome {
	if local == nil {
		return Insert
	}
	if local.IsDirty() {
		return KeepDirty
	}
	// Remote wins ties so that a record echoed back by the server settles
	// as synced instead of ping-ponging.
	if remote.UpdatedAt.Equal(local.UpdatedAt) || remote.UpdatedAt.After(local.UpdatedAt) {
		return RemoteWins
	}
	return LocalWins
}
