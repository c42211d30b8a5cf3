package usecases

import "corpsbank/internal/domain/submission"

// SnapshotManager is the contract of the backup snapshot store. Snapshot
// handles are read-only by type: a snapshot exposes a reader, never the
// mutating repository. Callers close the handle after the read so every open
// releases its connection.
type SnapshotManager interface {
	CreateSnapshot() (string, error)
	ListSnapshots() ([]string, error)
	OpenSnapshot(name string) (submission.ReadCloser, error)
}
