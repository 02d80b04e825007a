package plan

import "context"

// StateRepository persists plan snapshots between sessions. Load returns
// found=false when nothing has been stored yet; that is not an error.
type StateRepository interface {
	LoadState(ctx context.Context) (Snapshot, bool, error)
	SaveState(ctx context.Context, s Snapshot) error
}
