// Package persistence saves container snapshots to a StateRepository and
// restores them at startup.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/pkg/errors"
)

// SnapshotVersion is written into every envelope. Blobs carrying any other
// version are discarded on restore.
const SnapshotVersion = 1

type envelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"savedAt"`
	State   json.RawMessage `json:"state"`
}

func encodeSnapshot(state any, savedAt time.Time) ([]byte, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "marshal state")
	}

	blob, err := json.Marshal(envelope{
		Version: SnapshotVersion,
		SavedAt: savedAt.UTC(),
		State:   raw,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal envelope")
	}

	return blob, nil
}

func decodeSnapshot[S any](blob []byte) (S, error) {
	var state S

	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return state, errors.Wrap(err, "unmarshal envelope")
	}
	if env.Version != SnapshotVersion {
		return state, errors.WithStack(domainerrors.ErrSnapshotVersionMismatch.WithDetails(
			fmt.Sprintf("got version %d, want %d", env.Version, SnapshotVersion),
		))
	}
	if len(env.State) == 0 {
		return state, errors.New("envelope has no state")
	}
	if err := json.Unmarshal(env.State, &state); err != nil {
		return state, errors.Wrap(err, "unmarshal state")
	}

	if n, ok := any(state).(interface{ Normalize() (S, bool) }); ok {
		normalized, usable := n.Normalize()
		if !usable {
			var zero S

			return zero, errors.WithStack(domainerrors.ErrSnapshotInvalid)
		}
		state = normalized
	}

	return state, nil
}
