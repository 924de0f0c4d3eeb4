package snapshot

import (
	"context"
	stderrors "errors"
	"io/fs"

	"github.com/agentstation/teammap/internal/codec"
	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
)

// Load reads the snapshot file at path. The format follows the extension:
// JSON (a flat list, as in Team.json) or YAML. A missing file yields an
// empty snapshot and no error.
func Load(path string) (*Snapshot, error) {
	var records []contributors.Contributor
	if err := codec.ReadFile(path, &records); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Empty(), nil
		}
		var pe *errors.ParseError
		if stderrors.As(err, &pe) {
			return nil, err
		}
		return nil, errors.WrapIO("read", path, err)
	}
	snap, err := New(records)
	if err != nil {
		return nil, errors.NewParseError(string(codec.FormatOf(path)), path, "inconsistent snapshot", err)
	}
	return snap, nil
}

// LoadOrEmpty loads the snapshot at path and degrades to an empty snapshot
// when it cannot be read. Every slug is then reassigned, so the failure is
// logged at error level.
func LoadOrEmpty(ctx context.Context, path string) *Snapshot {
	logger := logging.FromContext(ctx)

	snap, err := Load(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).
			Msg("Snapshot unreadable, treating as empty; all slugs will be reassigned")
		return Empty()
	}
	if snap.Len() == 0 {
		logger.Info().Str("path", path).Msg("No previous snapshot, starting fresh")
	} else {
		logger.Debug().Str("path", path).Int("records", snap.Len()).Msg("Loaded snapshot")
	}
	return snap
}

// Save writes snap to path atomically. Records are written in stored order
// in their persistable form.
func Save(path string, snap *Snapshot) error {
	records := make([]contributors.Contributor, 0, snap.Len())
	if snap != nil {
		for _, r := range snap.records {
			records = append(records, r.Persistable())
		}
	}
	return codec.WriteFile(path, records)
}
