package checkpoint

import (
	"context"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"lotview/internal/domain"
	"lotview/internal/logic"
	"lotview/internal/platform/logger"
)

// Version is bumped whenever Snapshot changes incompatibly
const Version = 1

// Snapshot is the restorable state of one listing screen
type Snapshot struct {
	Version int                   `toml:"version"`
	Type    domain.ListingType    `toml:"type"`
	Mode    string                `toml:"mode"`
	Data    domain.ListingData    `toml:"data"`
	Search  domain.SearchCriteria `toml:"search"`
}

// Key returns the versioned store key for a listing type
func Key(t domain.ListingType) string {
	return fmt.Sprintf("listing/%s/v%d", t, Version)
}

// Encode serialises a snapshot as TOML
func Encode(s Snapshot) ([]byte, error) {
	s.Version = Version
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode checkpoint: %w", err)
	}
	return data, nil
}

// Decode parses a TOML snapshot
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := toml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode checkpoint: %w", err)
	}
	return s, nil
}

// Manager saves and restores snapshots through a CheckpointStore
type Manager struct {
	store logic.CheckpointStore
	log   logger.Logger
}

func NewManager(store logic.CheckpointStore, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{store: store, log: log.With("component", "checkpoint")}
}

// Save writes the snapshot under its listing type key
func (m *Manager) Save(ctx context.Context, s Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := m.store.Save(ctx, Key(s.Type), data); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	m.log.Debugf("checkpoint saved for %s", s.Type)
	return nil
}

// Load returns the stored snapshot for t. Snapshots written by another version are ignored.
func (m *Manager) Load(ctx context.Context, t domain.ListingType) (Snapshot, bool, error) {
	data, ok, err := m.store.Load(ctx, Key(t))
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("load checkpoint: %w", err)
	}
	if !ok {
		return Snapshot{}, false, nil
	}

	s, err := Decode(data)
	if err != nil {
		return Snapshot{}, false, err
	}
	if s.Version != Version || s.Type != t {
		m.log.Warnf("ignoring checkpoint %s: version %d type %s", Key(t), s.Version, s.Type)
		return Snapshot{}, false, nil
	}
	return s, true, nil
}
