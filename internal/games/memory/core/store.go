package core

import (
	"fmt"

	platformcore "github.com/iamraziq/glitch-memory/internal/core"
)

// DefaultSaveKey is the settings key of the save slot.
const DefaultSaveKey = "CardMatchSave"

// SaveKey returns the slot key for a profile. The empty profile uses
// DefaultSaveKey.
func SaveKey(profile string) string {
	if profile == "" {
		return DefaultSaveKey
	}
	return DefaultSaveKey + ":" + profile
}

// SaveStore persists a single snapshot. Save always overwrites.
type SaveStore interface {
	Exists() bool
	Save(s Snapshot) error
	Load() (snap Snapshot, ok bool, err error)
	Clear() error
}

// MemoryStore keeps the slot in process memory.
type MemoryStore struct {
	snap *Snapshot
}

// NewMemoryStore returns an empty in-memory slot.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Exists reports whether a snapshot is stored.
func (m *MemoryStore) Exists() bool {
	return m.snap != nil
}

// Save replaces the stored snapshot with a copy of s.
func (m *MemoryStore) Save(s Snapshot) error {
	c := s.clone()
	m.snap = &c
	return nil
}

// Load returns a copy of the stored snapshot.
func (m *MemoryStore) Load() (Snapshot, bool, error) {
	if m.snap == nil {
		return Snapshot{}, false, nil
	}
	return m.snap.clone(), true, nil
}

// Clear removes the stored snapshot.
func (m *MemoryStore) Clear() error {
	m.snap = nil
	return nil
}

// KVStore keeps the slot as a JSON record under one key of a
// key-value settings store.
type KVStore struct {
	kv  platformcore.KeyValueStore
	key string
}

// NewKVStore returns the slot for profile inside kv.
func NewKVStore(kv platformcore.KeyValueStore, profile string) *KVStore {
	return &KVStore{kv: kv, key: SaveKey(profile)}
}

// Key returns the settings key used by this slot.
func (s *KVStore) Key() string {
	return s.key
}

// Exists reports whether the key is present. Read errors count as absent.
func (s *KVStore) Exists() bool {
	ok, err := s.kv.Has(s.key)
	return err == nil && ok
}

// Save encodes and writes the snapshot.
func (s *KVStore) Save(snap Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := s.kv.Set(s.key, data); err != nil {
		return fmt.Errorf("save %q: %w", s.key, err)
	}
	return nil
}

// Load reads and decodes the snapshot.
func (s *KVStore) Load() (Snapshot, bool, error) {
	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("load %q: %w", s.key, err)
	}
	if !ok {
		return Snapshot{}, false, nil
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("load %q: %w", s.key, err)
	}
	return snap, true, nil
}

// Clear deletes the key.
func (s *KVStore) Clear() error {
	if err := s.kv.Delete(s.key); err != nil {
		return fmt.Errorf("clear %q: %w", s.key, err)
	}
	return nil
}
