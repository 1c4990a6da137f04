package core

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Score:    -4,
		GridRows: 2,
		GridCols: 2,
		Cards: []CardState{
			{CardID: 1, IsMatched: true, IsFlipped: true},
			{CardID: 0, IsFlipped: true},
			{CardID: 1, IsMatched: true, IsFlipped: true},
			{CardID: 0},
		},
	}
}

func TestStoresRoundTrip(t *testing.T) {
	stores := map[string]SaveStore{
		"memory": NewMemoryStore(),
		"kv":     NewKVStore(mapKV{}, ""),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if store.Exists() {
				t.Fatal("new store should be empty")
			}
			if _, ok, err := store.Load(); ok || err != nil {
				t.Fatalf("Load on empty store = ok %v, err %v", ok, err)
			}

			want := sampleSnapshot()
			if err := store.Save(want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, ok, err := store.Load()
			if err != nil || !ok {
				t.Fatalf("Load = ok %v, err %v", ok, err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}

			if err := store.Clear(); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if store.Exists() {
				t.Error("store should be empty after Clear")
			}
		})
	}
}

func TestMemoryStoreCopiesSnapshot(t *testing.T) {
	store := NewMemoryStore()
	snap := sampleSnapshot()
	_ = store.Save(snap)

	snap.Cards[0].CardID = 99

	got, _, _ := store.Load()
	if got.Cards[0].CardID != 1 {
		t.Error("store kept a reference to the caller's slice")
	}
}

func TestKVStoreKeys(t *testing.T) {
	kv := mapKV{}
	def := NewKVStore(kv, "")
	alice := NewKVStore(kv, "alice")

	if def.Key() != "CardMatchSave" {
		t.Errorf("default key = %q", def.Key())
	}
	if alice.Key() != "CardMatchSave:alice" {
		t.Errorf("profile key = %q", alice.Key())
	}

	_ = alice.Save(sampleSnapshot())
	if def.Exists() {
		t.Error("profiles must not share a slot")
	}
	if !alice.Exists() {
		t.Error("profile slot should exist")
	}
}

func TestSnapshotFieldNames(t *testing.T) {
	data, err := EncodeSnapshot(sampleSnapshot())
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"score"`, `"gridRows"`, `"gridCols"`, `"cards"`, `"cardId"`, `"isMatched"`, `"isFlipped"`} {
		if !strings.Contains(data, field) {
			t.Errorf("encoded snapshot missing %s: %s", field, data)
		}
	}
}

func TestKVStoreCorruptRecord(t *testing.T) {
	kv := mapKV{DefaultSaveKey: "{not json"}
	store := NewKVStore(kv, "")

	if _, _, err := store.Load(); err == nil {
		t.Error("expected decode error")
	}
}

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr bool
	}{
		{"ok", Snapshot{GridRows: 2, GridCols: 3}, false},
		{"zero rows", Snapshot{GridRows: 0, GridCols: 4}, true},
		{"odd", Snapshot{GridRows: 3, GridCols: 3}, true},
		{"max side", Snapshot{GridRows: MaxGridSide, GridCols: MaxGridSide}, false},
		{"too many rows", Snapshot{GridRows: 40, GridCols: 40}, true},
		{"too many cols", Snapshot{GridRows: 2, GridCols: MaxGridSide + 2}, true},
		{"huge", Snapshot{GridRows: math.MaxInt32, GridCols: 1 << 20}, true},
		{"short cards ok", Snapshot{GridRows: 2, GridCols: 2, Cards: []CardState{{}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.snap.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
