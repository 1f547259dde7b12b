package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestSlot(t *testing.T, key string) *Slot {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slots.db")
	slot, err := Open(path, key)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { slot.Close() })
	return slot
}

func TestSlot_LoadBeforeFirstSave(t *testing.T) {
	slot := openTestSlot(t, "users")

	data, ok, err := slot.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Errorf("Load() ok = true before any save, data = %q", data)
	}
}

func TestSlot_SaveLoadRoundTrip(t *testing.T) {
	slot := openTestSlot(t, "users")

	want := []byte(`[{"id":"1","name":"Ann"}]`)
	if err := slot.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := slot.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() ok = false after save")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load() = %q, want %q", got, want)
	}
}

func TestSlot_SaveOverwrites(t *testing.T) {
	slot := openTestSlot(t, "users")

	if err := slot.Save([]byte(`["old"]`)); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := slot.Save([]byte(`["new"]`)); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, _, err := slot.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != `["new"]` {
		t.Errorf("Load() = %q after overwrite, want %q", got, `["new"]`)
	}
}

func TestSlot_KeysAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.db")

	users, err := Open(path, "users")
	if err != nil {
		t.Fatalf("Open(users) error = %v", err)
	}
	defer users.Close()

	other, err := Open(path, "other")
	if err != nil {
		t.Fatalf("Open(other) error = %v", err)
	}
	defer other.Close()

	if err := users.Save([]byte("users-data")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, ok, err := other.Load(); err != nil || ok {
		t.Errorf("other key Load() = (ok=%v, err=%v), want untouched", ok, err)
	}

	got, ok, err := users.Load()
	if err != nil || !ok {
		t.Fatalf("users Load() = (ok=%v, err=%v)", ok, err)
	}
	if string(got) != "users-data" {
		t.Errorf("users Load() = %q", got)
	}
}

func TestSlot_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.db")

	slot, err := Open(path, "users")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := slot.Save([]byte("persisted")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := slot.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(path, "users")
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Load()
	if err != nil || !ok {
		t.Fatalf("Load() after reopen = (ok=%v, err=%v)", ok, err)
	}
	if string(got) != "persisted" {
		t.Errorf("Load() after reopen = %q", got)
	}
}
