package core

import (
	"encoding/json"
	"errors"
	"testing"
)

// fakeSlot is an in-memory Slot for store tests.
type fakeSlot struct {
	data    []byte
	ok      bool
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeSlot) Load() ([]byte, bool, error) { return f.data, f.ok, f.loadErr }

func (f *fakeSlot) Save(data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data = append([]byte(nil), data...)
	f.ok = true
	f.saves++
	return nil
}

func newTestStore(t *testing.T) (*Store, *fakeSlot) {
	t.Helper()
	slot := &fakeSlot{}
	store := NewStore(slot)
	store.LoadInitial()
	return store, slot
}

func mustCreate(t *testing.T, store *Store, rec Record) Record {
	t.Helper()
	stored, err := store.Create(rec)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return stored
}

func TestStore_CreateAssignsUniqueIDs(t *testing.T) {
	store, _ := newTestStore(t)

	a := mustCreate(t, store, Record{Name: "Ann"})
	b := mustCreate(t, store, Record{Name: "Bob"})

	if a.ID == "" || b.ID == "" {
		t.Fatal("Create() left an empty id")
	}
	if a.ID == b.ID {
		t.Errorf("Create() reused id %q", a.ID)
	}
}

func TestStore_CreateAppendsInOrder(t *testing.T) {
	store, _ := newTestStore(t)

	mustCreate(t, store, Record{Name: "first"})
	mustCreate(t, store, Record{Name: "second"})
	mustCreate(t, store, Record{Name: "third"})

	all := store.All()
	if len(all) != 3 {
		t.Fatalf("len(All()) = %d, want 3", len(all))
	}
	for i, want := range []string{"first", "second", "third"} {
		if all[i].Name != want {
			t.Errorf("All()[%d].Name = %q, want %q", i, all[i].Name, want)
		}
	}
}

func TestStore_RoundTripThroughSlot(t *testing.T) {
	store, slot := newTestStore(t)

	mustCreate(t, store, Record{Name: "Ann", Email: "a@b.com", Phone: "1234567", Country: "Nepal"})
	mustCreate(t, store, Record{Name: "Bob", Email: "b@c.com", Phone: "7654321", Country: "India"})

	// A fresh store hydrated from the same slot equals the original.
	reloaded := NewStore(slot)
	reloaded.LoadInitial()

	want := store.All()
	got := reloaded.All()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStore_WriteThroughAfterEveryMutation(t *testing.T) {
	store, slot := newTestStore(t)

	check := func(op string) {
		t.Helper()
		var persisted []Record
		if err := json.Unmarshal(slot.data, &persisted); err != nil {
			t.Fatalf("%s: persisted snapshot unparseable: %v", op, err)
		}
		inMemory := store.All()
		if len(persisted) != len(inMemory) {
			t.Fatalf("%s: snapshot has %d records, store has %d", op, len(persisted), len(inMemory))
		}
		for i := range inMemory {
			if persisted[i] != inMemory[i] {
				t.Errorf("%s: snapshot[%d] = %+v, store = %+v", op, i, persisted[i], inMemory[i])
			}
		}
	}

	rec := mustCreate(t, store, Record{Name: "Ann"})
	check("create")

	if err := store.Update(rec.ID, Record{Name: "Anne"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	check("update")

	if err := store.Delete(rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	check("delete")
}

func TestStore_DeleteUnknownIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	mustCreate(t, store, Record{Name: "Ann"})

	if err := store.Delete("no-such-id"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := store.Len(); got != 1 {
		t.Errorf("Len() = %d after deleting absent id, want 1", got)
	}
}

func TestStore_UpdateForcesTargetID(t *testing.T) {
	store, _ := newTestStore(t)
	rec := mustCreate(t, store, Record{Name: "Ann"})

	// The replacement carries a different id; the stored record keeps the
	// target id regardless.
	if err := store.Update(rec.ID, Record{ID: "spoofed", Name: "Anne"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, ok := store.Get(rec.ID)
	if !ok {
		t.Fatalf("record %q missing after update", rec.ID)
	}
	if got.ID != rec.ID {
		t.Errorf("stored id = %q, want %q", got.ID, rec.ID)
	}
	if got.Name != "Anne" {
		t.Errorf("stored name = %q, want %q", got.Name, "Anne")
	}
	if _, ok := store.Get("spoofed"); ok {
		t.Error("spoofed id must not be stored")
	}
}

func TestStore_UpdateUnknownIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	rec := mustCreate(t, store, Record{Name: "Ann"})

	if err := store.Update("no-such-id", Record{Name: "Ghost"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := store.Get(rec.ID)
	if got.Name != "Ann" {
		t.Errorf("existing record changed by no-op update: %+v", got)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestStore_LoadInitialMissingSnapshot(t *testing.T) {
	store := NewStore(&fakeSlot{ok: false})
	store.LoadInitial()

	if got := store.Len(); got != 0 {
		t.Errorf("Len() = %d with no snapshot, want 0", got)
	}
}

func TestStore_LoadInitialCorruptSnapshot(t *testing.T) {
	store := NewStore(&fakeSlot{data: []byte("{not json"), ok: true})
	store.LoadInitial()

	if got := store.Len(); got != 0 {
		t.Errorf("Len() = %d with corrupt snapshot, want 0", got)
	}
}

func TestStore_LoadInitialSlotError(t *testing.T) {
	store := NewStore(&fakeSlot{loadErr: errors.New("disk i/o error")})
	store.LoadInitial()

	if got := store.Len(); got != 0 {
		t.Errorf("Len() = %d with unreadable slot, want 0", got)
	}
}

func TestStore_FailedPersistLeavesStateUntouched(t *testing.T) {
	store, slot := newTestStore(t)
	rec := mustCreate(t, store, Record{Name: "Ann"})

	slot.saveErr = errors.New("disk i/o error")

	if _, err := store.Create(Record{Name: "Bob"}); err == nil {
		t.Fatal("Create() expected error when the slot write fails")
	}
	if err := store.Delete(rec.ID); err == nil {
		t.Fatal("Delete() expected error when the slot write fails")
	}

	if got := store.Len(); got != 1 {
		t.Errorf("Len() = %d after failed mutations, want 1", got)
	}
	if _, ok := store.Get(rec.ID); !ok {
		t.Error("original record lost after failed mutations")
	}
}
