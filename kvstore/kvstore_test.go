// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvstore

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/danielhkuo/wetten/config"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := config.Config{
		DatabaseURL:  filepath.Join(t.TempDir(), "kv-test.db"),
		DatabaseType: "sqlite",
	}
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestGetSet_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	type payload struct {
		Name   string `json:"name"`
		Points int    `json:"points"`
	}
	want := payload{Name: "Emma", Points: 42}

	if err := store.Set("user", want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got payload
	ok, err := store.Get("user", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() reported absent for a stored key")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestGet_MissingKey(t *testing.T) {
	store := openTestStore(t)

	var v map[string]any
	ok, err := store.Get("never-written", &v)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() reported present for a missing key")
	}
}

func TestSet_OverwritesWholesale(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("bets", []int{1, 2, 3}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set("bets", []int{9}); err != nil {
		t.Fatalf("second Set() error = %v", err)
	}

	var got []int
	ok, err := store.Get("bets", &got)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if !reflect.DeepEqual(got, []int{9}) {
		t.Errorf("Get() = %v, want [9] (full overwrite, no merge)", got)
	}
}

func TestGet_CorruptValueDegradesToAbsent(t *testing.T) {
	store := openTestStore(t)

	// Plant a value that is not valid JSON at all.
	_, err := store.db.Exec(`INSERT INTO kv (key, value) VALUES ($1, $2)`, "bets", "{not json")
	if err != nil {
		t.Fatalf("planting corrupt value: %v", err)
	}

	var v []int
	ok, err := store.Get("bets", &v)
	if err != nil {
		t.Fatalf("Get() error = %v, corrupt data must not fail the caller", err)
	}
	if ok {
		t.Error("Get() reported present for a corrupt value")
	}
}

func TestGet_MismatchedShapeDegradesToAbsent(t *testing.T) {
	store := openTestStore(t)

	// Valid JSON of the wrong shape decodes into nothing useful; it is
	// treated like corrupt data.
	if err := store.Set("bets", "just a string"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var v []int
	ok, err := store.Get("bets", &v)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() reported present for a shape-mismatched value")
	}
}

func TestRemove(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("user", "x"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Remove("user"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	var v string
	ok, err := store.Get("user", &v)
	if err != nil || ok {
		t.Errorf("Get() after Remove() = %v, %v; want absent", ok, err)
	}

	// Removing again is fine.
	if err := store.Remove("user"); err != nil {
		t.Errorf("Remove() of absent key error = %v", err)
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	cfg := config.Config{
		DatabaseURL:  filepath.Join(t.TempDir(), "kv-test.db"),
		DatabaseType: "sqlite",
	}

	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Set("user", "survives"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	store.Close()

	reopened, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	var v string
	ok, err := reopened.Get("user", &v)
	if err != nil || !ok {
		t.Fatalf("Get() after reopen = %v, %v", ok, err)
	}
	if v != "survives" {
		t.Errorf("Get() = %q, want %q", v, "survives")
	}
}
