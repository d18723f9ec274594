package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/balkashynov/tminus/internal/clock"
)

var fixedNow = time.Date(2025, 5, 1, 10, 30, 0, 0, time.Local)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	gdb, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewKV(gdb)
}

func newTestClockStore(t *testing.T) (*ClockStore, *KV) {
	t.Helper()
	kv := newTestKV(t)
	factory := &clock.Factory{
		Span:        7 * 24 * time.Hour,
		Placeholder: "placeholder",
		Now:         func() time.Time { return fixedNow },
	}
	return NewClockStore(kv, factory), kv
}

func TestKVPutGetDelete(t *testing.T) {
	kv := newTestKV(t)

	if _, ok, err := kv.Get("missing"); ok || err != nil {
		t.Fatalf("Get missing = %v, %v", ok, err)
	}
	if err := kv.Put("k", "one"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Put("k", "two"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := kv.Get("k")
	if err != nil || !ok || v != "two" {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Error("key survived delete")
	}
}
