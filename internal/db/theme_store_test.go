package db

import (
	"testing"

	"github.com/balkashynov/tminus/internal/models"
)

func TestThemeStoreDefaultsAndRoundTrip(t *testing.T) {
	store := NewThemeStore(newTestKV(t))

	got, err := store.Load()
	if err != nil || got != models.DefaultThemeSettings() {
		t.Fatalf("Load empty = %+v, %v", got, err)
	}

	want := models.ThemeSettings{FabColorMode: models.FabColorTitle, TimeNumberColor: "#112233", ProgressBarColor: "#445566"}
	if err := store.Save(want); err != nil {
		t.Fatal(err)
	}
	if got, _ := store.Load(); got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestThemeStorePartialAndCorrupt(t *testing.T) {
	kv := newTestKV(t)
	store := NewThemeStore(kv)

	kv.Put(models.KeySettings, `{"fabColorMode":"rainbow","progressBarColor":"#000000"}`)
	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := models.DefaultThemeSettings()
	want.ProgressBarColor = "#000000"
	if got != want {
		t.Errorf("partial Load = %+v, want %+v", got, want)
	}

	kv.Put(models.KeySettings, `[1,2,3]`)
	if got, _ := store.Load(); got != models.DefaultThemeSettings() {
		t.Errorf("corrupt Load = %+v", got)
	}
}
