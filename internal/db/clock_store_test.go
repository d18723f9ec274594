package db

import (
	"reflect"
	"testing"

	"github.com/balkashynov/tminus/internal/models"
)

func TestClockStoreRoundTrip(t *testing.T) {
	store, _ := newTestClockStore(t)

	want := []models.Clock{
		{
			ID:         "0190a1b2-0000-7000-8000-000000000001",
			Title:      "Launch",
			StartDate:  "2025-05-01T09:00",
			TargetDate: "2025-06-01T09:00",
			TitleColor: "#FF8800",
		},
		{
			ID:          "0190a1b2-0000-7000-8000-000000000002",
			Title:       "Holiday",
			StartDate:   "2025-04-01T00:00",
			TargetDate:  "2025-08-01T00:00",
			IsMinimized: true,
			Position:    &models.Position{Top: 4, Left: 40},
			TitleColor:  "#000000",
		},
		{
			ID:         "0190a1b2-0000-7000-8000-000000000003",
			Title:      "Anchored",
			StartDate:  "2025-04-01T00:00",
			TargetDate: "2025-08-01T00:00",
			Position:   &models.Position{},
			TitleColor: "#FFFFFF",
		},
	}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestClockStoreSaveReplacesCollection(t *testing.T) {
	store, _ := newTestClockStore(t)

	first := []models.Clock{{ID: "a", Title: "A", StartDate: "x", TargetDate: "y", TitleColor: "#FFFFFF"}, {ID: "b", Title: "B", StartDate: "x", TargetDate: "y", TitleColor: "#FFFFFF"}}
	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(first[1:]); err != nil {
		t.Fatal(err)
	}
	got, _ := store.Load()
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("Load after replace = %+v", got)
	}
}

func TestClockStoreCorruptCollections(t *testing.T) {
	tests := map[string]string{
		"bare string":      `"not a list"`,
		"object":           `{"id": 1}`,
		"invalid json":     `[{"id":`,
		"non-object items": `[{"id": "a"}, 42]`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			store, kv := newTestClockStore(t)
			if err := kv.Put(models.KeyClocks, raw); err != nil {
				t.Fatal(err)
			}
			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("Load = %+v, want empty", got)
			}
		})
	}
}

func TestClockStoreMissingIsEmpty(t *testing.T) {
	store, _ := newTestClockStore(t)
	got, err := store.Load()
	if err != nil || len(got) != 0 {
		t.Errorf("Load = %+v, %v", got, err)
	}
}

func TestClockStoreBackfillsFieldByField(t *testing.T) {
	store, kv := newTestClockStore(t)
	raw := `[
		{"id": 1712345678901, "title": 42, "targetDate": "2025-06-01T00:00", "isMinimized": "yes", "top": "auto", "left": "auto"},
		{"id": "legacy", "title": "Old", "startDate": "2025-01-01T00:00", "targetDate": "", "top": "120px", "left": "64px", "titleColor": ""}
	]`
	if err := kv.Put(models.KeyClocks, raw); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d clocks", len(got))
	}

	first := got[0]
	if first.ID != "1712345678901" {
		t.Errorf("numeric id = %q", first.ID)
	}
	if first.Title != "placeholder" {
		t.Errorf("title = %q", first.Title)
	}
	if first.StartDate != "2025-05-01T10:30" {
		t.Errorf("start = %q", first.StartDate)
	}
	if first.TargetDate != "2025-06-01T00:00" {
		t.Errorf("target = %q", first.TargetDate)
	}
	if first.IsMinimized || first.Position != nil {
		t.Errorf("minimized=%v position=%+v", first.IsMinimized, first.Position)
	}
	if first.TitleColor != models.DefaultTitleColor {
		t.Errorf("title color = %q", first.TitleColor)
	}

	second := got[1]
	if second.TargetDate != "2025-05-08T10:30" {
		t.Errorf("target backfill = %q", second.TargetDate)
	}
	if second.Position == nil || second.Position.Top != 120 || second.Position.Left != 64 {
		t.Errorf("position = %+v", second.Position)
	}
}

func TestClockStoreWritesAutoForFlowingCards(t *testing.T) {
	store, kv := newTestClockStore(t)
	if err := store.Save([]models.Clock{{ID: "a", Title: "A"}}); err != nil {
		t.Fatal(err)
	}
	raw, _, _ := kv.Get(models.KeyClocks)
	want := `[{"id":"a","title":"A","startDate":"","targetDate":"","isMinimized":false,"top":"auto","left":"auto","titleColor":""}]`
	if raw != want {
		t.Errorf("stored %s\nwant   %s", raw, want)
	}
}
