package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/balkashynov/tminus/internal/countdown"
	"github.com/balkashynov/tminus/internal/models"
)

type recorder struct {
	changed map[string]int
	last    map[string]countdown.Result
	removed []string
}

func newRecorder() *recorder {
	return &recorder{changed: map[string]int{}, last: map[string]countdown.Result{}}
}

func (r *recorder) ClockChanged(c models.Clock, res countdown.Result, now time.Time) {
	r.changed[c.ID]++
	r.last[c.ID] = res
}

func (r *recorder) ClockRemoved(id string) {
	r.removed = append(r.removed, id)
}

var testNow = time.Date(2025, 5, 1, 10, 30, 0, 0, time.Local)

func newTestManager() (*Manager, *recorder) {
	f := &Factory{Span: 24 * time.Hour, Placeholder: "placeholder", Now: func() time.Time { return testNow }}
	rec := newRecorder()
	return NewManager(f, rec), rec
}

func TestAddUsesDefaults(t *testing.T) {
	m, rec := newTestManager()
	c := m.Add()

	if c.ID == "" {
		t.Fatal("empty id")
	}
	if c.Title != "placeholder" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.StartDate != "2025-05-01T10:30" || c.TargetDate != "2025-05-02T10:30" {
		t.Errorf("dates = %s .. %s", c.StartDate, c.TargetDate)
	}
	if c.TitleColor != models.DefaultTitleColor || c.IsMinimized || c.Position != nil {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if rec.changed[c.ID] != 1 {
		t.Errorf("observer notified %d times", rec.changed[c.ID])
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d", m.Len())
	}
}

func TestAddGivesUniqueIDs(t *testing.T) {
	m, _ := newTestManager()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		c := m.Add()
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestLoadReplacesDuplicateIDs(t *testing.T) {
	m, rec := newTestManager()
	m.Add()
	m.Load([]models.Clock{{ID: "a", Title: "one"}, {ID: "a", Title: "two"}})

	if len(rec.removed) != 1 {
		t.Errorf("old clock not removed: %v", rec.removed)
	}
	clocks := m.Clocks()
	if len(clocks) != 2 {
		t.Fatalf("len = %d", len(clocks))
	}
	if clocks[0].ID != "a" || clocks[1].ID == "a" {
		t.Errorf("ids = %s, %s", clocks[0].ID, clocks[1].ID)
	}
	if clocks[1].Title != "two" {
		t.Errorf("order lost: %+v", clocks)
	}
}

func TestDeleteNotifiesRemoval(t *testing.T) {
	m, rec := newTestManager()
	a := m.Add()
	b := m.Add()

	if !m.Delete(a.ID) {
		t.Fatal("Delete returned false")
	}
	if m.Delete(a.ID) {
		t.Error("second Delete returned true")
	}
	if len(rec.removed) != 1 || rec.removed[0] != a.ID {
		t.Errorf("removed = %v", rec.removed)
	}
	if _, ok := m.Result(a.ID); ok {
		t.Error("result kept for deleted clock")
	}
	if m.Index(b.ID) != 0 {
		t.Errorf("Index(b) = %d", m.Index(b.ID))
	}
}

func TestSetTargetDateRecomputes(t *testing.T) {
	m, rec := newTestManager()
	c := m.Add()

	m.SetTargetDate(c.ID, "2025-05-01T10:00")
	if !rec.last[c.ID].Completed {
		t.Fatal("past target should complete")
	}

	m.SetTargetDate(c.ID, "2025-06-01T10:00")
	if rec.last[c.ID].Completed {
		t.Error("future target should run again")
	}
}

func TestTickIsIdempotent(t *testing.T) {
	m, rec := newTestManager()
	c := m.Add()
	m.SetStartDate(c.ID, "2025-05-01T00:00")
	m.SetTargetDate(c.ID, "2025-05-03T00:00")

	at := testNow.Add(time.Hour)
	m.Tick(at)
	first := rec.last[c.ID]
	m.Tick(at)
	second := rec.last[c.ID]

	if first != second {
		t.Errorf("ticks differ: %+v vs %+v", first, second)
	}
	if got, _ := m.Result(c.ID); got != second {
		t.Errorf("Result = %+v", got)
	}
}

func TestMinimizeRestoreReflow(t *testing.T) {
	m, _ := newTestManager()
	c := m.Add()

	m.MoveTo(c.ID, models.Position{Top: 0, Left: 0})
	m.Minimize(c.ID)
	got, _ := m.Get(c.ID)
	if !got.IsMinimized {
		t.Fatal("not minimized")
	}

	m.Restore(c.ID)
	got, _ = m.Get(c.ID)
	if got.IsMinimized {
		t.Error("still minimized")
	}
	if got.Position != nil {
		t.Errorf("origin position kept: %+v", got.Position)
	}
}

func TestRestoreKeepsDraggedPosition(t *testing.T) {
	m, _ := newTestManager()
	c := m.Add()

	m.MoveTo(c.ID, models.Position{Top: 4, Left: 20})
	m.ToggleMinimized(c.ID)
	m.ToggleMinimized(c.ID)

	got, _ := m.Get(c.ID)
	if got.IsMinimized {
		t.Error("still minimized")
	}
	if got.Position == nil || *got.Position != (models.Position{Top: 4, Left: 20}) {
		t.Errorf("Position = %+v", got.Position)
	}
}

func TestMoveToClampsNegative(t *testing.T) {
	m, _ := newTestManager()
	c := m.Add()
	m.MoveTo(c.ID, models.Position{Top: -3, Left: -1})

	got, _ := m.Get(c.ID)
	if got.Position == nil || got.Position.Top != 0 || got.Position.Left != 0 {
		t.Errorf("Position = %+v", got.Position)
	}
}

func TestClocksReturnsCopies(t *testing.T) {
	m, _ := newTestManager()
	c := m.Add()
	m.MoveTo(c.ID, models.Position{Top: 1, Left: 1})

	snap := m.Clocks()
	snap[0].Title = "changed"
	snap[0].Position.Top = 99

	got, _ := m.Get(c.ID)
	if got.Title == "changed" || got.Position.Top == 99 {
		t.Error("snapshot aliases manager state")
	}
}

func TestFindByPrefix(t *testing.T) {
	m, _ := newTestManager()
	m.Load([]models.Clock{{ID: "abc1"}, {ID: "abd2"}})

	if c, err := m.Find("abc"); err != nil || c.ID != "abc1" {
		t.Errorf("Find(abc) = %v, %v", c.ID, err)
	}
	if c, err := m.Find("d2"); err != nil || c.ID != "abd2" {
		t.Errorf("Find(d2) = %v, %v", c.ID, err)
	}
	if _, err := m.Find("ab"); !errors.Is(err, ErrAmbiguous) {
		t.Errorf("Find(ab) err = %v", err)
	}
	if _, err := m.Find("zz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(zz) err = %v", err)
	}
}

func TestUnknownIDIsNoop(t *testing.T) {
	m, rec := newTestManager()
	if m.SetTitle("missing", "x") || m.Minimize("missing") || m.ToggleMinimized("missing") {
		t.Error("mutation on unknown id reported success")
	}
	if len(rec.changed) != 0 {
		t.Errorf("observer notified: %v", rec.changed)
	}
}
