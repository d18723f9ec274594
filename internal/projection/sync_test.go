package projection

import (
	"testing"
	"time"

	"github.com/balkashynov/tminus/internal/clock"
	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/theme"
)

var baseNow = time.Date(2025, 5, 1, 10, 30, 0, 0, time.Local)

type fixture struct {
	now      time.Time
	settings models.ThemeSettings
	sync     *Sync
	manager  *clock.Manager
}

func newFixture() *fixture {
	f := &fixture{now: baseNow, settings: models.DefaultThemeSettings()}
	f.sync = NewSync(&f.settings)
	colors := []string{"#112233", "#EEDDCC", "#445566"}
	next := 0
	f.sync.newColor = func() string {
		c := colors[next%len(colors)]
		next++
		return c
	}
	factory := &clock.Factory{Span: 24 * time.Hour, Placeholder: "placeholder", Now: func() time.Time { return f.now }}
	f.manager = clock.NewManager(factory, f.sync)
	return f
}

func TestExactlyOneProjectionVisible(t *testing.T) {
	f := newFixture()
	c := f.manager.Add()
	pair := f.sync.Pair(c.ID)
	if pair == nil {
		t.Fatal("no pair created")
	}

	steps := []func(){
		func() {},
		func() { f.manager.Minimize(c.ID) },
		func() { f.manager.Tick(f.now) },
		func() { f.manager.Restore(c.ID) },
		func() { f.manager.ToggleMinimized(c.ID) },
		func() { f.manager.SetTitle(c.ID, "x") },
	}
	for i, step := range steps {
		step()
		if pair.Card.Visible == pair.Badge.Visible {
			t.Fatalf("step %d: card visible %v, badge visible %v", i, pair.Card.Visible, pair.Badge.Visible)
		}
	}
}

func TestCompletionAndAttention(t *testing.T) {
	f := newFixture()
	c := f.manager.Add()
	f.manager.SetTargetDate(c.ID, "2025-05-01T10:31")
	f.manager.Minimize(c.ID)
	pair := f.sync.Pair(c.ID)

	if pair.Badge.Completed || pair.Badge.Attention {
		t.Fatal("running clock flagged")
	}

	f.now = baseNow.Add(2 * time.Minute)
	f.manager.Tick(f.now)
	if !pair.Card.Completed || !pair.Badge.Completed {
		t.Error("completed marker missing on a projection")
	}
	if !pair.Badge.Attention {
		t.Error("visible completed badge has no attention")
	}
	if !pair.Badge.AttentionSince.Equal(f.now) {
		t.Errorf("AttentionSince = %v", pair.Badge.AttentionSince)
	}

	since := pair.Badge.AttentionSince
	f.manager.Tick(f.now.Add(time.Second))
	if !pair.Badge.AttentionSince.Equal(since) {
		t.Error("attention restarted on a steady tick")
	}

	f.manager.Restore(c.ID)
	if pair.Badge.Attention {
		t.Error("restore kept attention")
	}
	if !pair.Card.Completed {
		t.Error("restored card lost completed marker")
	}

	f.manager.Minimize(c.ID)
	if !pair.Badge.Attention {
		t.Error("re-minimizing a completed clock should re-apply attention")
	}
}

func TestLeavingCompletedClearsMarkers(t *testing.T) {
	f := newFixture()
	c := f.manager.Add()
	f.manager.Minimize(c.ID)
	f.manager.SetTargetDate(c.ID, "2025-05-01T09:00")
	pair := f.sync.Pair(c.ID)
	if !pair.Badge.Attention {
		t.Fatal("expected attention")
	}

	f.manager.SetTargetDate(c.ID, "2025-05-09T09:00")
	if pair.Card.Completed || pair.Badge.Completed || pair.Badge.Attention {
		t.Errorf("markers survived: card %v badge %v attention %v",
			pair.Card.Completed, pair.Badge.Completed, pair.Badge.Attention)
	}
	if !pair.Badge.AttentionSince.IsZero() {
		t.Error("AttentionSince not cleared")
	}
}

func TestCardFields(t *testing.T) {
	f := newFixture()
	c := f.manager.Add()
	f.manager.SetStartDate(c.ID, "2025-05-01T00:00")
	f.manager.SetTargetDate(c.ID, "2025-05-02T00:00")
	f.now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local)
	f.manager.Tick(f.now)

	card := f.sync.Pair(c.ID).Card
	if card.Days != "0" || card.Hours != "12" || card.Minutes != "00" || card.Seconds != "00" {
		t.Errorf("parts = %s %s %s %s", card.Days, card.Hours, card.Minutes, card.Seconds)
	}
	if card.Percent != "50.00%" {
		t.Errorf("Percent = %q", card.Percent)
	}
	if card.Fraction != 0.5 {
		t.Errorf("Fraction = %v", card.Fraction)
	}
	if card.BarFrom != "#4CAF50" || card.BarTo != "#7EE182" {
		t.Errorf("gradient = %s..%s", card.BarFrom, card.BarTo)
	}
	if card.Ends != "ends 12 hours from now" {
		t.Errorf("Ends = %q", card.Ends)
	}
	if !card.Flowing() {
		t.Error("new card should flow")
	}

	f.manager.MoveTo(c.ID, models.Position{Top: 3, Left: 7})
	if card.Flowing() || card.Position.Left != 7 {
		t.Errorf("Position = %+v", card.Position)
	}
}

func TestCardWithoutTarget(t *testing.T) {
	f := newFixture()
	c := f.manager.Add()
	f.manager.SetTargetDate(c.ID, "soon")

	card := f.sync.Pair(c.ID).Card
	if card.Percent != "N/A" || card.Completed {
		t.Errorf("Percent = %q, Completed = %v", card.Percent, card.Completed)
	}
	if card.Ends != "no target date" {
		t.Errorf("Ends = %q", card.Ends)
	}
}

func TestBadgeColorModes(t *testing.T) {
	f := newFixture()
	c := f.manager.Add()
	f.manager.SetTitleColor(c.ID, "#FFFF00")
	f.manager.Minimize(c.ID)
	badge := f.sync.Pair(c.ID).Badge

	if badge.Colors.Background != theme.DefaultBadgeBackground || !badge.Colors.Border {
		t.Errorf("default mode = %+v", badge.Colors)
	}

	f.settings.FabColorMode = models.FabColorTitle
	f.manager.Refresh()
	if badge.Colors.Background != "#FFFF00" || badge.Colors.Foreground != theme.DarkText {
		t.Errorf("title mode = %+v", badge.Colors)
	}

	f.settings.FabColorMode = models.FabColorRandom
	f.manager.Refresh()
	first := badge.Colors.Background
	f.manager.Tick(f.now)
	if badge.Colors.Background != first {
		t.Error("random color not stable across updates")
	}
	if badge.Colors.Border {
		t.Error("random mode should not draw a border")
	}

	f.sync.RegenerateColors()
	f.manager.Refresh()
	if badge.Colors.Background == first {
		t.Error("regenerate kept the old color")
	}
}

func TestRemovedClockDropsPair(t *testing.T) {
	f := newFixture()
	c := f.manager.Add()
	f.manager.Delete(c.ID)
	if f.sync.Pair(c.ID) != nil || f.sync.Len() != 0 {
		t.Error("pair kept after delete")
	}
}
