package coalesce

import (
	"errors"
	"testing"
	"time"
)

type counter struct {
	n   int
	err error
}

func (c *counter) flush() error {
	c.n++
	return c.err
}

func TestTouchSupersedesPending(t *testing.T) {
	c := &counter{}
	w := New(time.Millisecond, c.flush)

	if cmd := w.Touch("a:title"); cmd == nil {
		t.Fatal("Touch returned nil cmd")
	}
	first := FlushMsg{Group: "a:title", Seq: w.seq}
	w.Touch("a:title")
	second := FlushMsg{Group: "a:title", Seq: w.seq}

	if flushed, _ := w.Handle(first); flushed {
		t.Error("stale message flushed")
	}
	if flushed, _ := w.Handle(second); !flushed {
		t.Error("current message did not flush")
	}
	if flushed, _ := w.Handle(second); flushed {
		t.Error("message flushed twice")
	}
	if c.n != 1 {
		t.Errorf("flushes = %d, want 1", c.n)
	}
}

func TestGroupsAreIndependent(t *testing.T) {
	c := &counter{}
	w := New(time.Millisecond, c.flush)

	w.Touch("a:title")
	title := FlushMsg{Group: "a:title", Seq: w.seq}
	w.Touch("a:dates")
	dates := FlushMsg{Group: "a:dates", Seq: w.seq}

	if w.Pending() != 2 {
		t.Fatalf("pending = %d", w.Pending())
	}
	w.Handle(title)
	w.Handle(dates)
	if c.n != 2 {
		t.Errorf("flushes = %d, want 2", c.n)
	}
}

func TestNowCancelsAndFlushes(t *testing.T) {
	c := &counter{}
	w := New(time.Millisecond, c.flush)

	w.Touch("a:position")
	msg := FlushMsg{Group: "a:position", Seq: w.seq}
	if err := w.Now("a:position"); err != nil {
		t.Fatal(err)
	}
	if flushed, _ := w.Handle(msg); flushed {
		t.Error("cancelled group flushed again")
	}
	if c.n != 1 {
		t.Errorf("flushes = %d", c.n)
	}
}

func TestCancelPrefixAndFlushPending(t *testing.T) {
	c := &counter{}
	w := New(time.Millisecond, c.flush)

	w.Touch("a:title")
	w.Touch("a:dates")
	w.Touch("b:title")
	w.CancelPrefix("a:")
	if w.Pending() != 1 {
		t.Fatalf("pending = %d", w.Pending())
	}

	if err := w.FlushPending(); err != nil {
		t.Fatal(err)
	}
	if err := w.FlushPending(); err != nil {
		t.Fatal(err)
	}
	if c.n != 1 || w.Pending() != 0 {
		t.Errorf("flushes = %d pending = %d", c.n, w.Pending())
	}
}

func TestHandleReturnsFlushError(t *testing.T) {
	boom := errors.New("disk full")
	w := New(time.Millisecond, (&counter{err: boom}).flush)
	w.Touch("g")
	if _, err := w.Handle(FlushMsg{Group: "g", Seq: w.seq}); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
}
