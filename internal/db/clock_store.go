package db

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/balkashynov/tminus/internal/clock"
	"github.com/balkashynov/tminus/internal/models"
)

// ClockStore persists the ordered clock collection under one key
type ClockStore struct {
	kv      *KV
	factory *clock.Factory
}

// NewClockStore creates a store that backfills missing fields with factory defaults
func NewClockStore(kv *KV, factory *clock.Factory) *ClockStore {
	return &ClockStore{kv: kv, factory: factory}
}

// storedClock is the on-disk shape of one clock
type storedClock struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	TargetDate  string `json:"targetDate"`
	IsMinimized bool   `json:"isMinimized"`
	Top         coord  `json:"top"`
	Left        coord  `json:"left"`
	TitleColor  string `json:"titleColor"`
}

// Load returns the stored clocks in order. Missing storage gives an empty
// slice. A collection that is not a list of objects is logged and treated
// as empty. Fields of the wrong type are backfilled individually.
func (s *ClockStore) Load() ([]models.Clock, error) {
	raw, ok, err := s.kv.Get(models.KeyClocks)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.Clock{}, nil
	}

	clocks, err := s.decode([]byte(raw))
	if err != nil {
		log.Printf("clock store: discarding corrupt collection: %v", err)
		return []models.Clock{}, nil
	}
	return clocks, nil
}

func (s *ClockStore) decode(raw []byte) ([]models.Clock, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("collection is not a list: %w", err)
	}

	clocks := make([]models.Clock, 0, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
		clocks = append(clocks, s.factory.Backfill(clockFromFields(fields)))
	}
	return clocks, nil
}

// clockFromFields decodes each field on its own so one bad value only
// loses that value
func clockFromFields(fields map[string]json.RawMessage) models.Clock {
	var c models.Clock
	c.ID = decodeID(fields["id"])
	decodeField(fields["title"], &c.Title)
	decodeField(fields["startDate"], &c.StartDate)
	decodeField(fields["targetDate"], &c.TargetDate)
	decodeField(fields["isMinimized"], &c.IsMinimized)
	decodeField(fields["titleColor"], &c.TitleColor)

	var top, left coord
	decodeField(fields["top"], &top)
	decodeField(fields["left"], &left)
	if top.set && left.set {
		c.Position = &models.Position{Top: top.value, Left: left.value}
	}
	return c
}

func decodeField(raw json.RawMessage, dst any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

// decodeID accepts string IDs and the numeric IDs of older collections
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// Save replaces the whole stored collection with clocks
func (s *ClockStore) Save(clocks []models.Clock) error {
	out := make([]storedClock, 0, len(clocks))
	for _, c := range clocks {
		sc := storedClock{
			ID:          c.ID,
			Title:       c.Title,
			StartDate:   c.StartDate,
			TargetDate:  c.TargetDate,
			IsMinimized: c.IsMinimized,
			TitleColor:  c.TitleColor,
		}
		if c.Position != nil {
			sc.Top = coord{value: c.Position.Top, set: true}
			sc.Left = coord{value: c.Position.Left, set: true}
		}
		out = append(out, sc)
	}

	b, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to encode clocks: %w", err)
	}
	return s.kv.Put(models.KeyClocks, string(b))
}

// coord is a card coordinate. Unset coordinates are written as "auto".
type coord struct {
	value int
	set   bool
}

func (c coord) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte(`"auto"`), nil
	}
	return []byte(strconv.Itoa(c.value)), nil
}

// UnmarshalJSON accepts numbers, "123px" strings, "auto" and null
func (c *coord) UnmarshalJSON(b []byte) error {
	*c = coord{}
	if strings.TrimSpace(string(b)) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		c.value, c.set = int(n), true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil // null or another type: leave unset
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" || s == "auto" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	c.value, c.set = int(f), true
	return nil
}
