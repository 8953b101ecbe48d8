package slots

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// TimeSlot is immutable reference data configured per salon. Slots are
// never created or destroyed through the API.
type TimeSlot struct {
	ID    uint   `yaml:"id" json:"id"`
	Start string `yaml:"start" json:"start"` // HH:mm
	End   string `yaml:"end" json:"end"`     // HH:mm
}

type Table struct {
	slots []TimeSlot
	byID  map[uint]TimeSlot
}

type fileSchema struct {
	Slots []TimeSlot `yaml:"slots"`
}

// Default returns the built-in hourly grid, 09:00 through 17:00.
func Default() *Table {
	slots := make([]TimeSlot, 0, 8)
	for i := 0; i < 8; i++ {
		slots = append(slots, TimeSlot{
			ID:    uint(i + 1),
			Start: fmt.Sprintf("%02d:00", 9+i),
			End:   fmt.Sprintf("%02d:00", 10+i),
		})
	}
	t, _ := New(slots)
	return t
}

// Load reads the slot table from a YAML file. An empty path falls back to
// the built-in defaults.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slot config: %w", err)
	}

	var f fileSchema
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse slot config: %w", err)
	}

	return New(f.Slots)
}

func New(slots []TimeSlot) (*Table, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("slot config: no slots defined")
	}

	byID := make(map[uint]TimeSlot, len(slots))
	for _, s := range slots {
		if s.ID == 0 {
			return nil, fmt.Errorf("slot config: slot with zero id")
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("slot config: duplicate slot id %d", s.ID)
		}
		byID[s.ID] = s
	}

	ordered := make([]TimeSlot, len(slots))
	copy(ordered, slots)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Start == ordered[j].Start {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].Start < ordered[j].Start
	})

	return &Table{slots: ordered, byID: byID}, nil
}

// All returns every slot ascending by start time. Callers rely on this
// ordering for rendering.
func (t *Table) All() []TimeSlot {
	out := make([]TimeSlot, len(t.slots))
	copy(out, t.slots)
	return out
}

func (t *Table) Get(id uint) (TimeSlot, bool) {
	s, ok := t.byID[id]
	return s, ok
}

func (t *Table) Has(id uint) bool {
	_, ok := t.byID[id]
	return ok
}
