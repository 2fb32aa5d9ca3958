package loader

import (
	"slices"

	"github.com/woozymasta/simpak/internal/obj"
)

// Level ranks how much a missing object hurts a running game.
type Level int

// Missing object levels. Levels at or above MissingErrorThreshold may cause
// severe errors, the rest only visual ones.
const (
	MissingFactory        Level = 1
	MissingVehicle        Level = 2
	MissingSign           Level = 3
	MissingWayObj         Level = 4
	MissingErrorThreshold Level = 5
	MissingBridge         Level = 5
	MissingBuilding       Level = 6
	MissingWay            Level = 7
)

// LevelFor returns the level used for a missing object of type t.
func LevelFor(t obj.Type) (Level, bool) {
	switch t {
	case obj.Factory:
		return MissingFactory, true
	case obj.Vehicle:
		return MissingVehicle, true
	case obj.RoadSign:
		return MissingSign, true
	case obj.WayObj:
		return MissingWayObj, true
	case obj.Bridge, obj.Tunnel:
		return MissingBridge, true
	case obj.Building:
		return MissingBuilding, true
	case obj.Way:
		return MissingWay, true
	}

	return 0, false
}

// MissingTable collects names of objects that were asked for but are not in
// the loaded pakset. A name keeps the highest level it was added with.
type MissingTable struct {
	levels map[string]Level
}

// NewMissingTable returns an empty table.
func NewMissingTable() *MissingTable {
	return &MissingTable{levels: make(map[string]Level)}
}

// Add records name at level.
func (m *MissingTable) Add(name string, level Level) {
	if cur, ok := m.levels[name]; ok && cur >= level {
		return
	}
	m.levels[name] = level
}

// Level returns the recorded level of name.
func (m *MissingTable) Level(name string) (Level, bool) {
	l, ok := m.levels[name]
	return l, ok
}

// Len returns the number of missing names.
func (m *MissingTable) Len() int { return len(m.levels) }

// Severe returns the sorted names that may cause severe errors.
func (m *MissingTable) Severe() []string {
	return m.filter(func(l Level) bool { return l >= MissingErrorThreshold })
}

// Visual returns the sorted names that may only cause visual errors.
func (m *MissingTable) Visual() []string {
	return m.filter(func(l Level) bool { return l < MissingErrorThreshold })
}

func (m *MissingTable) filter(keep func(Level) bool) []string {
	var out []string
	for name, l := range m.levels {
		if keep(l) {
			out = append(out, name)
		}
	}
	slices.Sort(out)

	return out
}
