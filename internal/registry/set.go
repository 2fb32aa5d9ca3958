package registry

import (
	"slices"
	"strings"

	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
)

// Savegame id limits.
const (
	MaxTreeTypes      = 255
	MaxGroundObjTypes = 65535
)

// Set is every domain table of one loaded pakset.
type Set struct {
	Goods        *Table[*desc.Goods]
	Vehicles     *Table[*desc.Vehicle]
	Ways         *Table[*desc.Way]
	WayObjs      *Table[*desc.WayObj]
	Buildings    *Table[*desc.Building]
	Bridges      *Table[*desc.Bridge]
	Tunnels      *Table[*desc.Tunnel]
	Factories    *Table[*desc.Factory]
	FieldClasses *Table[*desc.FieldClass]
	Crossings    *Table[*desc.Crossing]
	Signs        *Table[*desc.RoadSign]
	CityCars     *Table[*desc.CityCar]
	Pedestrians  *Table[*desc.Pedestrian]
	Grounds      *Table[*desc.Ground]
	Trees        *Table[*desc.Tree]
	GroundObjs   *Table[*desc.GroundObj]
	Sounds       *Table[*desc.Sound]
	Skins        map[obj.Type]*Table[*desc.Skin]

	TreeIDs      *IDTable
	GroundObjIDs *IDTable

	doubled []Doubled
}

// SkinTypes are the record tags registered as interface skins.
var SkinTypes = []obj.Type{obj.Menu, obj.Cursor, obj.Symbol, obj.Misc, obj.Smoke}

// NewSet returns empty tables.
func NewSet() *Set {
	s := &Set{}
	d := &s.doubled

	s.Goods = NewTable[*desc.Goods](obj.Good, d)
	s.Vehicles = NewTable[*desc.Vehicle](obj.Vehicle, d)
	s.Ways = NewTable[*desc.Way](obj.Way, d)
	s.WayObjs = NewTable[*desc.WayObj](obj.WayObj, d)
	s.Buildings = NewTable[*desc.Building](obj.Building, d)
	s.Bridges = NewTable[*desc.Bridge](obj.Bridge, d)
	s.Tunnels = NewTable[*desc.Tunnel](obj.Tunnel, d)
	s.Factories = NewTable[*desc.Factory](obj.Factory, d)
	s.FieldClasses = NewTable[*desc.FieldClass](obj.FieldClass, d)
	s.Crossings = NewTable[*desc.Crossing](obj.Crossing, d)
	s.Signs = NewTable[*desc.RoadSign](obj.RoadSign, d)
	s.CityCars = NewTable[*desc.CityCar](obj.CityCar, d)
	s.Pedestrians = NewTable[*desc.Pedestrian](obj.Pedestrian, d)
	s.Grounds = NewTable[*desc.Ground](obj.Ground, d)
	s.Trees = NewTable[*desc.Tree](obj.Tree, d)
	s.GroundObjs = NewTable[*desc.GroundObj](obj.GroundObj, d)
	s.Sounds = NewTable[*desc.Sound](obj.Sound, d)

	s.Skins = make(map[obj.Type]*Table[*desc.Skin], len(SkinTypes))
	for _, t := range SkinTypes {
		s.Skins[t] = NewTable[*desc.Skin](t, d)
	}

	return s
}

// Doubled returns every replacement seen so far, in registration order.
func (s *Set) Doubled() []Doubled { return s.doubled }

// AssignTreeIDs numbers the registered trees for savegames.
func (s *Set) AssignTreeIDs() error {
	ids, err := NewIDTable(s.Trees.Names(), MaxTreeTypes, ErrTooManyTrees)
	if err != nil {
		return err
	}
	s.TreeIDs = ids

	return nil
}

// AssignGroundObjIDs numbers the registered ground objects for savegames.
func (s *Set) AssignGroundObjIDs() error {
	ids, err := NewIDTable(s.GroundObjs.Names(), MaxGroundObjTypes, ErrTooManyGroundObjs)
	if err != nil {
		return err
	}
	s.GroundObjIDs = ids

	return nil
}

// TreeBySavedID resolves a tree id from a savegame with its saved name table.
func (s *Set) TreeBySavedID(saved []string, id int) (*desc.Tree, bool) {
	if id < 0 || id >= len(saved) {
		return nil, false
	}

	return s.Trees.Get(saved[id])
}

// Counts returns the number of entries per record tag.
func (s *Set) Counts() map[obj.Type]int {
	out := map[obj.Type]int{
		obj.Good:       s.Goods.Len(),
		obj.Vehicle:    s.Vehicles.Len(),
		obj.Way:        s.Ways.Len(),
		obj.WayObj:     s.WayObjs.Len(),
		obj.Building:   s.Buildings.Len(),
		obj.Bridge:     s.Bridges.Len(),
		obj.Tunnel:     s.Tunnels.Len(),
		obj.Factory:    s.Factories.Len(),
		obj.FieldClass: s.FieldClasses.Len(),
		obj.Crossing:   s.Crossings.Len(),
		obj.RoadSign:   s.Signs.Len(),
		obj.CityCar:    s.CityCars.Len(),
		obj.Pedestrian: s.Pedestrians.Len(),
		obj.Ground:     s.Grounds.Len(),
		obj.Tree:       s.Trees.Len(),
		obj.GroundObj:  s.GroundObjs.Len(),
		obj.Sound:      s.Sounds.Len(),
	}
	for t, tab := range s.Skins {
		out[t] = tab.Len()
	}

	return out
}

// Object is one registered descriptor.
type Object struct {
	Type  obj.Type `json:"type"`
	Name  string   `json:"name"`
	Value any      `json:"value"`
}

// Objects returns every registered descriptor, sorted by tag name and then
// by object name. A zero filter selects all tags.
func (s *Set) Objects(filter obj.Type) []Object {
	var out []Object
	collect(&out, filter, s.Goods)
	collect(&out, filter, s.Vehicles)
	collect(&out, filter, s.Ways)
	collect(&out, filter, s.WayObjs)
	collect(&out, filter, s.Buildings)
	collect(&out, filter, s.Bridges)
	collect(&out, filter, s.Tunnels)
	collect(&out, filter, s.Factories)
	collect(&out, filter, s.FieldClasses)
	collect(&out, filter, s.Crossings)
	collect(&out, filter, s.Signs)
	collect(&out, filter, s.CityCars)
	collect(&out, filter, s.Pedestrians)
	collect(&out, filter, s.Grounds)
	collect(&out, filter, s.Trees)
	collect(&out, filter, s.GroundObjs)
	collect(&out, filter, s.Sounds)
	for _, t := range SkinTypes {
		collect(&out, filter, s.Skins[t])
	}

	slices.SortStableFunc(out, func(a, b Object) int {
		return strings.Compare(a.Type.String(), b.Type.String())
	})

	return out
}

func collect[T any](out *[]Object, filter obj.Type, tab *Table[T]) {
	if filter != 0 && filter != tab.Type() {
		return
	}
	for _, name := range tab.Names() {
		v, _ := tab.Get(name)
		*out = append(*out, Object{Type: tab.Type(), Name: name, Value: v})
	}
}
