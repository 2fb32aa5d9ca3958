// Package desc holds the typed descriptors decoded from pak nodes.
//
// Descriptors are plain values. Links to other descriptors (the freight of a
// vehicle, the way inside a tunnel) are filled after cross references have
// been resolved; until then they are nil.
package desc

import (
	"fmt"

	"github.com/woozymasta/simpak/internal/checksum"
	"github.com/woozymasta/simpak/internal/obj"
)

// Waytype is the kind of way a vehicle or structure runs on.
type Waytype int16

// Waytypes.
const (
	InvalidWT     Waytype = -1
	IgnoreWT      Waytype = 0
	RoadWT        Waytype = 1
	TrackWT       Waytype = 2
	WaterWT       Waytype = 3
	OverheadWT    Waytype = 4
	MonorailWT    Waytype = 5
	MaglevWT      Waytype = 6
	TramWT        Waytype = 7
	NarrowGaugeWT Waytype = 8
	AirWT         Waytype = 16
	PowerlineWT   Waytype = 128
	AnyWT         Waytype = 255
)

var waytypeNames = map[Waytype]string{
	InvalidWT:     "invalid",
	IgnoreWT:      "ignore",
	RoadWT:        "road",
	TrackWT:       "track",
	WaterWT:       "water",
	OverheadWT:    "overheadlines",
	MonorailWT:    "monorail",
	MaglevWT:      "maglev",
	TramWT:        "tram",
	NarrowGaugeWT: "narrowgauge",
	AirWT:         "air",
	PowerlineWT:   "power",
	AnyWT:         "any",
}

func (w Waytype) String() string {
	if s, ok := waytypeNames[w]; ok {
		return s
	}

	return fmt.Sprintf("waytype(%d)", int16(w))
}

// MarshalText renders the waytype by name.
func (w Waytype) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// SystemType refines a waytype: elevated, tram on road and so on.
type SystemType uint8

// System types.
const (
	FlatST     SystemType = 0
	ElevatedST SystemType = 1
	RunwayST   SystemType = 1
	TramST     SystemType = 7
)

// Date defaults, in years.
const (
	DefaultIntroYear  = 1900
	DefaultRetireYear = 2999
)

// Dates are months since year zero.
const (
	DefaultIntroDate  = DefaultIntroYear * 12
	DefaultRetireDate = DefaultRetireYear * 12
)

// MonthsFromBase16 converts an old date stored as year*16+month.
func MonthsFromBase16(d uint16) uint16 {
	return (d/16)*12 + d%16
}

// Sound ids.
const (
	NoSound   int16 = -1
	LoadSound int16 = -2
)

// AllClimates is the climate mask of objects available everywhere.
const AllClimates uint16 = 0x7fff

// CostMagic marks a price or maintenance that is derived from other values.
const CostMagic int32 = 0x7fffffff

// Named is embedded by every descriptor that carries name and copyright
// text children.
type Named struct {
	Name      string `json:"name"`
	Copyright string `json:"copyright,omitempty"`
}

// ObjName returns the registered name.
func (n *Named) ObjName() string { return n.Name }

// SetNames is called once the text children are known.
func (n *Named) SetNames(name, copyright string) {
	n.Name = name
	n.Copyright = copyright
}

// Namer is implemented by every descriptor embedding Named.
type Namer interface {
	ObjName() string
	SetNames(name, copyright string)
}

// Text is the payload of a TEXT node.
type Text struct {
	Value string `json:"value"`
}

// Xref is a by-name reference to another object.
type Xref struct {
	Type  obj.Type `json:"type"`
	Name  string   `json:"name"`
	Fatal bool     `json:"fatal"`
}

var (
	_ checksum.Checksummer = (*Goods)(nil)
	_ checksum.Checksummer = (*Vehicle)(nil)
	_ checksum.Checksummer = (*Way)(nil)
	_ checksum.Checksummer = (*WayObj)(nil)
	_ checksum.Checksummer = (*Building)(nil)
	_ checksum.Checksummer = (*Bridge)(nil)
	_ checksum.Checksummer = (*Tunnel)(nil)
	_ checksum.Checksummer = (*Factory)(nil)
	_ checksum.Checksummer = (*Crossing)(nil)
	_ checksum.Checksummer = (*RoadSign)(nil)
	_ checksum.Checksummer = (*CityCar)(nil)
	_ checksum.Checksummer = (*Tree)(nil)
	_ checksum.Checksummer = (*GroundObj)(nil)
)
