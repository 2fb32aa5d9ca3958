package reader

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

// ver starts a versioned payload, unversioned starts a v0 payload whose
// version word is its first field.
func ver(v int) *decode.Writer { return (&decode.Writer{}).Version(v) }

func unversioned(first uint16) *decode.Writer { return (&decode.Writer{}).U16(first) }

const (
	intro  = uint16(desc.DefaultIntroDate)
	retire = uint16(desc.DefaultRetireDate)
)

type versionCase struct {
	name    string
	typ     obj.Type
	payload *decode.Writer
	want    any
}

func runVersionCases(t *testing.T, tests []versionCase) {
	t.Helper()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := read(t, tc.typ, tc.payload.Bytes())
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBridgeOldVersions(t *testing.T) {
	t.Parallel()

	road := uint8(desc.RoadWT)

	runVersionCases(t, []versionCase{
		{"v0", obj.Bridge, unversioned(120).U32(5000).U8(road), &desc.Bridge{
			Waytype: desc.RoadWT, TopSpeed: 120, Price: 5000, Maintenance: 800,
			MaxWeight: 999, AxleLoad: 9999, IntroDate: intro, RetireDate: retire, ClipBelow: true,
		}},
		{"v1", obj.Bridge, ver(1).U16(90).U32(4000).U32(300).U8(road), &desc.Bridge{
			Waytype: desc.RoadWT, TopSpeed: 90, Price: 4000, Maintenance: 300,
			MaxWeight: 999, AxleLoad: 9999, IntroDate: intro, RetireDate: retire, ClipBelow: true,
		}},
		{"v2", obj.Bridge, ver(2).U16(90).U32(4000).U32(300).U8(road).U8(3).U8(10), &desc.Bridge{
			Waytype: desc.RoadWT, TopSpeed: 90, Price: 4000, Maintenance: 300,
			PillarsEvery: 3, MaxLength: 10,
			MaxWeight: 999, AxleLoad: 9999, IntroDate: intro, RetireDate: retire, ClipBelow: true,
		}},
		{"v3", obj.Bridge, ver(3).U16(90).U32(4000).U32(300).U8(road).U8(3).U8(10).
			U16(1200).U16(2400), &desc.Bridge{
			Waytype: desc.RoadWT, TopSpeed: 90, Price: 4000, Maintenance: 300,
			PillarsEvery: 3, MaxLength: 10,
			MaxWeight: 999, AxleLoad: 9999, IntroDate: 1200, RetireDate: 2400, ClipBelow: true,
		}},
		{"v4", obj.Bridge, ver(4).U16(90).U32(4000).U32(300).U8(road).U8(3).U8(10).
			U16(1200).U16(2400).Bool(true), &desc.Bridge{
			Waytype: desc.RoadWT, TopSpeed: 90, Price: 4000, Maintenance: 300,
			PillarsEvery: 3, MaxLength: 10, PillarsAsymmetric: true,
			MaxWeight: 999, AxleLoad: 9999, IntroDate: 1200, RetireDate: 2400, ClipBelow: true,
		}},
		{"v5", obj.Bridge, ver(5).U16(90).U32(4000).U32(300).U8(road).U8(3).U8(10).
			U16(1200).U16(2400).Bool(false).U8(4), &desc.Bridge{
			Waytype: desc.RoadWT, TopSpeed: 90, Price: 4000, Maintenance: 300,
			PillarsEvery: 3, MaxLength: 10, MaxHeight: 4,
			MaxWeight: 999, AxleLoad: 9999, IntroDate: 1200, RetireDate: 2400, ClipBelow: true,
		}},
		{"v6", obj.Bridge, ver(6).U16(90).U32(4000).U32(300).U8(road).U8(3).U8(10).
			U16(1200).U16(2400).Bool(false).U8(4).U8(2), &desc.Bridge{
			Waytype: desc.RoadWT, TopSpeed: 90, Price: 4000, Maintenance: 300,
			PillarsEvery: 3, MaxLength: 10, MaxHeight: 4, Seasons: 2,
			MaxWeight: 999, AxleLoad: 9999, IntroDate: 1200, RetireDate: 2400, ClipBelow: true,
		}},
		{"v7", obj.Bridge, ver(7).U16(90).U32(4000).U32(300).U8(road).U8(3).U8(10).
			U16(1200).U16(2400).Bool(false).U8(4).U8(2).U16(12), &desc.Bridge{
			Waytype: desc.RoadWT, TopSpeed: 90, Price: 4000, Maintenance: 300,
			PillarsEvery: 3, MaxLength: 10, MaxHeight: 4, Seasons: 2,
			MaxWeight: 999, AxleLoad: 12, IntroDate: 1200, RetireDate: 2400, ClipBelow: true,
		}},
		{"v8", obj.Bridge, ver(8).U16(90).U32(4000).U32(300).U8(road).U8(3).U8(10).
			U16(1200).U16(2400).Bool(false).U8(4).U8(2).U16(12).U32(40), &desc.Bridge{
			Waytype: desc.RoadWT, TopSpeed: 90, Price: 4000, Maintenance: 300,
			PillarsEvery: 3, MaxLength: 10, MaxHeight: 4, Seasons: 2,
			MaxWeight: 40, AxleLoad: 12, IntroDate: 1200, RetireDate: 2400, ClipBelow: true,
		}},
	})
}

func TestTunnelOldVersions(t *testing.T) {
	t.Parallel()

	track := uint8(desc.TrackWT)

	runVersionCases(t, []versionCase{
		{"v0", obj.Tunnel, unversioned(100).U32(8000).U32(500).U8(track), &desc.Tunnel{
			Waytype: desc.TrackWT, TopSpeed: 100, Price: 8000, Maintenance: 500,
			AxleLoad: 9999, IntroDate: intro, RetireDate: retire,
		}},
		{"v1", obj.Tunnel, ver(1).U32(160).U32(8000).U32(500).U8(track), &desc.Tunnel{
			Waytype: desc.TrackWT, TopSpeed: 160, Price: 8000, Maintenance: 500,
			AxleLoad: 9999, IntroDate: intro, RetireDate: retire,
		}},
		{"v2", obj.Tunnel, ver(2).U32(160).U32(8000).U32(500).U8(track).U16(1300).U16(2500), &desc.Tunnel{
			Waytype: desc.TrackWT, TopSpeed: 160, Price: 8000, Maintenance: 500,
			AxleLoad: 9999, IntroDate: 1300, RetireDate: 2500,
		}},
		{"v3", obj.Tunnel, ver(3).U32(160).U32(8000).U32(500).U8(track).U16(1300).U16(2500).
			U8(1), &desc.Tunnel{
			Waytype: desc.TrackWT, TopSpeed: 160, Price: 8000, Maintenance: 500,
			AxleLoad: 9999, IntroDate: 1300, RetireDate: 2500, Seasons: 1,
		}},
		{"v4", obj.Tunnel, ver(4).U32(160).U32(8000).U32(500).U8(track).U16(1300).U16(2500).
			U8(1).Bool(true), &desc.Tunnel{
			Waytype: desc.TrackWT, TopSpeed: 160, Price: 8000, Maintenance: 500,
			AxleLoad: 9999, IntroDate: 1300, RetireDate: 2500, Seasons: 1, HasWay: true,
		}},
	})
}

func TestFactoryOldVersions(t *testing.T) {
	t.Parallel()

	runVersionCases(t, []versionCase{
		{"v0", obj.Factory, unversioned(uint16(desc.OnWater)).U16(20).U16(10).U16(5).U8(130).
			U16(1).U16(2).U16(3), &desc.Factory{
			Placement: desc.OnWater, Productivity: 20, Range: 10, Chance: 5, Color: 130,
			SupplierCount: 1, ProductCount: 2, PaxLevel: 3, Sound: desc.NoSound,
			ElectricBoost: 256, PaxBoost: 256, MailBoost: 256,
			ElectricDemand: 65535, PaxDemand: 65535, MailDemand: 65535,
		}},
		{"v1", obj.Factory, ver(1).U16(uint16(desc.OnLand)).U16(20).U16(10).U16(5).U8(130).
			U16(1).U16(2).U16(3), &desc.Factory{
			Placement: desc.OnLand, Productivity: 20, Range: 10, Chance: 5, Color: 130,
			SupplierCount: 1, ProductCount: 2, PaxLevel: 3, Sound: desc.NoSound,
			ElectricBoost: 256, PaxBoost: 256, MailBoost: 256,
			ElectricDemand: 65535, PaxDemand: 65535, MailDemand: 65535,
		}},
		{"v2", obj.Factory, ver(2).U16(uint16(desc.OnLand)).U16(20).U16(10).U16(5).U8(130).
			U16(1).U16(2).U16(3).Bool(true), &desc.Factory{
			Placement: desc.OnLand, Productivity: 20, Range: 10, Chance: 5, Color: 130,
			SupplierCount: 1, ProductCount: 2, PaxLevel: 3, Sound: desc.NoSound,
			ElectricityProducer: true, ElectricBoost: 256, PaxBoost: 256, MailBoost: 256,
			ElectricDemand: 65535, PaxDemand: 65535, MailDemand: 65535,
		}},
		{"v3", obj.Factory, ver(3).U16(uint16(desc.OnLand)).U16(20).U16(10).U16(5).U8(130).
			U16(1).U16(2).U16(3).Bool(false).U16(10).U16(2).U16(5).U16(3), &desc.Factory{
			Placement: desc.OnLand, Productivity: 20, Range: 10, Chance: 5, Color: 130,
			SupplierCount: 1, ProductCount: 2, PaxLevel: 3, Sound: desc.NoSound,
			ExpandProbability: 10, ExpandMinimum: 2, ExpandRange: 5, ExpandTimes: 3,
			ElectricBoost: 256, PaxBoost: 256, MailBoost: 256,
			ElectricDemand: 65535, PaxDemand: 65535, MailDemand: 65535,
		}},
		{"v4", obj.Factory, ver(4).U16(uint16(desc.OnLand)).U16(20).U16(10).U16(5).U8(130).
			U16(1).U16(2).U16(3).Bool(false).U16(10).U16(2).U16(5).U16(3).
			U16(100).U16(200).U16(300).U16(400).U16(500).U16(600), &desc.Factory{
			Placement: desc.OnLand, Productivity: 20, Range: 10, Chance: 5, Color: 130,
			SupplierCount: 1, ProductCount: 2, PaxLevel: 3, Sound: desc.NoSound,
			ExpandProbability: 10, ExpandMinimum: 2, ExpandRange: 5, ExpandTimes: 3,
			ElectricBoost: 100, PaxBoost: 200, MailBoost: 300,
			ElectricDemand: 400, PaxDemand: 500, MailDemand: 600,
		}},
	})
}

func TestFactoryPartVersions(t *testing.T) {
	t.Parallel()

	runVersionCases(t, []versionCase{
		{"smoke v0", obj.FSmoke, unversioned(5).S16(-2).S16(1).S16(-1).S16(400), &desc.FactorySmoke{
			PosX: 5, PosY: -2, OffsetX: 1, OffsetY: -1, Interval: 400,
		}},
		{"smoke v1", obj.FSmoke, ver(1).S16(-5).S16(2).S16(0).S16(3).S16(250).S16(16).S16(1500), &desc.FactorySmoke{
			PosX: -5, PosY: 2, OffsetX: 0, OffsetY: 3, Interval: 250, Uplift: 16, Lifetime: 1500,
		}},
		{"product v0", obj.FProduct, unversioned(300), &desc.FactoryProduct{Capacity: 300, Factor: 256}},
		{"product v1", obj.FProduct, ver(1).U16(300).U16(512), &desc.FactoryProduct{Capacity: 300, Factor: 512}},
		{"supplier v0", obj.FSupplier, unversioned(400).U16(2).U16(100), &desc.FactorySupplier{
			Capacity: 400, Count: 2, Consumption: 100,
		}},
		{"supplier v1", obj.FSupplier, ver(1).U16(400).U16(2).U16(100), &desc.FactorySupplier{
			Capacity: 400, Count: 2, Consumption: 100,
		}},
		{"fields v1", obj.Fields, ver(1).U16(10).U16(20).U16(2).U16(5), &desc.FieldGroup{
			Probability: 10, MaxFields: 20, MinFields: 2, StartFields: 5,
		}},
		{"field class v1", obj.FieldClass, ver(1).Bool(true).U16(64).U16(500).U16(3), &desc.FieldClass{
			SnowImage: true, Production: 64, Capacity: 500, Weight: 3,
		}},
	})
}

func TestWayPartOldVersions(t *testing.T) {
	t.Parallel()

	road, track := uint8(desc.RoadWT), uint8(desc.TrackWT)

	runVersionCases(t, []versionCase{
		{"wayobj v1", obj.WayObj, ver(1).U32(300).U32(10).U16(120).U16(1500).U16(2400).
			U8(track).U8(uint8(desc.OverheadWT)), &desc.WayObj{
			Waytype: desc.TrackWT, OwnWaytype: desc.OverheadWT, Price: 300, Maintenance: 10,
			TopSpeed: 120, IntroDate: 1500, RetireDate: 2400,
		}},
		{"crossing v0", obj.Crossing, unversioned(uint16(desc.RoadWT)).U16(uint16(desc.TrackWT)).
			U16(50).U16(120), &desc.Crossing{
			Waytypes: [2]desc.Waytype{desc.RoadWT, desc.TrackWT}, TopSpeeds: [2]uint16{50, 120},
			IntroDate: intro, RetireDate: retire, Sound: desc.NoSound,
		}},
		{"crossing v1", obj.Crossing, ver(1).U8(road).U8(track).U16(50).U16(120).S8(4), &desc.Crossing{
			Waytypes: [2]desc.Waytype{desc.RoadWT, desc.TrackWT}, TopSpeeds: [2]uint16{50, 120},
			IntroDate: intro, RetireDate: retire, Sound: 4,
		}},
		{"crossing v1 sound file", obj.Crossing, ver(1).U8(road).U8(track).U16(50).U16(120).
			S8(int8(desc.LoadSound)).PString("bell.wav"), &desc.Crossing{
			Waytypes: [2]desc.Waytype{desc.RoadWT, desc.TrackWT}, TopSpeeds: [2]uint16{50, 120},
			IntroDate: intro, RetireDate: retire, Sound: desc.LoadSound, SoundFile: "bell.wav",
		}},
		{"sign v0", obj.RoadSign, unversioned(30).U8(4), &desc.RoadSign{
			Waytype: desc.RoadWT, MinSpeed: 30, Price: 500, Flags: 4, OffsetLeft: 14,
			IntroDate: intro, RetireDate: retire,
		}},
		{"sign v1", obj.RoadSign, ver(1).U16(30).U32(1200).U8(4), &desc.RoadSign{
			Waytype: desc.RoadWT, MinSpeed: 30, Price: 1200, Flags: 4, OffsetLeft: 14,
			IntroDate: intro, RetireDate: retire,
		}},
		{"sign v2", obj.RoadSign, ver(2).U16(30).U32(1200).U8(4).U8(track), &desc.RoadSign{
			Waytype: desc.TrackWT, MinSpeed: 30, Price: 1200, Flags: 4, OffsetLeft: 14,
			IntroDate: intro, RetireDate: retire,
		}},
		{"sign v3", obj.RoadSign, ver(3).U16(30).U32(1200).U8(4).U8(track).U16(1400).U16(2000), &desc.RoadSign{
			Waytype: desc.TrackWT, MinSpeed: 30, Price: 1200, Flags: 4, OffsetLeft: 14,
			IntroDate: 1400, RetireDate: 2000,
		}},
	})
}

func TestSceneryOldVersions(t *testing.T) {
	t.Parallel()

	runVersionCases(t, []versionCase{
		{"citycar v0", obj.CityCar, unversioned(50).U16(90), &desc.CityCar{
			Chance: 50, TopSpeed: 90, IntroDate: intro, RetireDate: retire,
		}},
		{"citycar v1", obj.CityCar, ver(1).U16(50).U16(90).U16(1930*16 + 3).U16(1980 * 16), &desc.CityCar{
			Chance: 50, TopSpeed: 90, IntroDate: 1930*12 + 3, RetireDate: 1980 * 12,
		}},
		{"pedestrian v0", obj.Pedestrian, unversioned(40), &desc.Pedestrian{
			Chance: 40, IntroDate: intro, RetireDate: retire, Offset: 20,
		}},
		{"pedestrian v1", obj.Pedestrian, ver(1).U16(40), &desc.Pedestrian{
			Chance: 40, IntroDate: intro, RetireDate: retire, Offset: 20,
		}},
		{"pedestrian v2", obj.Pedestrian, ver(2).U16(40).U16(1500).U16(2500).U16(2).U16(6), &desc.Pedestrian{
			Chance: 40, IntroDate: 1500, RetireDate: 2500, StepsPerFrame: 2, Offset: 6,
		}},
		{"tree v0", obj.Tree, unversioned(12), &desc.Tree{Climates: desc.AllClimates, Distribution: 12, Seasons: 1}},
		{"tree v1", obj.Tree, ver(1).U16(0x06).U8(7), &desc.Tree{Climates: 0x06, Distribution: 7, Seasons: 1}},
		{"tile v0", obj.Tile, unversioned(3), &desc.Tile{Index: 3, Phases: 1, Seasons: 1}},
		{"tile v1", obj.Tile, ver(1).U16(4).U16(2), &desc.Tile{Index: 2, Phases: 4, Seasons: 1}},
		{"sound v0", obj.Sound, unversioned(7), &desc.Sound{ID: 7}},
		{"sound v1", obj.Sound, ver(1).S16(12), &desc.Sound{ID: 12}},
	})
}

func TestLegacyPayloadRejected(t *testing.T) {
	t.Parallel()

	for _, typ := range []obj.Type{obj.WayObj, obj.Fields, obj.FieldClass, obj.GroundObj} {
		t.Run(typ.String(), func(t *testing.T) {
			t.Parallel()

			r, ok := Default().Get(typ)
			require.True(t, ok)
			_, err := r.Read(pakfile.NodeInfo{Type: typ}, unversioned(1).U16(2).U16(3).Bytes())

			var uv *UnknownVersionError
			require.True(t, errors.As(err, &uv), "got %v", err)
			assert.Equal(t, 0, uv.Version)
		})
	}
}
