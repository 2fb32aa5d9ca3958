package desc

import "github.com/woozymasta/simpak/internal/checksum"

// Placement is where a factory may be built.
type Placement uint16

// Placements.
const (
	OnLand Placement = iota
	OnWater
	InCity
)

// Factory child layout.
const (
	FactoryBuildingChild = 0
	FactorySmokeChild    = 1
	FactorySupplierChild = 2
)

// Factory describes an industry. Its name is the name of its building.
type Factory struct {
	Placement           Placement `json:"placement"`
	Productivity        uint16    `json:"productivity"`
	Range               uint16    `json:"range"`
	Chance              uint16    `json:"chance"`
	Color               uint8     `json:"color"`
	SupplierCount       uint16    `json:"supplier_count"`
	ProductCount        uint16    `json:"product_count"`
	PaxLevel            uint16    `json:"pax_level"`
	ElectricityProducer bool      `json:"electricity_producer"`
	ExpandProbability   uint16    `json:"expand_probability"`
	ExpandMinimum       uint16    `json:"expand_minimum"`
	ExpandRange         uint16    `json:"expand_range"`
	ExpandTimes         uint16    `json:"expand_times"`
	ElectricBoost       uint16    `json:"electric_boost"`
	PaxBoost            uint16    `json:"pax_boost"`
	MailBoost           uint16    `json:"mail_boost"`
	ElectricDemand      uint16    `json:"electric_demand"`
	PaxDemand           uint16    `json:"pax_demand"`
	MailDemand          uint16    `json:"mail_demand"`
	SoundInterval       uint32    `json:"sound_interval"`
	Sound               int16     `json:"sound"`
	SoundFile           string    `json:"sound_file,omitempty"`

	Building  *Building          `json:"-"`
	Smoke     *FactorySmoke      `json:"-"`
	Suppliers []*FactorySupplier `json:"-"`
	Products  []*FactoryProduct  `json:"-"`
	Fields    *FieldGroup        `json:"-"`
}

// ObjName returns the name of the factory building.
func (f *Factory) ObjName() string {
	if f.Building == nil {
		return ""
	}

	return f.Building.Name
}

// Checksum hashes the production fields and the goods of every supplier and
// product.
func (f *Factory) Checksum(c *checksum.Hash) {
	c.U16(uint16(f.Placement)).U16(f.Productivity).U16(f.Range).U16(f.Chance).
		U16(f.SupplierCount).U16(f.ProductCount).U16(f.PaxLevel).
		Bool(f.ElectricityProducer)
	for _, s := range f.Suppliers {
		s.Checksum(c)
	}
	for _, p := range f.Products {
		p.Checksum(c)
	}
}

// FactorySmoke places smoke above a factory.
type FactorySmoke struct {
	PosX     int16 `json:"pos_x"`
	PosY     int16 `json:"pos_y"`
	OffsetX  int16 `json:"offset_x"`
	OffsetY  int16 `json:"offset_y"`
	Interval int16 `json:"interval"`
	Uplift   int16 `json:"uplift"`
	Lifetime int16 `json:"lifetime"`
}

// FactorySupplier is an input of a factory.
type FactorySupplier struct {
	Capacity    uint16 `json:"capacity"`
	Count       uint16 `json:"count"`
	Consumption uint16 `json:"consumption"`

	Goods *Goods `json:"-"`
}

// Checksum hashes the input and the name of its goods.
func (s *FactorySupplier) Checksum(c *checksum.Hash) {
	c.U16(s.Capacity).U16(s.Count).U16(s.Consumption)
	if s.Goods != nil {
		c.Text(s.Goods.Name)
	}
}

// FactoryProduct is an output of a factory.
type FactoryProduct struct {
	Capacity uint16 `json:"capacity"`
	Factor   uint16 `json:"factor"`

	Goods *Goods `json:"-"`
}

// Checksum hashes the output and the name of its goods.
func (p *FactoryProduct) Checksum(c *checksum.Hash) {
	c.U16(p.Capacity).U16(p.Factor)
	if p.Goods != nil {
		c.Text(p.Goods.Name)
	}
}

// FieldGroup lists the field classes a farm may spawn.
type FieldGroup struct {
	Probability uint16 `json:"probability"`
	MaxFields   uint16 `json:"max_fields"`
	MinFields   uint16 `json:"min_fields"`
	StartFields uint16 `json:"start_fields"`

	Classes []*FieldClass `json:"-"`
}

// FieldClass is one kind of field.
type FieldClass struct {
	Named
	SnowImage  bool   `json:"snow_image"`
	Production uint16 `json:"production"`
	Capacity   uint16 `json:"capacity"`
	Weight     uint16 `json:"weight"`
}
