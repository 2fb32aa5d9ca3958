package reader

import (
	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

const (
	factoryVersion = 5

	defaultBoost  = 256
	defaultDemand = 65535
)

type factoryReader struct{}

func (factoryReader) Type() obj.Type { return obj.Factory }

func (factoryReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	f := &desc.Factory{Sound: desc.NoSound}

	if p.version == 0 {
		f.Placement = desc.Placement(p.first)
	} else {
		f.Placement = desc.Placement(p.U16())
	}
	f.Productivity = p.U16()
	f.Range = p.U16()
	f.Chance = p.U16()
	f.Color = p.U8()
	f.SupplierCount = p.U16()
	f.ProductCount = p.U16()
	f.PaxLevel = p.U16()

	if p.version >= 2 {
		f.ElectricityProducer = p.Bool()
	}
	if p.version >= 3 {
		f.ExpandProbability = p.U16()
		f.ExpandMinimum = p.U16()
		f.ExpandRange = p.U16()
		f.ExpandTimes = p.U16()
	}
	if p.version >= 4 {
		f.ElectricBoost = p.U16()
		f.PaxBoost = p.U16()
		f.MailBoost = p.U16()
		f.ElectricDemand = p.U16()
		f.PaxDemand = p.U16()
		f.MailDemand = p.U16()
	}
	if p.version >= 5 {
		f.SoundInterval = p.U32()
		f.Sound = int16(p.S8())
		f.SoundFile = p.soundName(f.Sound)
	}

	if err := p.done(obj.Factory, factoryVersion); err != nil {
		return nil, err
	}

	if p.version < 4 {
		f.ElectricBoost = defaultBoost
		f.PaxBoost = defaultBoost
		f.MailBoost = defaultBoost
		f.ElectricDemand = defaultDemand
		f.PaxDemand = defaultDemand
		f.MailDemand = defaultDemand
	}

	return f, nil
}

// Register collects the building, smoke, suppliers, products and fields of
// the factory. The checksum covers supplier and product goods, so it is
// taken once references are resolved.
func (factoryReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	f := data[*desc.Factory](env, h)

	f.Building = childData[*desc.Building](env, h, desc.FactoryBuildingChild)
	f.Smoke = childData[*desc.FactorySmoke](env, h, desc.FactorySmokeChild)
	f.Suppliers, f.Products, f.Fields = nil, nil, nil
	for i := desc.FactorySupplierChild; i < len(env.Arena.Get(h).Children); i++ {
		switch v := data[any](env, env.Arena.Child(h, i)).(type) {
		case *desc.FactorySupplier:
			f.Suppliers = append(f.Suppliers, v)
		case *desc.FactoryProduct:
			f.Products = append(f.Products, v)
		case *desc.FieldGroup:
			f.Fields = v
		}
	}

	if f.SoundFile != "" {
		f.Sound = env.Sounds.ID(f.SoundFile)
	}

	name := f.ObjName()
	put(env, env.Reg.Factories, name, f)
	env.OnResolved(func() { env.sum(obj.Factory, name, f) })

	return nil
}

// SuccessfullyLoaded warns about factories that neither produce nor consume.
func (factoryReader) SuccessfullyLoaded(env *Env) error {
	for _, f := range env.Reg.Factories.All() {
		if len(f.Products) == 0 && len(f.Suppliers) == 0 && !f.ElectricityProducer && f.PaxLevel == 0 {
			env.Log.WithField("name", f.ObjName()).Warn("factory has no inputs and no outputs")
		}
	}

	return nil
}

// EncodeFactory returns the newest factory payload.
func EncodeFactory(f *desc.Factory) []byte {
	w := &decode.Writer{}
	w.Version(factoryVersion).U16(uint16(f.Placement)).U16(f.Productivity).
		U16(f.Range).U16(f.Chance).U8(f.Color).U16(f.SupplierCount).
		U16(f.ProductCount).U16(f.PaxLevel).Bool(f.ElectricityProducer).
		U16(f.ExpandProbability).U16(f.ExpandMinimum).U16(f.ExpandRange).
		U16(f.ExpandTimes).U16(f.ElectricBoost).U16(f.PaxBoost).U16(f.MailBoost).
		U16(f.ElectricDemand).U16(f.PaxDemand).U16(f.MailDemand).
		U32(f.SoundInterval).S8(int8(f.Sound))
	if f.Sound == desc.LoadSound {
		w.PString(f.SoundFile)
	}

	return w.Bytes()
}

type smokeReader struct{ nop }

func (smokeReader) Type() obj.Type { return obj.FSmoke }

func (smokeReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	s := &desc.FactorySmoke{}

	if p.version == 0 {
		s.PosX = int16(p.first)
	} else {
		s.PosX = p.S16()
	}
	s.PosY = p.S16()
	s.OffsetX = p.S16()
	s.OffsetY = p.S16()
	s.Interval = p.S16()
	if p.version >= 1 {
		s.Uplift = p.S16()
		s.Lifetime = p.S16()
	}

	if err := p.done(obj.FSmoke, 1); err != nil {
		return nil, err
	}

	return s, nil
}

type productReader struct{}

func (productReader) Type() obj.Type { return obj.FProduct }

func (productReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	d := &desc.FactoryProduct{Factor: defaultBoost}

	if p.version == 0 {
		d.Capacity = p.first
	} else {
		d.Capacity = p.U16()
		d.Factor = p.U16()
	}

	if err := p.done(obj.FProduct, 1); err != nil {
		return nil, err
	}

	return d, nil
}

func (productReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	d := data[*desc.FactoryProduct](env, h)
	env.OnResolved(func() { d.Goods = childData[*desc.Goods](env, h, 0) })

	return nil
}

func (productReader) SuccessfullyLoaded(*Env) error { return nil }

type supplierReader struct{}

func (supplierReader) Type() obj.Type { return obj.FSupplier }

func (supplierReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	d := &desc.FactorySupplier{}

	if p.version == 0 {
		d.Capacity = p.first
	} else {
		d.Capacity = p.U16()
	}
	d.Count = p.U16()
	d.Consumption = p.U16()

	if err := p.done(obj.FSupplier, 1); err != nil {
		return nil, err
	}

	return d, nil
}

func (supplierReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	d := data[*desc.FactorySupplier](env, h)
	env.OnResolved(func() { d.Goods = childData[*desc.Goods](env, h, 0) })

	return nil
}

func (supplierReader) SuccessfullyLoaded(*Env) error { return nil }

type fieldGroupReader struct{}

func (fieldGroupReader) Type() obj.Type { return obj.Fields }

func (fieldGroupReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	if p.legacy {
		return nil, &UnknownVersionError{Type: obj.Fields, Version: 0}
	}

	d := &desc.FieldGroup{}
	d.Probability = p.U16()
	d.MaxFields = p.U16()
	d.MinFields = p.U16()
	d.StartFields = p.U16()

	if err := p.done(obj.Fields, 1); err != nil {
		return nil, err
	}

	return d, nil
}

func (fieldGroupReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	d := data[*desc.FieldGroup](env, h)
	d.Classes = nil
	for i := range env.Arena.Get(h).Children {
		if c := childData[*desc.FieldClass](env, h, i); c != nil {
			d.Classes = append(d.Classes, c)
		}
	}

	return nil
}

func (fieldGroupReader) SuccessfullyLoaded(*Env) error { return nil }

type fieldClassReader struct{}

func (fieldClassReader) Type() obj.Type { return obj.FieldClass }

func (fieldClassReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	if p.legacy {
		return nil, &UnknownVersionError{Type: obj.FieldClass, Version: 0}
	}

	d := &desc.FieldClass{}
	d.SnowImage = p.Bool()
	d.Production = p.U16()
	d.Capacity = p.U16()
	d.Weight = p.U16()

	if err := p.done(obj.FieldClass, 1); err != nil {
		return nil, err
	}

	return d, nil
}

func (fieldClassReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	d := data[*desc.FieldClass](env, h)
	d.Name = env.text(h, 0)
	put(env, env.Reg.FieldClasses, d.Name, d)

	return nil
}

func (fieldClassReader) SuccessfullyLoaded(*Env) error { return nil }
