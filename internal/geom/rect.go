package geom

// Rect is an axis-aligned rectangle in tile space.
type Rect struct {
	Origin Koord
	Size   Koord
}

// Rc is a convenience constructor for Rect.
func Rc(x, y, w, h int16) Rect {
	return Rect{Koord{x, y}, Koord{w, h}}
}

// End returns the exclusive lower-right corner.
func (r Rect) End() Koord { return r.Origin.Add(r.Size) }

// Area returns width times height.
func (r Rect) Area() int {
	return int(r.Size.X) * int(r.Size.Y)
}

// HasNoArea reports whether the size is the zero vector.
func (r Rect) HasNoArea() bool {
	return r.Size == Koord{}
}

// Contains reports whether k lies inside the rectangle.
func (r Rect) Contains(k Koord) bool {
	end := r.End()
	return k.X >= r.Origin.X && k.X < end.X && k.Y >= r.Origin.Y && k.Y < end.Y
}

// Mask intersects r with o in place. An empty intersection zeroes both
// origin and size.
func (r *Rect) Mask(o Rect) {
	lo := r.Origin.ClipMax(o.Origin)
	hi := r.End().ClipMin(o.End())
	if hi.X <= lo.X || hi.Y <= lo.Y {
		*r = Rect{}
		return
	}

	r.Origin = lo
	r.Size = hi.Sub(lo)
}

// FragmentDifference appends r minus remove to dst as at most four
// rectangles: the low-y strip, the left strip, the right strip and the high-y
// strip, in that order. The low-y and high-y strips span the full width so
// wide fragments are preferred.
func (r Rect) FragmentDifference(remove Rect, dst []Rect) []Rect {
	m := remove
	m.Mask(r)
	if m == r {
		return dst
	}
	if m.HasNoArea() {
		return append(dst, r)
	}

	end := r.End()
	mEnd := m.End()

	if m.Origin.Y > r.Origin.Y {
		dst = append(dst, Rect{r.Origin, Koord{r.Size.X, m.Origin.Y - r.Origin.Y}})
	}
	if m.Origin.X > r.Origin.X {
		dst = append(dst, Rect{Koord{r.Origin.X, m.Origin.Y}, Koord{m.Origin.X - r.Origin.X, m.Size.Y}})
	}
	if mEnd.X < end.X {
		dst = append(dst, Rect{Koord{mEnd.X, m.Origin.Y}, Koord{end.X - mEnd.X, m.Size.Y}})
	}
	if mEnd.Y < end.Y {
		dst = append(dst, Rect{Koord{r.Origin.X, mEnd.Y}, Koord{r.Size.X, end.Y - mEnd.Y}})
	}

	return dst
}
