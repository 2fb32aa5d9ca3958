// Package geom provides the tile coordinate, rectangle, direction and slope
// value types shared by every descriptor and builder.
package geom

import "fmt"

// Koord is a 2D tile coordinate.
type Koord struct {
	X, Y int16
}

// Kd is a convenience constructor for Koord.
func Kd(x, y int16) Koord { return Koord{x, y} }

// KoordInvalid marks an unset coordinate.
var KoordInvalid = Koord{-1, -1}

// Add returns the component-wise sum.
func (k Koord) Add(o Koord) Koord {
	k.X += o.X
	k.Y += o.Y
	return k
}

// Sub returns the component-wise difference.
func (k Koord) Sub(o Koord) Koord {
	k.X -= o.X
	k.Y -= o.Y
	return k
}

// Neg returns the negated coordinate.
func (k Koord) Neg() Koord {
	k.X = -k.X
	k.Y = -k.Y
	return k
}

// Mul scales both components by n.
func (k Koord) Mul(n int16) Koord {
	k.X *= n
	k.Y *= n
	return k
}

// Div divides both components by n, truncating toward zero.
func (k Koord) Div(n int16) Koord {
	k.X /= n
	k.Y /= n
	return k
}

// Equal compares without branching on each component.
func (k Koord) Equal(o Koord) bool {
	return (k.X-o.X)|(k.Y-o.Y) == 0
}

// ClipMin lowers each component to at most the matching component of limit.
func (k Koord) ClipMin(limit Koord) Koord {
	k.X = min(k.X, limit.X)
	k.Y = min(k.Y, limit.Y)
	return k
}

// ClipMax raises each component to at least the matching component of limit.
func (k Koord) ClipMax(limit Koord) Koord {
	k.X = max(k.X, limit.X)
	k.Y = max(k.Y, limit.Y)
	return k
}

func (k Koord) String() string {
	return fmt.Sprintf("%d,%d", k.X, k.Y)
}

// Koord3D is a tile coordinate with a height level.
type Koord3D struct {
	X, Y int16
	Z    int8
}

// K3 is a convenience constructor for Koord3D.
func K3(x, y int16, z int8) Koord3D { return Koord3D{x, y, z} }

// Koord3DInvalid marks an unset 3D coordinate.
var Koord3DInvalid = Koord3D{-1, -1, -1}

// Koord2D drops the height.
func (k Koord3D) Koord2D() Koord { return Koord{k.X, k.Y} }

// Add returns the component-wise sum.
func (k Koord3D) Add(o Koord3D) Koord3D {
	k.X += o.X
	k.Y += o.Y
	k.Z += o.Z
	return k
}

// Sub returns the component-wise difference.
func (k Koord3D) Sub(o Koord3D) Koord3D {
	k.X -= o.X
	k.Y -= o.Y
	k.Z -= o.Z
	return k
}

// AddKoord moves the coordinate in the plane, keeping its height.
func (k Koord3D) AddKoord(o Koord) Koord3D {
	k.X += o.X
	k.Y += o.Y
	return k
}

// Neg returns the negated coordinate.
func (k Koord3D) Neg() Koord3D {
	return Koord3D{-k.X, -k.Y, -k.Z}
}

// Equal compares without branching on each component.
func (k Koord3D) Equal(o Koord3D) bool {
	return (int32(k.X-o.X) | int32(k.Y-o.Y) | int32(k.Z-o.Z)) == 0
}

func (k Koord3D) String() string {
	return fmt.Sprintf("%d,%d,%d", k.X, k.Y, k.Z)
}
