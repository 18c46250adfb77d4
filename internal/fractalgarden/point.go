package fractalgarden

import (
	"fmt"

	"github.com/golang/geo/r3"
)

type Real = float64

// Point2D is a sample in the plane (fern output).
type Point2D struct {
	X, Y Real
}

func (p Point2D) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point2D) IsFinite() bool { return isFinite(p.X) && isFinite(p.Y) }

// Point3D represents a position in 3D space (shell sample or tree vertex).
type Point3D r3.Vector

// P3 returns the point (x, y, z).
func P3(x, y, z Real) Point3D { return Point3D{X: x, Y: y, Z: z} }

// Add lets you translate a Point3D by a Vec3.
func (p Point3D) Add(v Vec3) Point3D {
	return Point3D(r3.Vector(p).Add(v))
}

// Sub returns the vector from o to p.
func (p Point3D) Sub(o Point3D) Vec3 {
	return r3.Vector(p).Sub(r3.Vector(o))
}

// Vec returns the position vector of p.
func (p Point3D) Vec() Vec3 { return r3.Vector(p) }

func (p Point3D) Distance(o Point3D) Real { return p.Sub(o).Norm() }

func (p Point3D) IsFinite() bool { return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z) }

func (p Point3D) String() string { return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z) }
