package fractalgarden

import "github.com/golang/geo/r3"

// Vec3 represents a direction (not a position) in 3D space.
type Vec3 = r3.Vector

// UpVec is the canonical up direction the tree frame is built from.
var UpVec = Vec3{X: 0, Y: 0, Z: 1}

func V3(x, y, z Real) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func vecIsFinite(v Vec3) bool { return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) }

func (A Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z,
		Y: A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z,
		Z: A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z,
	}
}
