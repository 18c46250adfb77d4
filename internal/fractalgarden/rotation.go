package fractalgarden

import "math"

// Angles in radians for rotations about the coordinate axes.
type Rot3 struct {
	X, Y, Z Real
}

func RotX(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

func RotY(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}

func RotZ(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// RotFromAngles composes Rz·Ry·Rx, so X is applied first.
func RotFromAngles(r Rot3) Mat3 {
	return RotZ(r.Z).Mul(RotY(r.Y).Mul(RotX(r.X)))
}

// RotatePoints returns a rotated copy of pts about the origin.
func RotatePoints(pts []Point3D, r Rot3) []Point3D {
	R := RotFromAngles(r)
	out := make([]Point3D, len(pts))
	for i, p := range pts {
		out[i] = Point3D(R.MulVec(p.Vec()))
	}
	return out
}

// RotationBetween returns the rotation taking the direction of a onto the
// direction of b. Both must be non-zero.
//
// Rodrigues form: R = I + [v]x + [v]x² · (1-c)/s², with v = â×b̂, c = â·b̂, s = |v|.
// Parallel vectors give I; opposite vectors give a half turn about an axis
// perpendicular to a.
func RotationBetween(a, b Vec3) Mat3 {
	an, bn := a.Normalize(), b.Normalize()
	v := an.Cross(bn)
	c := an.Dot(bn)
	s := v.Norm()
	if s < epsAlign {
		if c > 0 {
			return I3()
		}
		u := an.Ortho()
		DebugLogOnce("opposite directions, half turn about %v", u)
		return outer(u, u).Scale(2).Add(I3().Scale(-1))
	}
	K := skew(v)
	return I3().Add(K).Add(K.Mul(K).Scale((1 - c) / (s * s)))
}
