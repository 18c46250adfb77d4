package fractalgarden

import "math"

// View is an orthographic camera placed at elevation ElevDeg above the XY
// plane and rotated AzimDeg about +Z, looking at the origin.
type View struct {
	ElevDeg Real
	AzimDeg Real
}

// DefaultView matches the viewpoint the tree is shown from.
var DefaultView = View{ElevDeg: 10, AzimDeg: 60}

// Basis returns the camera frame as rows: screen right, screen up, towards
// the viewer.
func (v View) Basis() Mat3 {
	el, az := degToRad(v.ElevDeg), degToRad(v.AzimDeg)
	se, ce := math.Sin(el), math.Cos(el)
	sa, ca := math.Sin(az), math.Cos(az)
	return Mat3{M: [3][3]Real{
		{-sa, ca, 0},
		{-se * ca, -se * sa, ce},
		{ce * ca, ce * sa, se},
	}}
}

// Project maps p onto the screen plane.
func (v View) Project(p Point3D) Point2D {
	q := v.Basis().MulVec(p.Vec())
	return Point2D{X: q.X, Y: q.Y}
}

// ProjectAll projects every point with a single basis computation.
func (v View) ProjectAll(pts []Point3D) []Point2D {
	B := v.Basis()
	out := make([]Point2D, len(pts))
	for i, p := range pts {
		q := B.MulVec(p.Vec())
		out[i] = Point2D{X: q.X, Y: q.Y}
	}
	return out
}

// Turn returns v rotated by deg degrees of azimuth.
func (v View) Turn(deg Real) View {
	v.AzimDeg += deg
	return v
}
