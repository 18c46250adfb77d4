package fractalgarden

import "math"

// ShellParams configures a double seashell: an outward spiral with Turns
// turns followed by an inverse spiral with TurnsInverse turns whose radius
// shrinks back to A.
type ShellParams struct {
	A, B, C      Real // base radius, radial growth per radian, rise per radian
	Turns        int
	TurnsInverse int
	Thickness    Real // cross-section radius
	SampleCount  int  // centerline samples per spiral
}

func (p ShellParams) Validate() error {
	for _, f := range []struct {
		name string
		v    Real
	}{{"a", p.A}, {"b", p.B}, {"c", p.C}, {"thickness", p.Thickness}} {
		if !isFinite(f.v) || f.v <= 0 {
			return invalidf("shell %s must be a finite value > 0, got %g", f.name, f.v)
		}
	}
	if p.Turns < 1 {
		return invalidf("shell turns must be >= 1, got %d", p.Turns)
	}
	if p.TurnsInverse < 1 {
		return invalidf("shell inverse turns must be >= 1, got %d", p.TurnsInverse)
	}
	if p.SampleCount < 1 {
		return invalidf("shell sample count must be >= 1, got %d", p.SampleCount)
	}
	return nil
}

// ShellCenterline returns the 2·SampleCount spiral points the cross-sections
// are placed around: first the outer spiral, then the inverse one.
func ShellCenterline(p ShellParams) ([]Point3D, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.SampleCount
	out := make([]Point3D, 0, 2*n)

	theta := linspace(0, TwoPi*Real(p.Turns), n)
	for _, th := range theta {
		r := p.A + p.B*th
		out = append(out, P3(r*math.Cos(th), r*math.Sin(th), p.C*th))
	}

	last := theta[n-1]
	rLast := p.A + p.B*last
	zLast := p.C * last
	thetaInv := linspace(0, TwoPi*Real(p.TurnsInverse), n)
	rInv := linspace(rLast, p.A, n)
	for i, th := range thetaInv {
		r := rInv[i]
		out = append(out, P3(r*math.Cos(th), r*math.Sin(th), p.C*th+zLast))
	}
	DebugLog("shell: centerline %d points, outer radius %g, top z %g", len(out), rLast, out[len(out)-1].Z)
	return out, nil
}

// GenerateShell returns CrossSectionSamples points per centerline point,
// offset in the XY plane by Thickness. The rings are horizontal, not normal
// to the spiral tangent.
func GenerateShell(p ShellParams) ([]Point3D, error) {
	center, err := ShellCenterline(p)
	if err != nil {
		return nil, err
	}
	ring := linspace(0, TwoPi, CrossSectionSamples)
	dx := make([]Real, len(ring))
	dy := make([]Real, len(ring))
	for i, t := range ring {
		dx[i] = p.Thickness * math.Cos(t)
		dy[i] = p.Thickness * math.Sin(t)
	}
	out := make([]Point3D, 0, len(center)*len(ring))
	for _, c := range center {
		for i := range ring {
			out = append(out, P3(c.X+dx[i], c.Y+dy[i], c.Z))
		}
	}
	return out, nil
}
