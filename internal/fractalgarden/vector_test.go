package fractalgarden

import (
	"math"
	"testing"
)

func TestPointAdd(t *testing.T) {
	p := P3(1, 2, 3)
	v := V3(-1, 1, 0.5)
	q := p.Add(v)
	if q != P3(0, 3, 3.5) {
		t.Fatalf("Add mismatch: %+v", q)
	}
	if d := q.Sub(p); d != v {
		t.Fatalf("Sub mismatch: %+v", d)
	}
	if q.Vec() != V3(0, 3, 3.5) {
		t.Fatalf("Vec mismatch: %+v", q.Vec())
	}
}

func TestPointDistanceAndFinite(t *testing.T) {
	if d := P3(1, 2, 3).Distance(P3(1, 2, 3).Add(V3(3, 4, 0))); math.Abs(d-5) > 1e-12 {
		t.Fatalf("Distance = %g", d)
	}
	if !P3(1, 2, 3).IsFinite() || P3(math.NaN(), 0, 0).IsFinite() || P3(0, 0, math.Inf(-1)).IsFinite() {
		t.Fatal("Point3D.IsFinite failed")
	}
	if !(Point2D{1, 2}).IsFinite() || (Point2D{math.Inf(1), 0}).IsFinite() {
		t.Fatal("Point2D.IsFinite failed")
	}
	if vecIsFinite(V3(0, math.NaN(), 0)) {
		t.Fatal("vecIsFinite accepted NaN")
	}
}

func TestPointString(t *testing.T) {
	if s := P3(1, 0.5, -2).String(); s != "(1, 0.5, -2)" {
		t.Fatalf("String = %q", s)
	}
	if s := (Point2D{X: 1, Y: 2}).String(); s != "(1, 2)" {
		t.Fatalf("String = %q", s)
	}
}
